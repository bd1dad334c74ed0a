package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"sync"

	"github.com/bcspragu/Ludo/dice"
	"github.com/bcspragu/Ludo/game"
	"github.com/bcspragu/Ludo/hub"
	"github.com/bcspragu/Ludo/ludo"
	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const authCookie = "Authorization"

// Srv serves hot-seat games over HTTP. Whoever creates a game rolls and moves
// for every color in it, anyone can watch.
type Srv struct {
	sc       *securecookie.SecureCookie
	h        *hub.Hub
	mux      *mux.Router
	db       ludo.DB
	r        *lockedRand
	upgrader websocket.Upgrader
}

// New returns an initialized server. r is used for dice and for owner IDs.
func New(db ludo.DB, r *rand.Rand, sc *securecookie.SecureCookie) *Srv {
	s := &Srv{
		sc: sc,
		h:  hub.New(),
		db: db,
		r:  &lockedRand{r: r, d: dice.New(r)},
	}

	s.mux = s.initMux()

	return s
}

func (s *Srv) initMux() *mux.Router {
	m := mux.NewRouter()
	// New game.
	m.HandleFunc("/api/game", s.handle(s.serveCreateGame)).Methods("POST")
	// Games still being played.
	m.HandleFunc("/api/games", s.handle(s.serveActiveGames)).Methods("GET")
	// Get game.
	m.HandleFunc("/api/game/{id}", s.handle(s.requireGame(s.serveGame))).Methods("GET")
	// Tokens the current player can move.
	m.HandleFunc("/api/game/{id}/legal", s.handle(s.requireGame(s.serveLegal))).Methods("GET")
	// Roll the die.
	m.HandleFunc("/api/game/{id}/roll", s.handle(s.requireGame(s.serveRoll, isGameOwner()))).Methods("POST")
	// Move a token.
	m.HandleFunc("/api/game/{id}/select", s.handle(s.requireGame(s.serveSelect, isGameOwner()))).Methods("POST")

	// WebSocket handler for games.
	m.HandleFunc("/api/game/{id}/ws", s.handle(s.requireGame(s.serveData))).Methods("GET")

	return m
}

func (s *Srv) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Srv) serveCreateGame(w http.ResponseWriter, r *http.Request) error {
	owner, err := s.loadOwner(r)
	if err != nil {
		return err
	}

	if owner == "" {
		owner = s.r.ownerID()
		encoded, err := s.sc.Encode(authCookie, owner)
		if err != nil {
			return fmt.Errorf("failed to encode auth cookie: %w", err)
		}
		http.SetCookie(w, &http.Cookie{
			Name:  authCookie,
			Value: encoded,
			Path:  "/",
		})
	}

	id, err := s.db.NewGame(&ludo.Game{
		CreatedBy: owner,
		State:     ludo.NewGameState(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	log.WithField("game", id).Info("created game")

	jsonResp(w, struct {
		ID string `json:"id"`
	}{string(id)})
	return nil
}

func (s *Srv) serveActiveGames(w http.ResponseWriter, r *http.Request) error {
	gIDs, err := s.db.ActiveGames()
	if err != nil {
		return fmt.Errorf("failed to load games: %w", err)
	}
	if gIDs == nil {
		gIDs = []ludo.GameID{}
	}

	jsonResp(w, gIDs)
	return nil
}

func (s *Srv) serveGame(w http.ResponseWriter, r *http.Request, g *ludo.Game) error {
	jsonResp(w, g.State)
	return nil
}

func (s *Srv) serveLegal(w http.ResponseWriter, r *http.Request, g *ludo.Game) error {
	legal := []ludo.TokenID{}
	if gs := g.State; gs.Phase == ludo.AwaitingSelection {
		legal = append(legal, game.NewForMove(gs, nil).LegalTokens(gs.CurrentPlayer, gs.Dice)...)
	}

	jsonResp(w, legal)
	return nil
}

func (s *Srv) serveRoll(w http.ResponseWriter, r *http.Request, g *ludo.Game) error {
	res, snap, err := s.move(g.ID, &game.Move{Action: game.ActionRoll})
	if err != nil {
		return err
	}

	s.broadcast(g.ID, &Rolled{Result: res, State: snap})
	jsonResp(w, &Outcome{Result: res, State: snap})
	return nil
}

func (s *Srv) serveSelect(w http.ResponseWriter, r *http.Request, g *ludo.Game) error {
	var req struct {
		Color ludo.Color `json:"color"`
		Index int        `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return httpErrorf(http.StatusBadRequest, "malformed token: %v", err)
	}

	res, snap, err := s.move(g.ID, &game.Move{
		Action: game.ActionSelect,
		Token:  ludo.TokenID{Color: req.Color, Index: req.Index},
	})
	if err != nil {
		return err
	}

	s.broadcast(g.ID, &Moved{Result: res, State: snap})
	jsonResp(w, &Outcome{Result: res, State: snap})
	return nil
}

// move applies a single intent to the stored game. The registry runs one
// update at a time, so the engine never sees concurrent intents.
func (s *Srv) move(gID ludo.GameID, mv *game.Move) (*ludo.Result, *ludo.GameState, error) {
	var (
		res  *ludo.Result
		snap *ludo.GameState
	)
	err := s.db.UpdateState(gID, func(gs *ludo.GameState) error {
		var err error
		if res, err = game.NewForMove(gs, s.r).Move(mv); err != nil {
			return err
		}
		snap = gs.Clone()
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s on %q: %w", mv.Action, gID, err)
	}

	log.WithFields(log.Fields{
		"game":   gID,
		"action": mv.Action,
	}).Debug(res)
	return res, snap, nil
}

func (s *Srv) broadcast(gID ludo.GameID, msg interface{}) {
	if err := s.h.ToGame(gID, msg); err != nil {
		log.Warnf("failed to broadcast to %q: %v", gID, err)
	}
}

func (s *Srv) serveData(w http.ResponseWriter, r *http.Request, g *ludo.Game) error {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		log.Warnf("failed to upgrade connection for %q: %v", g.ID, err)
		return nil
	}

	s.h.Register(conn, g.ID)
	return nil
}

type gameHandler func(http.ResponseWriter, *http.Request, *ludo.Game) error

// gameCheck is a precondition on the game a request is for, given who made
// the request.
type gameCheck func(*ludo.Game, ludo.OwnerID) error

func isGameOwner() gameCheck {
	return func(g *ludo.Game, owner ludo.OwnerID) error {
		if owner == "" || owner != g.CreatedBy {
			return httpErrorf(http.StatusForbidden, "only the creator of %q can play in it", g.ID)
		}
		return nil
	}
}

// requireGame loads the game named in the URL and runs the checks against it
// before calling the handler.
func (s *Srv) requireGame(h gameHandler, checks ...gameCheck) func(http.ResponseWriter, *http.Request) error {
	return func(w http.ResponseWriter, r *http.Request) error {
		gID := ludo.GameID(mux.Vars(r)["id"])
		if gID == "" {
			return httpErrorf(http.StatusBadRequest, "no game ID given")
		}

		g, err := s.db.Game(gID)
		if err != nil {
			return fmt.Errorf("failed to load game %q: %w", gID, err)
		}

		owner, err := s.loadOwner(r)
		if err != nil {
			return err
		}

		for _, check := range checks {
			if err := check(g, owner); err != nil {
				return err
			}
		}

		return h(w, r, g)
	}
}

func (s *Srv) handle(h func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		code := statusCode(err)
		if code >= http.StatusInternalServerError {
			log.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
		}
		http.Error(w, err.Error(), code)
	}
}

func statusCode(err error) int {
	var herr *httpError
	switch {
	case errors.As(err, &herr):
		return herr.code
	case errors.Is(err, ludo.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, ludo.ErrIllegalIntent):
		return http.StatusConflict
	case errors.Is(err, ludo.ErrInvalidToken):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type httpError struct {
	code int
	msg  string
}

func (h *httpError) Error() string {
	return h.msg
}

func httpErrorf(code int, format string, args ...interface{}) error {
	return &httpError{code: code, msg: fmt.Sprintf(format, args...)}
}

func jsonResp(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("jsonResp: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (s *Srv) loadOwner(r *http.Request) (ludo.OwnerID, error) {
	c, err := r.Cookie(authCookie)
	if err == http.ErrNoCookie {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var owner ludo.OwnerID
	if err := s.sc.Decode(authCookie, c.Value, &owner); err != nil {
		// If we can't parse it, assume it's an old auth cookie and treat them as
		// a stranger.
		return "", nil
	}

	return owner, nil
}

// lockedRand shares one *rand.Rand between request goroutines.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
	d  *dice.Rand
}

func (l *lockedRand) Roll() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.d.Roll()
}

func (l *lockedRand) ownerID() ludo.OwnerID {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ludo.RandomOwnerID(l.r)
}
