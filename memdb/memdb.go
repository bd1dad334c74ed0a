package memdb

import (
	"fmt"
	"sync"

	"github.com/bcspragu/Ludo/ludo"
)

type idNamespace string

const (
	gameID = idNamespace("game")
)

// DB is an in-memory ludo.DB. It is safe for concurrent use, and runs at most
// one update at a time.
type DB struct {
	mu    sync.Mutex
	ids   map[idNamespace]int
	games map[ludo.GameID]*ludo.Game
	// order holds game IDs in the order they were created.
	order []ludo.GameID
}

func New() *DB {
	return &DB{
		ids:   make(map[idNamespace]int),
		games: make(map[ludo.GameID]*ludo.Game),
	}
}

func (db *DB) NewGame(g *ludo.Game) (ludo.GameID, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	gID := ludo.GameID(db.newID(gameID))

	gc := g.Clone()
	gc.ID = gID
	if gc.State == nil {
		gc.State = ludo.NewGameState()
	}
	db.games[gID] = gc
	db.order = append(db.order, gID)

	return gID, nil
}

func (db *DB) Game(gID ludo.GameID) (*ludo.Game, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	g, ok := db.games[gID]
	if !ok {
		return nil, ludo.ErrGameNotFound
	}

	return g.Clone(), nil
}

func (db *DB) ActiveGames() ([]ludo.GameID, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var active []ludo.GameID
	for _, gID := range db.order {
		if !db.games[gID].Over() {
			active = append(active, gID)
		}
	}
	return active, nil
}

func (db *DB) UpdateState(gID ludo.GameID, update func(*ludo.GameState) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	g, ok := db.games[gID]
	if !ok {
		return ludo.ErrGameNotFound
	}

	// Work on a copy, so a failed update leaves nothing behind.
	gs := g.State.Clone()
	if err := update(gs); err != nil {
		return err
	}
	g.State = gs
	return nil
}

func (db *DB) newID(ns idNamespace) string {
	idx := db.ids[ns]
	id := fmt.Sprintf("%s_%d", ns, idx)
	db.ids[ns]++
	return id
}
