package game

import (
	"errors"
	"fmt"

	"github.com/bcspragu/Ludo/dice"
	"github.com/bcspragu/Ludo/ludo"
)

// Game applies the rules of Ludo to a game state. It supports two modes of
// operation:
// - Play() mode: Plays the whole game out at once, asking the configured
// players for their decisions.
// - Move() mode: Applies a single roll or token selection, through Move(),
// Roll() or Select(). Requests that are out of turn are rejected with
// ludo.ErrIllegalIntent and leave the state untouched.
//
// A Game is not safe for concurrent use.
type Game struct {
	state  *ludo.GameState
	roller dice.Roller
	cfg    *Config
}

// Player makes the decisions for one color in Play() mode.
type Player interface {
	// ReadyToRoll returns once the player wants to roll.
	ReadyToRoll(*ludo.GameState) error
	// ChooseToken picks one of the legal tokens to move.
	ChooseToken(*ludo.GameState, []ludo.TokenID) (ludo.TokenID, error)
}

// Config holds configuration options for a game played with Play().
type Config struct {
	Players [ludo.NumColors]Player

	// OnResult, if set, is called after every roll and move.
	OnResult func(*ludo.GameState, *ludo.Result)
	// OnReject, if set, is called when a player picks a token that can't move.
	// The player is asked again.
	OnReject func(error)
}

// NewForMove returns a Game that reads and updates the given state in place.
func NewForMove(state *ludo.GameState, roller dice.Roller) *Game {
	state.Check()
	return &Game{state: state, roller: roller}
}

// New validates the config and returns a Game at its starting position.
func New(roller dice.Roller, cfg *Config) (*Game, error) {
	if roller == nil {
		return nil, errors.New("roller cannot be nil")
	}
	for _, c := range ludo.Colors {
		if cfg.Players[c] == nil {
			return nil, fmt.Errorf("player for %s cannot be nil", c)
		}
	}

	return &Game{
		state:  ludo.NewGameState(),
		roller: roller,
		cfg:    cfg,
	}, nil
}

type Action string

const (
	ActionRoll   = Action("ROLL")
	ActionSelect = Action("SELECT")
)

type Move struct {
	Action Action
	// Only populated for Action == ActionSelect
	Token ludo.TokenID
}

func (g *Game) Move(mv *Move) (*ludo.Result, error) {
	switch mv.Action {
	case ActionRoll:
		return g.Roll()
	case ActionSelect:
		return g.Select(mv.Token)
	default:
		return nil, fmt.Errorf("unknown action %q", mv.Action)
	}
}

// Roll rolls the die for the current player. If none of their tokens can
// move, the turn is resolved immediately: a six lets them roll again,
// anything else passes the turn.
func (g *Game) Roll() (*ludo.Result, error) {
	if err := g.checkPhase(ludo.AwaitingRoll); err != nil {
		return nil, fmt.Errorf("can't roll: %w", err)
	}

	v := g.roller.Roll()
	if v < 1 || v > dice.Faces {
		panic(fmt.Sprintf("roller returned %d, outside [1, %d]", v, dice.Faces))
	}

	cur := g.state.CurrentPlayer
	g.state.Dice = v
	g.state.JustCaptured = false

	res := &ludo.Result{Player: cur, Dice: v}
	if len(g.LegalTokens(cur, v)) > 0 {
		g.state.Phase = ludo.AwaitingSelection
		res.AwaitingSelection = true
		res.NextPlayer = cur
		return res, nil
	}

	res.NoMove = true
	res.BonusTurn = v == dice.Faces
	g.endTurn(res.BonusTurn)
	res.NextPlayer = g.state.CurrentPlayer
	return res, nil
}

// Select moves one of the current player's tokens by the value rolled.
func (g *Game) Select(id ludo.TokenID) (*ludo.Result, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("select %s: %w", id, ludo.ErrInvalidToken)
	}
	if err := g.checkPhase(ludo.AwaitingSelection); err != nil {
		return nil, fmt.Errorf("can't select %s: %w", id, err)
	}
	if cur := g.state.CurrentPlayer; id.Color != cur {
		return nil, fmt.Errorf("can't select %s, it's %s's turn: %w", id, cur, ludo.ErrIllegalIntent)
	}

	t := g.state.Token(id)
	if !CanMove(*t, g.state.Dice) {
		return nil, fmt.Errorf("%s can't move %d: %w", id, g.state.Dice, ludo.ErrIllegalIntent)
	}

	res := g.applyMove(t)
	g.state.Check()
	return res, nil
}

func (g *Game) checkPhase(want ludo.Phase) error {
	if g.state.Winner != nil || g.state.Phase == ludo.GameOver {
		return fmt.Errorf("game is over: %w", ludo.ErrIllegalIntent)
	}
	if g.state.Phase != want {
		return fmt.Errorf("game is %s: %w", g.state.Phase, ludo.ErrIllegalIntent)
	}
	return nil
}

// CanMove reports whether a token can be moved by the given roll. A token
// leaves home only on a six, and a move has to fit within the path exactly.
func CanMove(t ludo.Token, roll int) bool {
	switch {
	case t.Finished:
		return false
	case t.PathIndex == ludo.AtHome:
		return roll == dice.Faces
	case t.PathIndex >= 0:
		return t.PathIndex+roll <= ludo.Finish
	}
	return false
}

// LegalTokens returns the color's tokens that can move by roll, in token
// order. It panics if c isn't a valid color.
func (g *Game) LegalTokens(c ludo.Color, roll int) []ludo.TokenID {
	if !c.Valid() {
		panic(fmt.Sprintf("LegalTokens: invalid color %d", int(c)))
	}
	var out []ludo.TokenID
	for _, t := range g.state.Tokens[c] {
		if CanMove(t, roll) {
			out = append(out, t.ID)
		}
	}
	return out
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() *ludo.GameState {
	return g.state.Clone()
}

// GameOver reports whether the game has been won, and by whom.
func (g *Game) GameOver() (bool, ludo.Color) {
	if g.state.Winner == nil {
		return false, 0
	}
	return true, *g.state.Winner
}

func (g *Game) applyMove(t *ludo.Token) *ludo.Result {
	cur := g.state.CurrentPlayer
	roll := g.state.Dice
	id := t.ID
	res := &ludo.Result{Player: cur, Dice: roll, Moved: &id}

	if t.PathIndex == ludo.AtHome {
		// The six is spent getting onto the board.
		t.PathIndex = 0
	} else {
		t.PathIndex += roll
	}

	if t.PathIndex >= ludo.Finish {
		t.PathIndex = ludo.Finish
		t.Finished = true
		res.TokenFinished = true

		if g.state.Finished(cur) == ludo.TokensPerColor {
			w := cur
			g.state.Winner = &w
			g.state.Phase = ludo.GameOver
			res.Winner = &w
			res.NextPlayer = cur
			return res
		}
	} else if t.PathIndex < ludo.HomeStretch {
		res.Captured = g.capture(cur, ludo.PathCell(cur, t.PathIndex))
	}

	res.BonusTurn = roll == dice.Faces || g.state.JustCaptured || res.TokenFinished
	g.endTurn(res.BonusTurn)
	res.NextPlayer = g.state.CurrentPlayer
	return res
}

// capture sends every opposing token on the landing cell back home, unless
// the cell is safe.
func (g *Game) capture(mover ludo.Color, landing ludo.Cell) []ludo.TokenID {
	if ludo.IsSafe(landing) {
		return nil
	}

	var captured []ludo.TokenID
	for _, c := range ludo.Colors {
		if c == mover {
			continue
		}
		for i := range g.state.Tokens[c] {
			ot := &g.state.Tokens[c][i]
			if !ot.OnSharedTrack() || ot.Cell() != landing {
				continue
			}
			ot.PathIndex = ludo.AtHome
			captured = append(captured, ot.ID)
			g.state.JustCaptured = true
		}
	}
	return captured
}

func (g *Game) endTurn(again bool) {
	if !again {
		g.state.CurrentPlayer = g.state.CurrentPlayer.Next()
	}
	g.state.Phase = ludo.AwaitingRoll
}

type Outcome struct {
	Winner ludo.Color
	// Rolls is how many times the die was rolled over the whole game.
	Rolls int
}

// Play runs the game to completion, asking the configured players to roll and
// to pick tokens.
func (g *Game) Play() (*Outcome, error) {
	if g.cfg == nil {
		return nil, errors.New("game has no players configured")
	}

	rolls := 0
	for {
		if over, winner := g.GameOver(); over {
			return &Outcome{Winner: winner, Rolls: rolls}, nil
		}

		cur := g.state.CurrentPlayer
		p := g.cfg.Players[cur]
		if err := p.ReadyToRoll(g.Snapshot()); err != nil {
			return nil, fmt.Errorf("ReadyToRoll on %s: %w", cur, err)
		}

		res, err := g.Roll()
		if err != nil {
			return nil, fmt.Errorf("Roll on %s: %w", cur, err)
		}
		rolls++
		g.report(res)

		for g.state.Phase == ludo.AwaitingSelection {
			legal := g.LegalTokens(cur, g.state.Dice)
			id, err := p.ChooseToken(g.Snapshot(), legal)
			if err != nil {
				return nil, fmt.Errorf("ChooseToken on %s: %w", cur, err)
			}
			res, err := g.Select(id)
			if errors.Is(err, ludo.ErrIllegalIntent) || errors.Is(err, ludo.ErrInvalidToken) {
				if g.cfg.OnReject != nil {
					g.cfg.OnReject(err)
				}
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("Select on %s: %w", cur, err)
			}
			g.report(res)
		}
	}
}

func (g *Game) report(res *ludo.Result) {
	if g.cfg.OnResult != nil {
		g.cfg.OnResult(g.Snapshot(), res)
	}
}
