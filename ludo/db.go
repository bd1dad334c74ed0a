package ludo

import (
	"errors"
	"math/rand"
)

var (
	ErrGameNotFound = errors.New("ludo: game not found")
)

type GameID string

// OwnerID identifies whoever created a game. Only the owner can roll or move
// in it, everyone else can watch.
type OwnerID string

type Game struct {
	ID        GameID     `json:"id"`
	CreatedBy OwnerID    `json:"created_by"`
	State     *GameState `json:"state"`
}

func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	return &Game{
		ID:        g.ID,
		CreatedBy: g.CreatedBy,
		State:     g.State.Clone(),
	}
}

// Over reports whether somebody has won the game.
func (g *Game) Over() bool {
	return g.State != nil && g.State.Winner != nil
}

// DB keeps track of the games being played in this process.
type DB interface {
	NewGame(*Game) (GameID, error)
	Game(GameID) (*Game, error)
	// ActiveGames returns the IDs of every game that hasn't been won yet,
	// oldest first.
	ActiveGames() ([]GameID, error)
	// UpdateState calls fn with the game's current state. Any changes fn
	// makes are kept if it returns nil. No other update to the same game runs
	// while fn does.
	UpdateState(GameID, func(*GameState) error) error
}

var letters = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

func RandomOwnerID(r *rand.Rand) OwnerID {
	b := make([]byte, 64)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return OwnerID(b)
}
