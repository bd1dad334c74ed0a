package ludo

import (
	"fmt"
	"strings"
)

// GameState is everything there is to know about a game in progress.
type GameState struct {
	Tokens        [NumColors][TokensPerColor]Token `json:"tokens"`
	CurrentPlayer Color                            `json:"current_player"`
	// Dice is the value of the last roll.
	Dice  int   `json:"dice"`
	Phase Phase `json:"phase"`
	// Winner is nil until one color finishes all of its tokens.
	Winner *Color `json:"winner,omitempty"`
	// JustCaptured is set when the last move sent an opposing token home. It
	// is cleared on every roll.
	JustCaptured bool `json:"just_captured"`
}

// NewGameState returns the state at the start of a game: every token at home
// and Red to roll.
func NewGameState() *GameState {
	gs := &GameState{
		CurrentPlayer: Red,
		Dice:          1,
		Phase:         AwaitingRoll,
	}
	for _, c := range Colors {
		for i := range gs.Tokens[c] {
			gs.Tokens[c][i] = Token{
				ID:        TokenID{Color: c, Index: i},
				Home:      HomeCells[c][i],
				PathIndex: AtHome,
			}
		}
	}
	return gs
}

func (gs *GameState) Clone() *GameState {
	if gs == nil {
		return nil
	}
	out := *gs
	if gs.Winner != nil {
		w := *gs.Winner
		out.Winner = &w
	}
	return &out
}

// Token returns a pointer to the token with the given ID, or nil if there is
// no such token.
func (gs *GameState) Token(id TokenID) *Token {
	if !id.Valid() {
		return nil
	}
	return &gs.Tokens[id.Color][id.Index]
}

// Finished returns how many of the color's tokens have completed their path.
func (gs *GameState) Finished(c Color) int {
	n := 0
	for _, t := range gs.Tokens[c] {
		if t.Finished {
			n++
		}
	}
	return n
}

// TokensAt returns every token drawn on the given cell, in color then index
// order.
func (gs *GameState) TokensAt(c Cell) []Token {
	var out []Token
	for _, col := range Colors {
		for _, t := range gs.Tokens[col] {
			if t.Cell() == c {
				out = append(out, t)
			}
		}
	}
	return out
}

// Check panics if any token is in an impossible position.
func (gs *GameState) Check() {
	for _, col := range Colors {
		for _, t := range gs.Tokens[col] {
			t.check()
		}
	}
}

// Result describes what a roll or a move did.
type Result struct {
	// Player is the color that acted.
	Player Color `json:"player"`
	Dice   int   `json:"dice"`
	// Moved is the token that was moved, nil for a roll.
	Moved    *TokenID  `json:"moved,omitempty"`
	Captured []TokenID `json:"captured,omitempty"`
	// TokenFinished is set when the moved token reached the end of its path.
	TokenFinished bool `json:"token_finished"`
	// NoMove is set when a roll left the player without any legal move.
	NoMove bool `json:"no_move"`
	// BonusTurn is set when the player who acted keeps the turn.
	BonusTurn  bool   `json:"bonus_turn"`
	Winner     *Color `json:"winner,omitempty"`
	NextPlayer Color  `json:"next_player"`
	// AwaitingSelection is set when a roll left the player with tokens to
	// choose from.
	AwaitingSelection bool `json:"awaiting_selection"`
}

// String returns a one line status message for the outcome.
func (r *Result) String() string {
	var parts []string
	switch {
	case r.Winner != nil:
		return fmt.Sprintf("%s WINS!", *r.Winner)
	case r.Moved == nil && r.NoMove:
		parts = append(parts, fmt.Sprintf("%s rolled %d - No moves", r.Player, r.Dice))
	case r.Moved == nil:
		return fmt.Sprintf("%s rolled %d - Select token!", r.Player, r.Dice)
	case len(r.Captured) > 0:
		var victims []string
		for _, c := range r.Captured {
			victims = append(victims, c.Color.String())
		}
		parts = append(parts, fmt.Sprintf("%s captured %s!", r.Moved.Color, strings.Join(dedupe(victims), ", ")))
	case r.TokenFinished:
		parts = append(parts, "Token reached home!")
	}

	if r.BonusTurn {
		parts = append(parts, fmt.Sprintf("%s - Roll again!", r.NextPlayer))
	} else {
		parts = append(parts, fmt.Sprintf("%s's turn - Roll the dice!", r.NextPlayer))
	}
	return strings.Join(parts, " ")
}

func dedupe(in []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
