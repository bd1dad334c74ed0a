package ludo

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// BoardSize is the number of cells along each side of the board.
	BoardSize = 15
	// PathLen is the number of cells on a color's route, from its start cell
	// to the last cell of its home stretch.
	PathLen = 56
	// Finish is the path index of a token that has completed its route.
	Finish = PathLen
	// AtHome is the path index of a token that hasn't entered the board yet.
	AtHome = -1
	// HomeStretch is the first path index that is private to a color. Tokens
	// at or past it can never collide with another color.
	HomeStretch = 51
	// TokensPerColor is how many tokens each player has.
	TokensPerColor = 4
	// NumColors is the number of players in a game.
	NumColors = 4
)

var (
	// ErrIllegalIntent is returned when a roll or selection isn't allowed in
	// the current state of the game. The game is left unchanged.
	ErrIllegalIntent = errors.New("ludo: illegal intent")
	// ErrInvalidToken is returned when a caller refers to a token that doesn't
	// exist.
	ErrInvalidToken = errors.New("ludo: invalid token")
)

// Color identifies a player. The zero value is Red, and turns go in the order
// the colors are declared.
type Color int

const (
	Red Color = iota
	Green
	Yellow
	Blue
)

// Colors lists every color in turn order.
var Colors = [NumColors]Color{Red, Green, Yellow, Blue}

var colorNames = [NumColors]string{"RED", "GREEN", "YELLOW", "BLUE"}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Valid reports whether c is one of the four player colors.
func (c Color) Valid() bool {
	return c >= Red && c <= Blue
}

// Next returns the color whose turn comes after c.
func (c Color) Next() Color {
	return (c + 1) % NumColors
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", int(c))
	}
	return []byte(colorNames[c]), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	pc, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = pc
	return nil
}

// ParseColor parses a color name, case-insensitively.
func ParseColor(s string) (Color, error) {
	for i, n := range colorNames {
		if strings.EqualFold(n, s) {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// Phase is what the game is waiting for next.
type Phase string

const (
	AwaitingRoll      = Phase("AWAITING_ROLL")
	AwaitingSelection = Phase("AWAITING_SELECTION")
	GameOver          = Phase("GAME_OVER")
)

// Cell is a square on the board. X grows to the right and Y grows downward,
// both in [0, BoardSize).
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// OnBoard reports whether the cell lies within the board.
func (c Cell) OnBoard() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// TokenID names one of a player's tokens. Index is the token's position in
// the player's collection, which never changes during a game.
type TokenID struct {
	Color Color `json:"color"`
	Index int   `json:"index"`
}

func (id TokenID) String() string {
	return fmt.Sprintf("%s#%d", id.Color, id.Index)
}

// Valid reports whether the ID refers to a token that exists.
func (id TokenID) Valid() bool {
	return id.Color.Valid() && id.Index >= 0 && id.Index < TokensPerColor
}

// Token is a single piece on the board.
type Token struct {
	ID TokenID `json:"id"`
	// Home is where the token sits before it enters the board.
	Home Cell `json:"home"`
	// PathIndex is AtHome, an index into the color's path, or Finish.
	PathIndex int  `json:"path_index"`
	Finished  bool `json:"finished"`
}

// AtHome reports whether the token is still waiting to enter the board.
func (t Token) AtHome() bool {
	return t.PathIndex == AtHome
}

// Cell returns where the token is drawn. Finished tokens stay visible on the
// last cell of their path.
func (t Token) Cell() Cell {
	switch {
	case t.PathIndex == AtHome:
		return t.Home
	case t.PathIndex >= Finish:
		return PathCell(t.ID.Color, PathLen-1)
	default:
		return PathCell(t.ID.Color, t.PathIndex)
	}
}

// OnSharedTrack reports whether the token is on the outer ring, where it can
// capture and be captured.
func (t Token) OnSharedTrack() bool {
	return t.PathIndex >= 0 && t.PathIndex < HomeStretch
}

func (t Token) check() {
	if t.PathIndex < AtHome || t.PathIndex > Finish {
		panic(fmt.Sprintf("token %s has path index %d outside [%d, %d]", t.ID, t.PathIndex, AtHome, Finish))
	}
	if t.Finished != (t.PathIndex == Finish) {
		panic(fmt.Sprintf("token %s has finished=%t at path index %d", t.ID, t.Finished, t.PathIndex))
	}
}
