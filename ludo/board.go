package ludo

import "fmt"

// redPath is the route Red's tokens take, starting from the cell they enter
// on. It runs clockwise around the outer ring and then turns into Red's home
// stretch. Every other color's route is this one rotated about the center.
var redPath = [PathLen]Cell{
	{8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5},
	{9, 6}, {10, 6}, {11, 6}, {12, 6}, {13, 6}, {14, 6},
	{14, 7}, {14, 8},
	{13, 8}, {12, 8}, {11, 8}, {10, 8}, {9, 8},
	{8, 9}, {8, 10}, {8, 11}, {8, 12}, {8, 13}, {8, 14},
	{7, 14}, {6, 14},
	{6, 13}, {6, 12}, {6, 11}, {6, 10}, {6, 9},
	{5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
	{0, 7}, {0, 6},
	{1, 6}, {2, 6}, {3, 6}, {4, 6}, {5, 6},
	{6, 5}, {6, 4}, {6, 3}, {6, 2}, {6, 1}, {6, 0},
	{7, 0},
	// Home stretch.
	{7, 1}, {7, 2}, {7, 3}, {7, 4}, {7, 5},
}

var paths [NumColors][PathLen]Cell

func init() {
	for _, c := range Colors {
		for i, cell := range redPath {
			paths[c][i] = Rotate(cell, int(c))
		}
	}
}

// Rotate turns a cell a quarter turn about the center of the board n times.
func Rotate(c Cell, n int) Cell {
	for i := 0; i < n%4; i++ {
		c = Cell{X: c.Y, Y: BoardSize - 1 - c.X}
	}
	return c
}

// PathCell returns the board cell at index i of the given color's path. It
// panics if i isn't in [0, PathLen), home and finish positions have to be
// handled by the caller.
func PathCell(c Color, i int) Cell {
	if !c.Valid() {
		panic(fmt.Sprintf("PathCell: invalid color %d", int(c)))
	}
	if i < 0 || i >= PathLen {
		panic(fmt.Sprintf("PathCell: index %d outside [0, %d)", i, PathLen))
	}
	return paths[c][i]
}

// SafeSpots are the cells where a token can't be captured.
var SafeSpots = [...]Cell{
	{8, 1}, {1, 6}, {6, 13}, {13, 8},
	{12, 6}, {6, 2}, {2, 8}, {8, 12},
}

// IsSafe reports whether c is one of the SafeSpots.
func IsSafe(c Cell) bool {
	for _, s := range SafeSpots {
		if s == c {
			return true
		}
	}
	return false
}

// HomeCells are the four cells each color's tokens wait on before entering
// the board, in token order.
var HomeCells = [NumColors][TokensPerColor]Cell{
	Red:    {{10, 1}, {12, 1}, {10, 3}, {12, 3}},
	Green:  {{1, 1}, {3, 1}, {1, 3}, {3, 3}},
	Yellow: {{1, 10}, {3, 10}, {1, 12}, {3, 12}},
	Blue:   {{10, 10}, {12, 10}, {10, 12}, {12, 12}},
}

// OnPath reports whether any color's path passes through c.
func OnPath(c Cell) bool {
	for _, col := range Colors {
		for _, pc := range paths[col] {
			if pc == c {
				return true
			}
		}
	}
	return false
}
