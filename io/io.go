package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bcspragu/Ludo/ludo"
	"github.com/olekukonko/tablewriter"
)

const (
	pathMark = "·"
	safeMark = "*"
)

var colors = [ludo.NumColors]int{
	ludo.Red:    tablewriter.FgHiRedColor,
	ludo.Green:  tablewriter.FgGreenColor,
	ludo.Yellow: tablewriter.FgYellowColor,
	ludo.Blue:   tablewriter.FgBlueColor,
}

// Board draws the board on a terminal.
type Board struct {
	Out io.Writer
}

// Print draws the game as a 15x15 table. Tokens in selectable are
// underlined.
func (b *Board) Print(gs *ludo.GameState, selectable []ludo.TokenID) {
	table := tablewriter.NewWriter(b.Out)
	table.SetRowLine(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	for _, row := range grid(gs, selectable) {
		var (
			text []string
			cols []tablewriter.Colors
		)
		for _, s := range row {
			text = append(text, s.text)
			cols = append(cols, s.colors)
		}
		table.Rich(text, cols)
	}

	table.Render()
}

type square struct {
	text   string
	colors tablewriter.Colors
}

// grid lays out the board row by row, so grid(...)[y][x] is the cell (x, y).
func grid(gs *ludo.GameState, selectable []ludo.TokenID) [ludo.BoardSize][ludo.BoardSize]square {
	sel := make(map[ludo.TokenID]bool)
	for _, id := range selectable {
		sel[id] = true
	}

	var g [ludo.BoardSize][ludo.BoardSize]square
	for y := 0; y < ludo.BoardSize; y++ {
		for x := 0; x < ludo.BoardSize; x++ {
			g[y][x] = cellSquare(gs, ludo.Cell{X: x, Y: y}, sel)
		}
	}
	return g
}

func cellSquare(gs *ludo.GameState, c ludo.Cell, sel map[ludo.TokenID]bool) square {
	toks := gs.TokensAt(c)
	if len(toks) == 0 {
		switch {
		case ludo.IsSafe(c):
			return square{text: safeMark}
		case ludo.OnPath(c):
			return square{text: pathMark}
		default:
			return square{}
		}
	}

	var (
		labels     []string
		selectable bool
	)
	for _, t := range toks {
		labels = append(labels, label(t.ID))
		if sel[t.ID] {
			selectable = true
		}
	}

	// Stacked tokens take the color of whichever was drawn first.
	cs := tablewriter.Colors{colors[toks[0].ID.Color]}
	if selectable {
		cs = append(cs, tablewriter.UnderlineSingle)
	}
	return square{text: strings.Join(labels, " "), colors: cs}
}

func label(id ludo.TokenID) string {
	return id.Color.String()[:1] + strconv.Itoa(id.Index)
}

// Prompter asks the user on the terminal to roll and to pick tokens. It plays
// every color it's given, so one Prompter is enough for a hot-seat game.
type Prompter struct {
	// In is where the user's answers are read from.
	In io.Reader
	// Out is where the prompts are written.
	Out io.Writer
	// Board, if set, is drawn before every prompt.
	Board *Board

	sc *bufio.Scanner
}

func (p *Prompter) ReadyToRoll(gs *ludo.GameState) error {
	p.printBoard(gs, nil)
	for {
		fmt.Fprintf(p.Out, "%s, enter 'r' to roll: ", gs.CurrentPlayer)
		line, err := p.readLine()
		if err != nil {
			return err
		}
		if strings.EqualFold(line, "r") {
			return nil
		}
	}
}

// ChooseToken reads a token index for the current player. The index isn't
// checked against legal, that's left to the game.
func (p *Prompter) ChooseToken(gs *ludo.GameState, legal []ludo.TokenID) (ludo.TokenID, error) {
	p.printBoard(gs, legal)

	var idxs []string
	for _, id := range legal {
		idxs = append(idxs, strconv.Itoa(id.Index))
	}

	for {
		fmt.Fprintf(p.Out, "%s rolled %d, pick a token [%s]: ", gs.CurrentPlayer, gs.Dice, strings.Join(idxs, " "))
		line, err := p.readLine()
		if err != nil {
			return ludo.TokenID{}, err
		}
		idx, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(p.Out, "%q isn't a token number\n", line)
			continue
		}
		return ludo.TokenID{Color: gs.CurrentPlayer, Index: idx}, nil
	}
}

func (p *Prompter) printBoard(gs *ludo.GameState, legal []ludo.TokenID) {
	if p.Board != nil {
		p.Board.Print(gs, legal)
	}
}

func (p *Prompter) readLine() (string, error) {
	if p.sc == nil {
		p.sc = bufio.NewScanner(p.In)
	}
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", fmt.Errorf("scanner error: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.sc.Text()), nil
}
