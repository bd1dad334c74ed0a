package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/bcspragu/Ludo/dice"
	"github.com/bcspragu/Ludo/game"
	"github.com/bcspragu/Ludo/io"
	"github.com/bcspragu/Ludo/ludo"
	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		seed    = flag.Int64("seed", 0, "Seed for the dice, zero means use crypto/rand")
		noBoard = flag.Bool("no_board", false, "Don't draw the board before each prompt")
	)
	flag.Parse()

	var src rand.Source = dice.CryptoSource{}
	if *seed != 0 {
		src = rand.NewSource(*seed)
	}

	p := &io.Prompter{In: os.Stdin, Out: os.Stdout}
	if !*noBoard {
		p.Board = &io.Board{Out: os.Stdout}
	}

	g, err := game.New(dice.New(rand.New(src)), &game.Config{
		// Hot-seat, everyone shares the terminal.
		Players: [ludo.NumColors]game.Player{p, p, p, p},
		OnResult: func(_ *ludo.GameState, res *ludo.Result) {
			fmt.Println(res)
		},
		OnReject: func(err error) {
			fmt.Printf("Can't do that: %v\n", err)
		},
	})
	if err != nil {
		log.Fatalf("Failed to instantiate game: %v", err)
	}

	out, err := g.Play()
	if err != nil {
		log.Fatalf("Failed to play game: %v", err)
	}
	log.WithField("rolls", out.Rolls).Infof("%s won", out.Winner)
}
