package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/bcspragu/Ludo/client"
	"github.com/bcspragu/Ludo/io"
	"github.com/bcspragu/Ludo/ludo"
	"github.com/bcspragu/Ludo/web"
	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		serverScheme = flag.String("server_scheme", "http", "The scheme of the server to connect to to play the game.")
		serverAddr   = flag.String("server_addr", "localhost:8080", "The address of the server to connect to to play the game.")
		gameToWatch  = flag.String("game_to_watch", "", "The ID of a game to watch, a new game is created and played if it's blank")
	)
	flag.Parse()

	c, err := client.New(*serverScheme, *serverAddr)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	if *gameToWatch != "" {
		if err := c.ListenForUpdates(ludo.GameID(*gameToWatch), watchHooks()); err != nil {
			log.Fatalf("stopped watching: %v", err)
		}
		return
	}

	gID, err := c.CreateGame()
	if err != nil {
		log.Fatalf("failed to create game: %v", err)
	}
	fmt.Printf("Created game %q\n", gID)

	go func() {
		if err := c.ListenForUpdates(gID, watchHooks()); err != nil {
			log.Warnf("stopped listening for updates: %v", err)
		}
	}()

	if err := play(c, gID); err != nil {
		log.Fatal(err)
	}
}

// play drives every color of a game we created from the terminal.
func play(c *client.Client, gID ludo.GameID) error {
	p := &io.Prompter{
		In:    os.Stdin,
		Out:   os.Stdout,
		Board: &io.Board{Out: os.Stdout},
	}

	for {
		gs, err := c.Game(gID)
		if err != nil {
			return fmt.Errorf("failed to load game: %w", err)
		}

		switch gs.Phase {
		case ludo.GameOver:
			fmt.Printf("%s won!\n", *gs.Winner)
			return nil
		case ludo.AwaitingRoll:
			if err := p.ReadyToRoll(gs); err != nil {
				return err
			}
			if _, err := c.Roll(gID); err != nil {
				return err
			}
		case ludo.AwaitingSelection:
			legal, err := c.LegalTokens(gID)
			if err != nil {
				return err
			}
			id, err := p.ChooseToken(gs, legal)
			if err != nil {
				return err
			}
			_, err = c.Select(gID, id)
			switch client.StatusCode(err) {
			case 0:
				if err != nil {
					return err
				}
			case http.StatusBadRequest, http.StatusConflict:
				fmt.Printf("Can't move %s: %v\n", id, err)
			default:
				return err
			}
		}
	}
}

func watchHooks() client.WSHooks {
	return client.WSHooks{
		OnConnect: func() {
			log.Debug("connected")
		},
		OnRolled: func(r *web.Rolled) {
			fmt.Println(r.Result)
		},
		OnMoved: func(m *web.Moved) {
			fmt.Println(m.Result)
		},
	}
}
