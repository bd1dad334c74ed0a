package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bcspragu/Ludo/ludo"
	"github.com/bcspragu/Ludo/web"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type wsClient struct {
	conn  *websocket.Conn
	msgs  chan []byte
	done  chan struct{}
	hooks WSHooks
}

// ListenForUpdates watches a game, calling the hooks for each update. It
// blocks until the connection is closed.
func (c *Client) ListenForUpdates(gID ludo.GameID, hooks WSHooks) error {
	scheme := "ws"
	if c.scheme == "https" {
		scheme = "wss"
	}

	addr := scheme + "://" + c.addr + "/api/game/" + string(gID) + "/ws"

	dialer := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 45 * time.Second,
		Jar:              c.http.Jar,
	}
	conn, _, err := dialer.Dial(addr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer conn.Close()

	if hooks.OnConnect != nil {
		go hooks.OnConnect()
	}

	wsc := &wsClient{
		conn: conn,
		done: make(chan struct{}),
		// Buffered so reads don't stall while a hook is waiting on user input.
		// Messages are still handled one at a time, in order.
		msgs:  make(chan []byte, 100),
		hooks: hooks,
	}

	go wsc.handleMessages()

	return wsc.read()
}

func (ws *wsClient) read() error {
	defer close(ws.done)
	for {
		messageType, message, err := ws.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("ReadMessage: %w", err)
		}

		if messageType != websocket.TextMessage {
			continue
		}

		ws.msgs <- message
	}
}

func (ws *wsClient) handleMessages() {
	for {
		select {
		case <-ws.done:
			return
		case msg := <-ws.msgs:
			var justAction struct {
				Action string `json:"action"`
			}
			if err := json.Unmarshal(msg, &justAction); err != nil {
				log.Errorf("failed to unmarshal action from server: %v", err)
				continue
			}

			switch justAction.Action {
			case "ROLLED":
				ws.handleRolled(msg)
			case "MOVED":
				ws.handleMoved(msg)
			default:
				log.Warnf("unknown message action %q", justAction.Action)
			}
		}
	}
}

func (ws *wsClient) handleRolled(dat []byte) {
	var r web.Rolled
	if err := json.Unmarshal(dat, &r); err != nil {
		log.Errorf("handleRolled: %v", err)
		return
	}

	if ws.hooks.OnRolled == nil {
		return
	}
	ws.hooks.OnRolled(&r)
}

func (ws *wsClient) handleMoved(dat []byte) {
	var m web.Moved
	if err := json.Unmarshal(dat, &m); err != nil {
		log.Errorf("handleMoved: %v", err)
		return
	}

	if ws.hooks.OnMoved == nil {
		return
	}
	ws.hooks.OnMoved(&m)
}

type WSHooks struct {
	OnConnect func()
	OnRolled  func(*web.Rolled)
	OnMoved   func(*web.Moved)
}
