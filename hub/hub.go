package hub

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/bcspragu/Ludo/ludo"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Hub maintains the set of active connections and broadcasts messages to the
// connections.
type Hub struct {
	// Registered connections.
	connections map[ludo.GameID][]*connection

	// Messages to send to everyone watching a game.
	broadcast chan *broadcastMsg

	// Register requests from the connections.
	register chan *connection

	// Unregister requests from connections.
	unregister chan *connection

	// Requests for the number of connections to a game.
	count chan *countReq

	nextID uint64
}

// New creates a new Hub and starts it in a background Go routine.
func New() *Hub {
	h := &Hub{
		broadcast:   make(chan *broadcastMsg),
		register:    make(chan *connection),
		unregister:  make(chan *connection),
		count:       make(chan *countReq),
		connections: make(map[ludo.GameID][]*connection),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			conns := h.connections[c.gameID]
			h.connections[c.gameID] = append(conns, c)
		case c := <-h.unregister:
			h.deleteConn(c)
		case m := <-h.broadcast:
			var slow []*connection
			for _, c := range h.connections[m.gameID] {
				select {
				case c.send <- m.msg:
				default:
					slow = append(slow, c)
				}
			}
			for _, c := range slow {
				log.Warnf("hub: dropping slow connection %s", c.id)
				h.deleteConn(c)
			}
		case req := <-h.count:
			req.resp <- len(h.connections[req.gameID])
		}
	}
}

func (h *Hub) deleteConn(c *connection) {
	rconns := h.connections[c.gameID]
	for i, rconn := range rconns {
		if rconn.id == c.id {
			close(c.send)
			// Remove the connection.
			copy(rconns[i:], rconns[i+1:])
			rconns[len(rconns)-1] = nil
			h.connections[c.gameID] = rconns[:len(rconns)-1]
			return
		}
	}
}

type broadcastMsg struct {
	gameID ludo.GameID
	msg    []byte
}

// ToGame sends a message to everyone watching a game.
func (h *Hub) ToGame(gID ludo.GameID, msg interface{}) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(msg); err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	h.broadcast <- &broadcastMsg{
		gameID: gID,
		msg:    buf.Bytes(),
	}

	return nil
}

type countReq struct {
	gameID ludo.GameID
	resp   chan int
}

// Watchers returns how many connections are watching a game.
func (h *Hub) Watchers(gID ludo.GameID) int {
	req := &countReq{gameID: gID, resp: make(chan int)}
	h.count <- req
	return <-req.resp
}

// Register associates a connection with the hub and a given game.
func (h *Hub) Register(ws *websocket.Conn, gID ludo.GameID) {
	conn := &connection{
		id:     h.newID(gID),
		h:      h,
		gameID: gID,
		send:   make(chan []byte, 256),
		ws:     ws,
	}
	h.register <- conn
	go conn.writePump()
	go conn.readPump()
}

func (h *Hub) newID(gID ludo.GameID) string {
	return fmt.Sprintf("%s-%d", gID, atomic.AddUint64(&h.nextID, 1))
}
