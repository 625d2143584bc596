// Package relay is the dumb broadcast channel between two browsers. It
// performs no validation, ordering or persistence and is never
// authoritative over battle resolution, which always runs locally.
package relay

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Nishant2356/Card-game/internal/game"
	"github.com/Nishant2356/Card-game/internal/logging"
)

// Envelope is the single wire shape: an event name plus an opaque payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan Envelope
	slot game.Player
}

type room struct {
	clients map[*client]struct{}
	// stack of unclaimed player slots; popped on connect, pushed back on
	// disconnect so a reconnecting browser can reclaim the seat
	stack []game.Player
}

func newRoom() *room {
	return &room{
		clients: make(map[*client]struct{}),
		stack:   []game.Player{game.Player2, game.Player1},
	}
}

// Hub tracks one broadcast group per room code.
type Hub struct {
	mu       sync.Mutex
	rooms    map[string]*room
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]*room),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the relay carries no credentials and is not authoritative
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Broadcast sends an event to every client in the room. Marshal failures
// and slow clients degrade to a dropped message, never an error: transport
// faults must not block resolution pacing.
func (h *Hub) Broadcast(roomCode, event string, data interface{}) {
	b, err := json.Marshal(data)
	if err != nil {
		logging.Error("relay broadcast marshal failed", err, logging.Fields{"event": event})
		return
	}
	env := Envelope{Event: event, Data: b}

	h.mu.Lock()
	defer h.mu.Unlock()
	rm, ok := h.rooms[roomCode]
	if !ok {
		return
	}
	for c := range rm.clients {
		select {
		case c.send <- env:
		default:
		}
	}
}

// ServeWS upgrades an HTTP request into a relay connection for a room. The
// first two connections claim "Player 1" and "Player 2"; later ones are
// spectators with no slot.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, roomCode string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("relay upgrade failed", err, nil)
		return
	}

	c := &client{conn: conn, send: make(chan Envelope, 32)}

	h.mu.Lock()
	rm, ok := h.rooms[roomCode]
	if !ok {
		rm = newRoom()
		h.rooms[roomCode] = rm
	}
	if n := len(rm.stack); n > 0 {
		c.slot = rm.stack[n-1]
		rm.stack = rm.stack[:n-1]
	}
	rm.clients[c] = struct{}{}
	h.mu.Unlock()

	if b, err := json.Marshal(c.slot); err == nil {
		c.send <- Envelope{Event: "assignPlayer", Data: b}
	}

	go c.writeLoop()
	h.readLoop(roomCode, rm, c)
}

// readLoop relays every client message to the other room members,
// mirroring socket.broadcast.emit semantics: the sender never receives its
// own message back.
func (h *Hub) readLoop(roomCode string, rm *room, c *client) {
	defer h.drop(roomCode, rm, c)
	for {
		var env Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			return
		}
		h.mu.Lock()
		for other := range rm.clients {
			if other == c {
				continue
			}
			select {
			case other.send <- env:
			default:
			}
		}
		h.mu.Unlock()
	}
}

func (c *client) writeLoop() {
	for env := range c.send {
		if err := c.conn.WriteJSON(env); err != nil {
			return
		}
	}
}

// drop releases the client's slot back onto the stack and closes the
// connection. Empty rooms are forgotten.
func (h *Hub) drop(roomCode string, rm *room, c *client) {
	h.mu.Lock()
	delete(rm.clients, c)
	if c.slot != "" {
		rm.stack = append(rm.stack, c.slot)
	}
	if len(rm.clients) == 0 {
		delete(h.rooms, roomCode)
	}
	h.mu.Unlock()
	close(c.send)
	_ = c.conn.Close()
}
