package remote

import (
	"context"
	"encoding/json"
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck"
)

const (
	hubQueueSize  = 64
	clientBacklog = 32
)

// Message is the envelope of every websocket frame the server sends.
type Message struct {
	Type  string              `json:"type"` // "snapshot" or "error"
	Data  *slidedeck.Snapshot `json:"data,omitempty"`
	Error string              `json:"error,omitempty"`
}

type directMessage struct {
	client *Client
	data   []byte
}

// Hub fans snapshots out to every connected websocket client.
//
// The client set is owned by the goroutine running Run. Other goroutines
// reach it only through channels.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	direct     chan directMessage
	done       chan struct{}

	count  *atomic.Int64
	logger *slog.Logger
}

// NewHub returns an idle hub. Nothing is delivered until Run starts.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, hubQueueSize),
		direct:     make(chan directMessage, hubQueueSize),
		done:       make(chan struct{}),
		count:      atomic.NewInt64(0),
		logger:     logger,
	}
}

// Run delivers messages until ctx is done, then disconnects every client.
// A hub runs once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			h.count.Inc()
			h.logger.Info("Remote client connected", "addr", client.addr, "clients", h.count.Load())

		case client := <-h.unregister:
			if h.clients[client] {
				h.drop(client)
				h.logger.Info("Remote client disconnected", "addr", client.addr, "clients", h.count.Load())
			}

		case data := <-h.broadcast:
			for client := range h.clients {
				h.deliver(client, data)
			}

		case msg := <-h.direct:
			if h.clients[msg.client] {
				h.deliver(msg.client, msg.data)
			}
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// Broadcast queues snap for every client. It never blocks, so it is safe to
// call from the presentation's event loop.
func (h *Hub) Broadcast(snap slidedeck.Snapshot) {
	data, err := encode(Message{Type: "snapshot", Data: &snap})
	if err != nil {
		h.logger.Error("Unable to encode snapshot", "error", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("Remote broadcast queue full, dropping snapshot", "slide", snap.Current)
	}
}

// join registers client and reports false once the hub has stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// send queues msg for one client.
func (h *Hub) send(client *Client, msg Message) {
	data, err := encode(msg)
	if err != nil {
		h.logger.Error("Unable to encode message", "error", err)
		return
	}
	select {
	case h.direct <- directMessage{client: client, data: data}:
	case <-h.done:
	}
}

func (h *Hub) deliver(client *Client, data []byte) {
	select {
	case client.send <- data:
	default:
		h.logger.Warn("Remote client backlog full, disconnecting", "addr", client.addr)
		h.drop(client)
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	h.count.Dec()
	close(client.send)
}

func encode(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}
