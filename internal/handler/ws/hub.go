package ws

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"YenDong/internal/domain/models"
	drepo "YenDong/internal/domain/repository"
	"YenDong/pkg/logger"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Message is the envelope written to every subscriber.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type ratePayload struct {
	Rate      float64 `json:"rate"`
	Timestamp string  `json:"timestamp"`
}

func rateMessage(r models.CurrentRate) Message {
	return Message{Type: "rate", Payload: ratePayload{
		Rate:      r.Rate.InexactFloat64(),
		Timestamp: r.Timestamp.UTC().Format(isoMillis),
	}}
}

// Hub owns the set of live clients. Only the Run goroutine touches the set.
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	count      atomic.Int64
	log        *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        log.With(logger.String("component", "ws_hub")),
	}
}

var _ drepo.RateNotifier = (*Hub)(nil)

// Run serves register, unregister and broadcast until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Add(1)
			h.log.Debug("client registered", logger.String("remote", c.remote))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				h.log.Debug("client unregistered", logger.String("remote", c.remote))
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					h.log.Warn("client send buffer full, dropping", logger.String("remote", c.remote))
					h.drop(c)
				}
			}
		}
	}
}

// Register adds c. It reports false once the hub has stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	close(c.send)
	h.count.Add(-1)
}

// Clients reports the number of registered clients.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// NotifyRate broadcasts the rate. It never blocks: when the queue is full the update is dropped.
func (h *Hub) NotifyRate(r models.CurrentRate) {
	b, err := json.Marshal(rateMessage(r))
	if err != nil {
		h.log.Error("marshal rate message", logger.Error(err))
		return
	}
	select {
	case h.broadcast <- b:
	default:
		h.log.Warn("broadcast queue full, rate update dropped")
	}
}
