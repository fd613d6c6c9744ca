package socket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"wordthink/pkg/logger"

	"github.com/gorilla/websocket"
)

// Message types pushed to feed subscribers.
const (
	SubscribedType   = "SUBSCRIBED"
	ThinkCreatedType = "THINK_CREATED"
	ThinkUpdatedType = "THINK_UPDATED"
	ThinkDeletedType = "THINK_DELETED"
)

const broadcastBuffer = 256

// FeedMessage is one event on a user's public feed.
type FeedMessage struct {
	Type     string          `json:"type"`
	Username string          `json:"username"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// Hub fans public think events out to the clients watching a username.
type Hub struct {
	// Rooms maps a username to the clients following that user's feed.
	Rooms      map[string]map[*Client]bool
	Broadcast  chan FeedMessage
	Register   chan *Client
	Unregister chan *Client
	done       chan struct{}
	mu         sync.Mutex
	upgrader   websocket.Upgrader
}

type HubOption func(*Hub)

// WithOriginCheck decides which handshake origins may subscribe. Without it
// only same-origin handshakes are accepted.
func WithOriginCheck(check func(r *http.Request) bool) HubOption {
	return func(h *Hub) {
		h.upgrader.CheckOrigin = check
	}
}

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		Rooms:      make(map[string]map[*Client]bool),
		Broadcast:  make(chan FeedMessage, broadcastBuffer),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Publish queues msg for delivery and never blocks the caller.
// When the broadcast queue is full the message is dropped.
func (h *Hub) Publish(msg FeedMessage) {
	select {
	case h.Broadcast <- msg:
	default:
		logger.Sugar.Warnf("Feed queue full, dropping %s for %s", msg.Type, msg.Username)
	}
}

// Subscribers reports how many clients follow username.
func (h *Hub) Subscribers(username string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.Rooms[username])
}

// Run processes registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return

		case client := <-h.Register:
			h.mu.Lock()
			if h.Rooms[client.Username] == nil {
				h.Rooms[client.Username] = make(map[*Client]bool)
			}
			h.Rooms[client.Username][client] = true
			h.mu.Unlock()

			ack, _ := json.Marshal(FeedMessage{Type: SubscribedType, Username: client.Username})
			select {
			case client.Send <- ack:
			default:
			}
			logger.Sugar.Infof("Client subscribed to feed of %s", client.Username)

		case client := <-h.Unregister:
			h.remove(client)

		case msg := <-h.Broadcast:
			payload, err := json.Marshal(msg)
			if err != nil {
				logger.Sugar.Errorf("Error marshalling feed message: %v", err)
				continue
			}

			// Collect recipients first so no send happens under the lock.
			h.mu.Lock()
			clientsToSend := make([]*Client, 0, len(h.Rooms[msg.Username]))
			for client := range h.Rooms[msg.Username] {
				clientsToSend = append(clientsToSend, client)
			}
			h.mu.Unlock()

			for _, client := range clientsToSend {
				select {
				case client.Send <- payload:
				default:
					logger.Sugar.Warnf("Feed client of %s is lagging, disconnecting", client.Username)
					h.remove(client)
				}
			}
		}
	}
}

// remove drops client from its room and closes its send channel once.
func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.Rooms[client.Username]
	if !ok || !clients[client] {
		return
	}
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.Rooms, client.Username)
	}
	logger.Sugar.Infof("Client left feed of %s", client.Username)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for username, clients := range h.Rooms {
		for client := range clients {
			close(client.Send)
		}
		delete(h.Rooms, username)
	}
}
