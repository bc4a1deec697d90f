package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"worldstate-be/internal/entity"
	"worldstate-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ErrNoSubscribers is returned when a conversation has no open connection to
// deliver to.
var ErrNoSubscribers = errors.New("websocket: no subscribers for conversation")

// Hub tracks which widgets are open in which conversations and pushes fresh
// views to them. It doubles as the fallback outbound channel when NATS is
// unreachable.
type Hub struct {
	// Registered clients map: ConversationID -> List of Clients (multi-device)
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ConversationID] = append(h.clients[client.ConversationID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"conversation_id": client.ConversationID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.ConversationID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.ConversationID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.ConversationID]) == 0 {
					delete(h.clients, client.ConversationID)
					h.logger.Info("Hub", "Conversation has no clients left", map[string]interface{}{"conversation_id": client.ConversationID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// ShowsWidget reports whether any connected client currently has the widget
// open for the conversation. The render gate probes this before pushing.
func (h *Hub) ShowsWidget(conversationID string, widget entity.WidgetID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients[conversationID] {
		if client.Watches(widget) {
			return true
		}
	}
	return false
}

// Push delivers a rendered widget view to every local watcher and fans it out
// to other instances through redis.
func (h *Hub) Push(conversationID string, widget entity.WidgetID, payload interface{}) {
	data, err := json.Marshal(map[string]interface{}{
		"type":   "render",
		"widget": widget,
		"data":   payload,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal render payload", map[string]interface{}{"error": err.Error()})
		return
	}

	h.deliverLocal(conversationID, widget, data)

	if h.rdb != nil {
		envelope, _ := json.Marshal(map[string]interface{}{
			"conversation_id": conversationID,
			"widget":          widget,
			"message":         json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), "widget_events", envelope)
	}
}

// DispatchText sends an action message to the conversation's clients. It is
// the fallback link of the outbound chain and fails when nobody is connected.
func (h *Hub) DispatchText(conversationID, text string) error {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "action_message",
		"text": text,
	})

	h.mu.RLock()
	clients := h.clients[conversationID]
	h.mu.RUnlock()

	if len(clients) == 0 {
		return ErrNoSubscribers
	}

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"conversation_id": conversationID})
		}
	}
	return nil
}

func (h *Hub) deliverLocal(conversationID string, widget entity.WidgetID, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients[conversationID] {
		if !client.Watches(widget) {
			continue
		}
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping render", map[string]interface{}{"conversation_id": conversationID})
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "widget_events")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			ConversationID string          `json:"conversation_id"`
			Widget         entity.WidgetID `json:"widget"`
			Message        json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}
		h.deliverLocal(payload.ConversationID, payload.Widget, payload.Message)
	}
}
