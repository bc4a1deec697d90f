package memory

import (
	"context"
	"sync"

	"worldstate-be/internal/entity"
)

// ChatRepository is the in-memory floor list used by tests and dev mode.
type ChatRepository struct {
	mu    sync.RWMutex
	chats map[string][]entity.Message
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{chats: make(map[string][]entity.Message)}
}

func (r *ChatRepository) Messages(_ context.Context, conversationID string) ([]entity.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	msgs := r.chats[conversationID]
	out := make([]entity.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

// Append records a new floor and returns its id.
func (r *ChatRepository) Append(conversationID, role string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := len(r.chats[conversationID])
	r.chats[conversationID] = append(r.chats[conversationID], entity.Message{ID: id, Role: role})
	return id
}

// SetMessages replaces the whole floor list, for tests.
func (r *ChatRepository) SetMessages(conversationID string, roles []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := make([]entity.Message, len(roles))
	for i, role := range roles {
		msgs[i] = entity.Message{ID: i, Role: role}
	}
	r.chats[conversationID] = msgs
}
