package implementation

import (
	"context"
	"encoding/json"
	"fmt"

	"worldstate-be/internal/entity"
	"worldstate-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// RedisChatRepository reads the conversation floor list the host mirrors into
// redis as a list of JSON messages under chat:{conv}:messages.
type RedisChatRepository struct {
	client *redis.Client
}

func NewRedisChatRepository(client *redis.Client) contract.IChatRepository {
	return &RedisChatRepository{client: client}
}

func (r *RedisChatRepository) Messages(ctx context.Context, conversationID string) ([]entity.Message, error) {
	key := fmt.Sprintf("chat:%s:messages", conversationID)
	raw, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err == redis.Nil {
		return []entity.Message{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis lrange %s: %w", key, err)
	}

	msgs := make([]entity.Message, 0, len(raw))
	for i, item := range raw {
		var msg entity.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("decode message %d in %s: %w", i, key, err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
