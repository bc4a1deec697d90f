package implementation

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"worldstate-be/internal/entity"
	"worldstate-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// RedisVariableStore mirrors the host's layered variable storage in redis.
// Floor documents live under ws:{conv}:floor:{n}, the fallback layers under
// ws:{conv}:root and ws:{conv}:meta, and ws:{conv}:maxfloor tracks the newest
// written floor for the latest sentinel.
type RedisVariableStore struct {
	client *redis.Client
}

func NewRedisVariableStore(client *redis.Client) contract.IVariableStore {
	return &RedisVariableStore{client: client}
}

func floorKey(conversationID string, floor int) string {
	return fmt.Sprintf("ws:%s:floor:%d", conversationID, floor)
}

func (s *RedisVariableStore) resolveFloor(ctx context.Context, conversationID string, floor int) (int, error) {
	if floor != entity.FloorLatest {
		return floor, nil
	}
	val, err := s.client.Get(ctx, fmt.Sprintf("ws:%s:maxfloor", conversationID)).Result()
	if err == redis.Nil {
		return -1, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(val)
}

func (s *RedisVariableStore) getDoc(ctx context.Context, key string) (entity.StateDocument, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return entity.StateDocument{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	var doc entity.StateDocument
	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		return nil, fmt.Errorf("decode state at %s: %w", key, err)
	}
	return doc, nil
}

func (s *RedisVariableStore) GetFloorState(ctx context.Context, conversationID string, floor int) (entity.StateDocument, error) {
	resolved, err := s.resolveFloor(ctx, conversationID, floor)
	if err != nil {
		return nil, err
	}
	if resolved < 0 {
		return entity.StateDocument{}, nil
	}
	return s.getDoc(ctx, floorKey(conversationID, resolved))
}

func (s *RedisVariableStore) GetRootState(ctx context.Context, conversationID string) (entity.StateDocument, error) {
	return s.getDoc(ctx, fmt.Sprintf("ws:%s:root", conversationID))
}

func (s *RedisVariableStore) GetMetadataState(ctx context.Context, conversationID string) (entity.StateDocument, error) {
	return s.getDoc(ctx, fmt.Sprintf("ws:%s:meta", conversationID))
}

func (s *RedisVariableStore) SaveFloorState(ctx context.Context, conversationID string, floor int, doc entity.StateDocument) error {
	resolved, err := s.resolveFloor(ctx, conversationID, floor)
	if err != nil {
		return err
	}
	if resolved < 0 {
		resolved = 0
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	max, err := s.resolveFloor(ctx, conversationID, entity.FloorLatest)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, floorKey(conversationID, resolved), data, 0)
	if resolved > max {
		pipe.Set(ctx, fmt.Sprintf("ws:%s:maxfloor", conversationID), strconv.Itoa(resolved), 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis save floor %d: %w", resolved, err)
	}
	return nil
}
