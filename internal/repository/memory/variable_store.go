package memory

import (
	"context"
	"sync"

	"worldstate-be/internal/entity"
)

type conversationState struct {
	floors   map[int]entity.StateDocument
	maxFloor int
	root     entity.StateDocument
	metadata entity.StateDocument
}

// VariableStore is the in-memory variable storage used by tests and dev mode.
type VariableStore struct {
	mu            sync.RWMutex
	conversations map[string]*conversationState
}

func NewVariableStore() *VariableStore {
	return &VariableStore{conversations: make(map[string]*conversationState)}
}

func (s *VariableStore) state(conversationID string) *conversationState {
	cs, ok := s.conversations[conversationID]
	if !ok {
		cs = &conversationState{floors: make(map[int]entity.StateDocument), maxFloor: -1}
		s.conversations[conversationID] = cs
	}
	return cs
}

func (s *VariableStore) GetFloorState(_ context.Context, conversationID string, floor int) (entity.StateDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cs, ok := s.conversations[conversationID]
	if !ok {
		return entity.StateDocument{}, nil
	}
	if floor == entity.FloorLatest {
		floor = cs.maxFloor
	}
	doc, ok := cs.floors[floor]
	if !ok {
		return entity.StateDocument{}, nil
	}
	return doc, nil
}

func (s *VariableStore) GetRootState(_ context.Context, conversationID string) (entity.StateDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cs, ok := s.conversations[conversationID]; ok && cs.root != nil {
		return cs.root, nil
	}
	return entity.StateDocument{}, nil
}

func (s *VariableStore) GetMetadataState(_ context.Context, conversationID string) (entity.StateDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cs, ok := s.conversations[conversationID]; ok && cs.metadata != nil {
		return cs.metadata, nil
	}
	return entity.StateDocument{}, nil
}

func (s *VariableStore) SaveFloorState(_ context.Context, conversationID string, floor int, doc entity.StateDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := s.state(conversationID)
	if floor == entity.FloorLatest {
		floor = cs.maxFloor
		if floor < 0 {
			floor = 0
		}
	}
	cs.floors[floor] = doc
	if floor > cs.maxFloor {
		cs.maxFloor = floor
	}
	return nil
}

// SeedRoot and SeedMetadata populate the fallback layers for tests.
func (s *VariableStore) SeedRoot(conversationID string, doc entity.StateDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(conversationID).root = doc
}

func (s *VariableStore) SeedMetadata(conversationID string, doc entity.StateDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(conversationID).metadata = doc
}
