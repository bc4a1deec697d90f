package service

import (
	"context"

	"worldstate-be/internal/entity"
	"worldstate-be/internal/repository/contract"
)

type IFloorService interface {
	// ResolveStateFloor returns the newest floor whose author is not the
	// user. User floors never carry model-written state. When no such floor
	// exists it returns entity.FloorLatest.
	ResolveStateFloor(ctx context.Context, conversationID string) (int, error)
}

type floorService struct {
	chatRepository contract.IChatRepository
}

func NewFloorService(chatRepository contract.IChatRepository) IFloorService {
	return &floorService{chatRepository: chatRepository}
}

func (s *floorService) ResolveStateFloor(ctx context.Context, conversationID string) (int, error) {
	messages, err := s.chatRepository.Messages(ctx, conversationID)
	if err != nil {
		return 0, err
	}

	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role != entity.RoleUser {
			return messages[i].ID, nil
		}
	}
	return entity.FloorLatest, nil
}
