package service

import (
	"context"

	"worldstate-be/internal/entity"
	"worldstate-be/internal/pkg/logger"
	"worldstate-be/internal/repository/contract"
)

type ISnapshotService interface {
	// Read resolves the state floor and walks the source chain until a
	// non-empty document appears: floor-scoped state first, then the root
	// layer, then session metadata. An all-empty chain yields an empty
	// document with SourceNone, never an error.
	Read(ctx context.Context, conversationID string) (entity.StateDocument, int, entity.SnapshotSource, error)
}

type snapshotService struct {
	floorService  IFloorService
	variableStore contract.IVariableStore
	logger        logger.ILogger
}

func NewSnapshotService(
	floorService IFloorService,
	variableStore contract.IVariableStore,
	log logger.ILogger,
) ISnapshotService {
	return &snapshotService{
		floorService:  floorService,
		variableStore: variableStore,
		logger:        log,
	}
}

func (s *snapshotService) Read(ctx context.Context, conversationID string) (entity.StateDocument, int, entity.SnapshotSource, error) {
	floor, err := s.floorService.ResolveStateFloor(ctx, conversationID)
	if err != nil {
		return nil, 0, entity.SourceNone, err
	}

	doc, err := s.variableStore.GetFloorState(ctx, conversationID, floor)
	if err != nil {
		return nil, 0, entity.SourceNone, err
	}
	if !doc.IsEmpty() {
		return doc, floor, entity.SourceFloor, nil
	}

	doc, err = s.variableStore.GetRootState(ctx, conversationID)
	if err != nil {
		return nil, 0, entity.SourceNone, err
	}
	if !doc.IsEmpty() {
		return doc, floor, entity.SourceRoot, nil
	}

	doc, err = s.variableStore.GetMetadataState(ctx, conversationID)
	if err != nil {
		return nil, 0, entity.SourceNone, err
	}
	if !doc.IsEmpty() {
		return doc, floor, entity.SourceMetadata, nil
	}

	s.logger.Debug("SnapshotService", "No state in any source", map[string]interface{}{
		"conversation_id": conversationID,
		"floor":           floor,
	})
	return entity.StateDocument{}, floor, entity.SourceNone, nil
}
