package contract

import (
	"context"

	"worldstate-be/internal/entity"
)

// IVariableStore is the host's layered variable storage. Floor-scoped state
// is authoritative; the root and metadata layers are fallbacks written by
// older host versions. All getters return an empty document (never an error)
// when the layer holds nothing for the conversation.
type IVariableStore interface {
	GetFloorState(ctx context.Context, conversationID string, floor int) (entity.StateDocument, error)
	GetRootState(ctx context.Context, conversationID string) (entity.StateDocument, error)
	GetMetadataState(ctx context.Context, conversationID string) (entity.StateDocument, error)

	// SaveFloorState replaces the full document at the given floor. Floor
	// entity.FloorLatest addresses the newest stored floor.
	SaveFloorState(ctx context.Context, conversationID string, floor int, doc entity.StateDocument) error
}
