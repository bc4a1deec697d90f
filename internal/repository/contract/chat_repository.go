package contract

import (
	"context"

	"worldstate-be/internal/entity"
)

// IChatRepository exposes the conversation's floor list as the host records
// it. Floors are ordered oldest first; the slice index equals the floor id.
type IChatRepository interface {
	Messages(ctx context.Context, conversationID string) ([]entity.Message, error)
}
