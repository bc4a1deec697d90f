package contract

import (
	"context"

	"worldstate-be/internal/entity"
)

// IAuditRepository persists the mutation ledger.
type IAuditRepository interface {
	CreateBulk(ctx context.Context, rows []*entity.MutationAudit) error
	FindByConversation(ctx context.Context, conversationID string, limit int) ([]*entity.MutationAudit, error)
}
