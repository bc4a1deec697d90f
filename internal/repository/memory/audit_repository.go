package memory

import (
	"context"
	"sync"

	"worldstate-be/internal/entity"
)

// AuditRepository keeps the mutation ledger in memory for tests and dev mode.
type AuditRepository struct {
	mu   sync.Mutex
	rows []*entity.MutationAudit
}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

func (r *AuditRepository) CreateBulk(_ context.Context, rows []*entity.MutationAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rows...)
	return nil
}

func (r *AuditRepository) FindByConversation(_ context.Context, conversationID string, limit int) ([]*entity.MutationAudit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.MutationAudit{}
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].ConversationId != conversationID {
			continue
		}
		out = append(out, r.rows[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// All returns every row, for assertions.
func (r *AuditRepository) All() []*entity.MutationAudit {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.MutationAudit, len(r.rows))
	copy(out, r.rows)
	return out
}
