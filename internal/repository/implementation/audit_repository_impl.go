package implementation

import (
	"context"

	"worldstate-be/internal/entity"
	"worldstate-be/internal/repository/contract"

	"gorm.io/gorm"
)

type AuditRepositoryImpl struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) contract.IAuditRepository {
	return &AuditRepositoryImpl{db: db}
}

func (r *AuditRepositoryImpl) CreateBulk(ctx context.Context, rows []*entity.MutationAudit) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(rows).Error
}

func (r *AuditRepositoryImpl) FindByConversation(ctx context.Context, conversationID string, limit int) ([]*entity.MutationAudit, error) {
	var rows []*entity.MutationAudit
	q := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
