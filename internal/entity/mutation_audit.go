package entity

import (
	"time"

	"github.com/google/uuid"
)

// MutationAudit is one persisted ledger row for a single key-path write
// performed by the mutation coordinator. OperationId groups the writes of
// one user action.
type MutationAudit struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OperationId    uuid.UUID `gorm:"type:uuid;index"`
	ConversationId string    `gorm:"index"`
	Action         string
	KeyPath        string
	Value          string
	Reason         string
	CreatedAt      time.Time
}
