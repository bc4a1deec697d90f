package contract

import (
	"worldstate-be/internal/entity"
)

// ISnapshotRepository keeps the single live snapshot per (conversation,
// widget). Snapshots are a change-detection aid, not durable state.
type ISnapshotRepository interface {
	Get(conversationID string, widget entity.WidgetID) (*entity.Snapshot, bool)
	Save(snapshot *entity.Snapshot)
	DeleteConversation(conversationID string)
}
