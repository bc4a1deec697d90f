package entity

import "time"

// WidgetID identifies one of the synchronized UI surfaces.
type WidgetID string

const (
	WidgetInventory WidgetID = "inventory"
	WidgetDiary     WidgetID = "diary"
	WidgetStatus    WidgetID = "status"
	WidgetQuests    WidgetID = "quests"
)

// DomainRecord is any normalized record a widget displays. DiffFields returns
// the ordered comparison fields; annotations and timestamps never appear in
// them.
type DomainRecord interface {
	DiffFields() []string
}

// SnapshotSource says which store layer a snapshot was read from.
type SnapshotSource string

const (
	SourceFloor    SnapshotSource = "floor"
	SourceRoot     SnapshotSource = "root"
	SourceMetadata SnapshotSource = "metadata"
	SourceNone     SnapshotSource = "none"
)

// Snapshot is the last normalized view of one widget in one conversation.
type Snapshot struct {
	ConversationID string         `json:"conversationId"`
	Widget         WidgetID       `json:"widget"`
	Floor          int            `json:"floor"`
	Source         SnapshotSource `json:"source"`
	Records        []DomainRecord `json:"records"`
	TakenAt        time.Time      `json:"takenAt"`
}
