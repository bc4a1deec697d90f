package dto

import "worldstate-be/internal/entity"

type InventoryView struct {
	Items      []entity.Item `json:"items"`
	Categories []string      `json:"categories"`
	Total      int           `json:"total"`
}

type DiaryView struct {
	Entries []entity.DiaryEntry `json:"entries"`
}

type StatusView struct {
	User *entity.CharacterSheet `json:"user"`
	NPCs []entity.NPCSheet      `json:"npcs"`
}

type QuestCounts struct {
	Available  int `json:"available"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

type QuestView struct {
	Available  []entity.QuestRecord `json:"available"`
	InProgress []entity.QuestRecord `json:"inProgress"`
	Completed  []entity.QuestRecord `json:"completed"`
	Counts     QuestCounts          `json:"counts"`
}

// WidgetViewResponse wraps any widget view with its provenance.
type WidgetViewResponse struct {
	ConversationID string                `json:"conversationId"`
	Widget         entity.WidgetID       `json:"widget"`
	Floor          int                   `json:"floor"`
	Source         entity.SnapshotSource `json:"source"`
	Changed        bool                  `json:"changed"`
	View           interface{}           `json:"view"`
}
