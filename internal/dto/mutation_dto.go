package dto

type EquipRequest struct {
	ConversationID string `json:"conversationId" validate:"required"`
	Category       string `json:"category" validate:"required"`
	ItemKey        string `json:"itemKey" validate:"required"`
	Slot           string `json:"slot" validate:"required"`
	// Confirm acknowledges replacing whatever occupies the slot.
	Confirm bool `json:"confirm"`
}

type UnequipRequest struct {
	ConversationID string `json:"conversationId" validate:"required"`
	Slot           string `json:"slot" validate:"required"`
}

type ConsumeRequest struct {
	ConversationID string `json:"conversationId" validate:"required"`
	Category       string `json:"category" validate:"required"`
	ItemKey        string `json:"itemKey" validate:"required"`
	Quantity       int    `json:"quantity" validate:"omitempty,min=1"`
	// Target and Method flavor the action message sent back into the chat.
	Target string `json:"target"`
	Method string `json:"method"`
}

type AcceptQuestRequest struct {
	ConversationID string `json:"conversationId" validate:"required"`
	QuestKey       string `json:"questKey" validate:"required"`
}

type MutationResponse struct {
	OperationID string `json:"operationId"`
	// Delivered reports whether the action message reached the chat.
	Delivered bool `json:"delivered"`
}

type LifecycleRequest struct {
	ConversationID string `json:"conversationId" validate:"required"`
}

type AuditListResponse struct {
	ConversationID string      `json:"conversationId"`
	Rows           interface{} `json:"rows"`
}
