package events

import "time"

// Lifecycle bus topics. The host bridge publishes onto these, the refresh
// scheduler subscribes.
const (
	TopicReplyReceived       = "lifecycle.reply_received"
	TopicConversationChanged = "lifecycle.conversation_changed"
)

// Event defines the contract for all system events.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewReplyReceived marks that the host finished streaming a new assistant
// reply for the given conversation.
func NewReplyReceived(conversationID string) Event {
	return BaseEvent{
		Type:       TopicReplyReceived,
		Data:       map[string]interface{}{"conversation_id": conversationID},
		OccurredAt: time.Now(),
	}
}

// NewConversationChanged marks that the user switched to another conversation.
func NewConversationChanged(conversationID string) Event {
	return BaseEvent{
		Type:       TopicConversationChanged,
		Data:       map[string]interface{}{"conversation_id": conversationID},
		OccurredAt: time.Now(),
	}
}
