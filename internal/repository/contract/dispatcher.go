package contract

import "context"

// IMessageDispatcher delivers an action message back into the conversation.
// Implementations form an ordered chain; a failing link returns an error and
// the next one is tried.
type IMessageDispatcher interface {
	Name() string
	Dispatch(ctx context.Context, conversationID, text string) error
}
