package implementation

import (
	"context"

	"worldstate-be/internal/repository/contract"
	"worldstate-be/pkg/nats"
)

// NATSDispatcher is the primary outbound channel: action messages go onto
// the JetStream OUTBOUND stream for the host bridge to relay into the chat.
type NATSDispatcher struct {
	publisher *nats.Publisher
}

func NewNATSDispatcher(publisher *nats.Publisher) contract.IMessageDispatcher {
	return &NATSDispatcher{publisher: publisher}
}

func (d *NATSDispatcher) Name() string {
	return "nats"
}

func (d *NATSDispatcher) Dispatch(ctx context.Context, conversationID, text string) error {
	return d.publisher.PublishMessage(ctx, conversationID, text)
}
