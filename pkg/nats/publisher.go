package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// StreamName holds outbound action messages for the chat host to pick up.
const StreamName = "OUTBOUND"

// OutboundMessage is the wire shape of one action message.
type OutboundMessage struct {
	ConversationID string    `json:"conversation_id"`
	Text           string    `json:"text"`
	SentAt         time.Time `json:"sent_at"`
}

// Publisher sends outbound action messages to the NATS bus.
type Publisher struct {
	nc *nats.Conn
	js jetstream.JetStream
}

func NewPublisher(url string) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      StreamName,
		Subjects:  []string{"outbound.>"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.WorkQueuePolicy,
	})
	if err != nil {
		// NATS may not be ready yet; the stream can still exist already.
		log.Printf("Warn: Failed to ensure stream %q: %v", StreamName, err)
	}

	return &Publisher{nc: nc, js: js}, nil
}

// PublishMessage sends one action message onto the conversation's subject.
func (p *Publisher) PublishMessage(ctx context.Context, conversationID, text string) error {
	data, err := json.Marshal(OutboundMessage{
		ConversationID: conversationID,
		Text:           text,
		SentAt:         time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal outbound message: %w", err)
	}

	subject := fmt.Sprintf("outbound.%s", conversationID)
	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish to subject %s: %w", subject, err)
	}
	return nil
}

func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
