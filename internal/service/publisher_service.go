package service

import (
	"context"
	"encoding/json"

	"worldstate-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	PublishReplyReceived(ctx context.Context, conversationID string) error
	PublishConversationChanged(ctx context.Context, conversationID string) error
}

type publisherService struct {
	pubSub *gochannel.GoChannel
}

func NewPublisherService(pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{pubSub: pubSub}
}

func (s *publisherService) publish(event events.Event) error {
	payload, err := json.Marshal(event.Payload())
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return s.pubSub.Publish(event.EventType(), msg)
}

func (s *publisherService) PublishReplyReceived(_ context.Context, conversationID string) error {
	return s.publish(events.NewReplyReceived(conversationID))
}

func (s *publisherService) PublishConversationChanged(_ context.Context, conversationID string) error {
	return s.publish(events.NewConversationChanged(conversationID))
}
