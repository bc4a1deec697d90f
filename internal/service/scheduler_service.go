package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"worldstate-be/internal/pkg/logger"
	"worldstate-be/internal/repository/contract"
	"worldstate-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/cenkalti/backoff/v5"
)

type ISchedulerService interface {
	// Start subscribes to the lifecycle bus and begins scheduling refresh
	// passes. Calling it again while running is a no-op.
	Start(ctx context.Context) error
	Stop()
}

type schedulerService struct {
	pubSub        *gochannel.GoChannel
	widgetService IWidgetService
	snapshots     contract.ISnapshotRepository
	settleDelay   time.Duration
	cooldown      time.Duration
	maxTries      uint
	logger        logger.ILogger

	mu          sync.Mutex
	lastRefresh map[string]time.Time
	started     bool
	cancel      context.CancelFunc
}

func NewSchedulerService(
	pubSub *gochannel.GoChannel,
	widgetService IWidgetService,
	snapshots contract.ISnapshotRepository,
	settleDelay time.Duration,
	cooldown time.Duration,
	maxTries uint,
	log logger.ILogger,
) ISchedulerService {
	return &schedulerService{
		pubSub:        pubSub,
		widgetService: widgetService,
		snapshots:     snapshots,
		settleDelay:   settleDelay,
		cooldown:      cooldown,
		maxTries:      maxTries,
		logger:        log,
		lastRefresh:   make(map[string]time.Time),
	}
}

func (s *schedulerService) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.started = true
	s.mu.Unlock()

	for _, topic := range []string{events.TopicReplyReceived, events.TopicConversationChanged} {
		messages, err := s.subscribeWithRetry(runCtx, topic)
		if err != nil {
			cancel()
			s.mu.Lock()
			s.started = false
			s.mu.Unlock()
			return err
		}
		go s.consume(runCtx, topic, messages)
	}

	s.logger.Info("SchedulerService", "Refresh scheduler started", nil)
	return nil
}

func (s *schedulerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.cancel()
	s.started = false
}

// subscribeWithRetry sets up the bus subscription with bounded exponential
// backoff; the bus may come up after us.
func (s *schedulerService) subscribeWithRetry(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return backoff.Retry(ctx, func() (<-chan *message.Message, error) {
		messages, err := s.pubSub.Subscribe(ctx, topic)
		if err != nil {
			s.logger.Warn("SchedulerService", "Subscribe failed, retrying", map[string]interface{}{
				"topic": topic,
				"error": err.Error(),
			})
			return nil, err
		}
		return messages, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(s.maxTries))
}

func (s *schedulerService) consume(ctx context.Context, topic string, messages <-chan *message.Message) {
	for msg := range messages {
		s.processMessage(ctx, topic, msg)
	}
}

func (s *schedulerService) processMessage(ctx context.Context, topic string, msg *message.Message) {
	// Always ack: a lost refresh is recovered by the next trigger, redelivery
	// would only pile up passes.
	defer msg.Ack()

	var payload struct {
		ConversationID string `json:"conversation_id"`
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.ConversationID == "" {
		s.logger.Warn("SchedulerService", "Dropping malformed lifecycle event", map[string]interface{}{
			"topic": topic,
		})
		return
	}

	// Switching conversations invalidates the old baseline: the next pass
	// must treat everything as changed.
	if topic == events.TopicConversationChanged {
		s.snapshots.DeleteConversation(payload.ConversationID)
	}

	if !s.shouldRefresh(payload.ConversationID) {
		s.logger.Debug("SchedulerService", "Trigger inside cooldown window, collapsed", map[string]interface{}{
			"conversation_id": payload.ConversationID,
		})
		return
	}

	// Settle delay: the host may still be flushing variables right after the
	// event fires.
	select {
	case <-time.After(s.settleDelay):
	case <-ctx.Done():
		return
	}

	if err := s.widgetService.RefreshAll(ctx, payload.ConversationID); err != nil {
		s.logger.Error("SchedulerService", "Refresh pass failed", map[string]interface{}{
			"conversation_id": payload.ConversationID,
			"error":           err.Error(),
		})
	}
}

// shouldRefresh collapses triggers that land inside the cooldown window.
func (s *schedulerService) shouldRefresh(conversationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if last, ok := s.lastRefresh[conversationID]; ok && now.Sub(last) < s.cooldown {
		return false
	}
	s.lastRefresh[conversationID] = now
	return true
}
