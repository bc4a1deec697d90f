package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"worldstate-be/internal/pkg/logger"
	"worldstate-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
)

// countingWidgetService records refresh passes per conversation.
type countingWidgetService struct {
	IWidgetService
	mu        sync.Mutex
	refreshed []string
}

func (c *countingWidgetService) RefreshAll(_ context.Context, conversationID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshed = append(c.refreshed, conversationID)
	return nil
}

func (c *countingWidgetService) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.refreshed)
}

func newSchedulerFixture(t *testing.T, settle, cooldown time.Duration) (*gochannel.GoChannel, *countingWidgetService, ISchedulerService) {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	widgets := &countingWidgetService{}
	scheduler := NewSchedulerService(
		pubSub,
		widgets,
		memory.NewSnapshotRepository(),
		settle,
		cooldown,
		3,
		logger.NewNopLogger(),
	)
	return pubSub, widgets, scheduler
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	assert.True(t, cond())
}

func TestSchedulerRefreshesAfterReplyReceived(t *testing.T) {
	pubSub, widgets, scheduler := newSchedulerFixture(t, 10*time.Millisecond, 50*time.Millisecond)
	assert.NoError(t, scheduler.Start(context.Background()))
	defer scheduler.Stop()

	publisher := NewPublisherService(pubSub)
	assert.NoError(t, publisher.PublishReplyReceived(context.Background(), "conv-1"))

	waitFor(t, time.Second, func() bool { return widgets.count() == 1 })
}

func TestSchedulerCollapsesTriggersInsideCooldown(t *testing.T) {
	pubSub, widgets, scheduler := newSchedulerFixture(t, 5*time.Millisecond, time.Minute)
	assert.NoError(t, scheduler.Start(context.Background()))
	defer scheduler.Stop()

	publisher := NewPublisherService(pubSub)
	for i := 0; i < 5; i++ {
		assert.NoError(t, publisher.PublishReplyReceived(context.Background(), "conv-1"))
	}

	waitFor(t, time.Second, func() bool { return widgets.count() == 1 })
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, widgets.count())
}

func TestSchedulerHandlesConversationsIndependently(t *testing.T) {
	pubSub, widgets, scheduler := newSchedulerFixture(t, 5*time.Millisecond, time.Minute)
	assert.NoError(t, scheduler.Start(context.Background()))
	defer scheduler.Stop()

	publisher := NewPublisherService(pubSub)
	assert.NoError(t, publisher.PublishReplyReceived(context.Background(), "conv-1"))
	assert.NoError(t, publisher.PublishConversationChanged(context.Background(), "conv-2"))

	waitFor(t, time.Second, func() bool { return widgets.count() == 2 })
}

func TestSchedulerStartIsIdempotent(t *testing.T) {
	_, _, scheduler := newSchedulerFixture(t, time.Millisecond, time.Millisecond)
	assert.NoError(t, scheduler.Start(context.Background()))
	assert.NoError(t, scheduler.Start(context.Background()))
	scheduler.Stop()
	scheduler.Stop()
}
