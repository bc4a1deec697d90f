package service

import (
	"context"
	"testing"

	"worldstate-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestDispatchPrimaryDelivers(t *testing.T) {
	primary := &fakeDispatcher{name: "nats"}
	fallback := &fakeDispatcher{name: "websocket"}
	svc := NewDispatchService(logger.NewNopLogger(), primary, fallback)

	delivered := svc.Send(context.Background(), "conv-1", "用户使用了苹果")

	assert.True(t, delivered)
	assert.Equal(t, []string{"用户使用了苹果"}, primary.sent)
	assert.Empty(t, fallback.sent)
}

func TestDispatchFallsBackWhenPrimaryFails(t *testing.T) {
	primary := &fakeDispatcher{name: "nats", fail: true}
	fallback := &fakeDispatcher{name: "websocket"}
	svc := NewDispatchService(logger.NewNopLogger(), primary, fallback)

	delivered := svc.Send(context.Background(), "conv-1", "用户使用了苹果")

	assert.True(t, delivered)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, []string{"用户使用了苹果"}, fallback.sent)
}

func TestDispatchAllFail(t *testing.T) {
	primary := &fakeDispatcher{name: "nats", fail: true}
	fallback := &fakeDispatcher{name: "websocket", fail: true}
	svc := NewDispatchService(logger.NewNopLogger(), primary, fallback)

	delivered := svc.Send(context.Background(), "conv-1", "用户使用了苹果")

	assert.False(t, delivered)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestDispatchEmptyChain(t *testing.T) {
	svc := NewDispatchService(logger.NewNopLogger())
	assert.False(t, svc.Send(context.Background(), "conv-1", "text"))
}
