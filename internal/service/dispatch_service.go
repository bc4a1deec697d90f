package service

import (
	"context"

	"worldstate-be/internal/pkg/logger"
	"worldstate-be/internal/repository/contract"
)

type IDispatchService interface {
	// Send walks the dispatcher chain in order and reports whether any link
	// delivered the message. Delivery failure never fails the caller's flow.
	Send(ctx context.Context, conversationID, text string) bool
}

type dispatchService struct {
	chain  []contract.IMessageDispatcher
	logger logger.ILogger
}

func NewDispatchService(log logger.ILogger, chain ...contract.IMessageDispatcher) IDispatchService {
	return &dispatchService{chain: chain, logger: log}
}

func (s *dispatchService) Send(ctx context.Context, conversationID, text string) bool {
	for _, d := range s.chain {
		if err := d.Dispatch(ctx, conversationID, text); err != nil {
			s.logger.Warn("DispatchService", "Dispatcher failed, trying next", map[string]interface{}{
				"dispatcher":      d.Name(),
				"conversation_id": conversationID,
				"error":           err.Error(),
			})
			continue
		}
		return true
	}
	s.logger.Error("DispatchService", "All dispatchers failed", map[string]interface{}{
		"conversation_id": conversationID,
	})
	return false
}
