package implementation

import (
	"context"

	"worldstate-be/internal/repository/contract"
	"worldstate-be/internal/websocket"
)

// WebsocketDispatcher is the fallback outbound channel: the action message is
// handed to whatever client has the conversation open, which relays it into
// the chat input.
type WebsocketDispatcher struct {
	hub *websocket.Hub
}

func NewWebsocketDispatcher(hub *websocket.Hub) contract.IMessageDispatcher {
	return &WebsocketDispatcher{hub: hub}
}

func (d *WebsocketDispatcher) Name() string {
	return "websocket"
}

func (d *WebsocketDispatcher) Dispatch(_ context.Context, conversationID, text string) error {
	return d.hub.DispatchText(conversationID, text)
}
