package websocket

import (
	"worldstate-be/internal/entity"

	"github.com/gofiber/websocket/v2"
)

// ServeWs handles one widget-surface connection for a conversation.
func ServeWs(hub *Hub, c *websocket.Conn, conversationID string) {
	client := &Client{
		Hub:            hub,
		Conn:           c,
		ConversationID: conversationID,
		Send:           make(chan []byte, 256),
		watched:        make(map[entity.WidgetID]bool),
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
