package handler

import (
	"worldstate-be/internal/pkg/logger"
	internalWS "worldstate-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WidgetHandler upgrades widget-surface connections. One connection serves
// all four widgets of a conversation; the peer reports open/close per widget
// over the socket.
type WidgetHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewWidgetHandler(hub *internalWS.Hub, log logger.ILogger) *WidgetHandler {
	return &WidgetHandler{hub: hub, logger: log}
}

func (h *WidgetHandler) ServeWs(c *fiber.Ctx) error {
	conversationID := c.Params("conversation")
	if conversationID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing conversation id")
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("WidgetHandler", "Starting widget session", map[string]interface{}{"conversation_id": conversationID})
			internalWS.ServeWs(h.hub, conn, conversationID)
			h.logger.Info("WidgetHandler", "Widget session ended", map[string]interface{}{"conversation_id": conversationID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *WidgetHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/widgets/:conversation", h.ServeWs)
}
