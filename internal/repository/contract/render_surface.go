package contract

import "worldstate-be/internal/entity"

// IRenderSurface is the probe-and-push side of the widget UI. ShowsWidget
// reports whether anyone currently has the widget open for the conversation;
// Push delivers a fresh view to those subscribers.
type IRenderSurface interface {
	ShowsWidget(conversationID string, widget entity.WidgetID) bool
	Push(conversationID string, widget entity.WidgetID, payload interface{})
}
