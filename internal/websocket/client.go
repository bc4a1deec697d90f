package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"worldstate-be/internal/entity"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client is a middleman between one websocket connection and the hub. The
// peer tells us which widgets it has on screen via open/close frames.
type Client struct {
	Hub *Hub

	Conn *websocket.Conn

	ConversationID string

	// Buffered channel of outbound messages.
	Send chan []byte

	mu      sync.RWMutex
	watched map[entity.WidgetID]bool
}

// Watches reports whether the peer currently displays the widget.
func (c *Client) Watches(widget entity.WidgetID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watched[widget]
}

func (c *Client) setWatched(widget entity.WidgetID, open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if open {
		c.watched[widget] = true
	} else {
		delete(c.watched, widget)
	}
}

// clientFrame is what the peer sends: {"type":"open"|"close","widget":"..."}.
type clientFrame struct {
	Type   string          `json:"type"`
	Widget entity.WidgetID `json:"widget"`
}

// readPump pumps widget open/close frames from the connection to the hub.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("readPump error for conversation %s: %v", c.ConversationID, err)
			}
			break
		}

		var frame clientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			continue
		}
		switch frame.Type {
		case "open":
			c.setWatched(frame.Widget, true)
		case "close":
			c.setWatched(frame.Widget, false)
		}
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Flush queued messages into the same frame.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				w.Write(<-c.Send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
