package api

import (
	"log/slog"
	"net/http"
	"time"

	"parkspot/internal/feed"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type LiveHandler struct {
	hub      *feed.Hub
	upgrader websocket.Upgrader
}

func NewLiveHandler(hub *feed.Hub) *LiveHandler {
	return &LiveHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}
}

// @Summary Booking status feed
// @Description Stream status updates for one booking over a WebSocket
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 101 {string} string "Switching Protocols"
// @Router /bookings/{id}/live [get]
func (h *LiveHandler) Stream(c *gin.Context) {
	bookingID := c.Param("id")

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "booking_id", bookingID, "error", err.Error())
		return
	}

	sub := h.hub.Subscribe(bookingID)
	slog.Info("live feed opened", "booking_id", bookingID)

	go h.readLoop(conn, sub)
	h.writeLoop(conn, sub, bookingID)
}

// readLoop drains the client side so pongs and close frames are processed.
// Any read error means the peer is gone and the subscription is torn down.
func (h *LiveHandler) readLoop(conn *websocket.Conn, sub *feed.Subscription) {
	defer sub.Cancel()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *LiveHandler) writeLoop(conn *websocket.Conn, sub *feed.Subscription, bookingID string) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		sub.Cancel()
		_ = conn.Close()
		slog.Info("live feed closed", "booking_id", bookingID)
	}()

	for {
		select {
		case update, ok := <-sub.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(update); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
