package server

import (
	"errors"
	"net/http"
	"strconv"

	"auction-engine/internal/notification"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// auth happens upstream of this service
	CheckOrigin: func(*http.Request) bool { return true },
}

// NotificationStreamHandler handles GET /ws/users/:user_id/notifications.
// It bridges one Hub session onto a websocket. A reconnecting client may pass
// ?recent=N to catch up from the store before live delivery starts; the Hub
// itself keeps no history.
func NotificationStreamHandler(hub *notification.Hub, svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			utils.JSONError(c, http.StatusBadRequest, errors.New("missing user ID"), "missing user ID")
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.Warn("ws: upgrade failed", map[string]any{"user_id": userID, "error": err.Error()})
			return
		}
		defer conn.Close()

		if recent := c.Query("recent"); recent != "" {
			n, err := strconv.Atoi(recent)
			if err != nil || n <= 0 {
				utils.Warn("ws: ignoring invalid recent parameter", map[string]any{"user_id": userID, "recent": recent})
			} else if err := sendRecent(conn, svc, userID, n); err != nil {
				utils.Warn("ws: catch-up send failed", map[string]any{"user_id": userID, "error": err.Error()})
				return
			}
		}

		session := hub.Subscribe(userID)
		defer session.Close()

		utils.Info("ws: session opened", map[string]any{"user_id": userID})

		// drain the read side so client closes are noticed
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case n, ok := <-session.Notifications():
				if !ok {
					return
				}
				if err := conn.WriteJSON(n); err != nil {
					utils.Warn("ws: write failed, dropping session", map[string]any{"user_id": userID, "error": err.Error()})
					return
				}
			case <-done:
				utils.Info("ws: session closed by client", map[string]any{"user_id": userID})
				return
			}
		}
	}
}

// sendRecent serves the one-shot catch-up query, oldest first so the client
// applies them in order.
func sendRecent(conn *websocket.Conn, svc *notification.Service, userID string, n int) error {
	recent, err := svc.Recent(userID, n, 0)
	if err != nil {
		return err
	}
	for i := len(recent) - 1; i >= 0; i-- {
		if err := conn.WriteJSON(recent[i]); err != nil {
			return err
		}
	}
	return nil
}
