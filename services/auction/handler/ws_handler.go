package handler

import (
	"net/http"

	"card-auction/internal/notifier"
	"card-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler upgrades live-notification connections and maintains the
// registry the notification dispatcher pushes through.
type WSHandler struct {
	registry *notifier.LiveRegistry
	upgrader websocket.Upgrader
}

func NewWSHandler(registry *notifier.LiveRegistry) *WSHandler {
	return &WSHandler{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ConnectHandler handles GET /ws/:email. The connection stays registered
// until the peer disconnects; a reconnect for the same identity replaces it.
func (h *WSHandler) ConnectHandler(c *gin.Context) {
	email := c.Param("email")

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("ConnectHandler: websocket upgrade failed", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return
	}

	h.registry.Register(email, conn)
	utils.Info("ConnectHandler: live connection established", map[string]any{"email": email})

	// Drain the read side until the peer goes away; the server never
	// expects inbound frames.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.registry.Unregister(email, conn)
	_ = conn.Close()
	utils.Info("ConnectHandler: live connection closed", map[string]any{"email": email})
}
