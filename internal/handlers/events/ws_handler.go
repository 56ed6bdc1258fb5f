// internal/handlers/events/ws_handler.go
package events

import (
	"hopegivers-web/internal/middleware"
	"hopegivers-web/internal/sessionevents"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WSHandler struct {
	hub    *sessionevents.Hub
	logger *zap.Logger
}

func NewWSHandler(hub *sessionevents.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		hub:    hub,
		logger: logger,
	}
}

// HandleConnection upgrades an authenticated request into a session-event
// subscription for the signed-in user (requires auth)
func (h *WSHandler) HandleConnection(c *gin.Context) {
	userName := middleware.GetUserName(c)

	if err := h.hub.Serve(c.Writer, c.Request, userName); err != nil {
		h.logger.Warn("websocket upgrade failed",
			zap.String("user", userName),
			zap.Error(err),
		)
	}
}
