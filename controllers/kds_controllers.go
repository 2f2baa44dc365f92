package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/bar-api/kds"
	"github.com/yeremiapane/bar-api/middlewares"
	"github.com/yeremiapane/bar-api/utils"
)

var upgrader = websocket.Upgrader{
	// Staff screens authenticate with the token query parameter.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type KDSController struct {
	Hub *kds.Hub
}

func NewKDSController(hub *kds.Hub) *KDSController {
	return &KDSController{Hub: hub}
}

// Stream -> WebSocket endpoint pushing order events to staff
func (kc *KDSController) Stream(c *gin.Context) {
	role := c.GetString(middlewares.ContextRole)
	if role != RoleAdmin {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("kds upgrade: %v", err)
		return
	}

	kc.Hub.Register(ws, role)
	utils.InfoLogger.Printf("KDS client connected (%d online)", kc.Hub.Clients())

	// Incoming frames are ignored; reading detects the disconnect.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	kc.Hub.Unregister(ws)
}
