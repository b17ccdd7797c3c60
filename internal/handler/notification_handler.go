package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/service"
	"github.com/franciscozv/iglesia-admin/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

type NotificationHandler struct {
	service     service.NotificationService
	redisClient *redis.Client
	upgrader    websocket.Upgrader
}

func NewNotificationHandler(service service.NotificationService, redisClient *redis.Client) *NotificationHandler {
	return &NotificationHandler{
		service:     service,
		redisClient: redisClient,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	notifications, err := h.service.GetNotifications(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "notifications retrieved", notifications)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "notification marked as read", nil)
}

// HandleWebSocket streams event state-change notifications to the console.
// Messages are fanned out through the Redis pub/sub channel, so live delivery
// requires Redis to be configured.
func (h *NotificationHandler) HandleWebSocket(c *gin.Context) {
	if h.redisClient == nil {
		response.BadRequest(c, "live notifications are not available")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	pubsub := h.redisClient.Subscribe(c.Request.Context(), service.NotificationChannel)
	defer pubsub.Close()

	// Drain client frames so pings and close messages are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				pubsub.Close()
				return
			}
		}
	}()

	for msg := range pubsub.Channel() {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}
