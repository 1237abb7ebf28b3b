package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/superengulfing/site-backend/internal/config"
	"github.com/superengulfing/site-backend/internal/middleware"
)

const (
	eventsWriteTimeout = 10 * time.Second
	eventsPingInterval = 30 * time.Second
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// EventsHandler streams new access-request notifications to the admin
// panel over WebSocket, fed by the Redis pub/sub channel the access
// service publishes to.
type EventsHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *EventsHandler {
	return &EventsHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "events_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// AccessRequestStream godoc
// WS /api/v1/admin/events
// Pushes each access-request event as a JSON text frame.
func (h *EventsHandler) AccessRequestStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	reqCtx := c.Request.Context()
	pubsub := h.rdb.Subscribe(reqCtx, config.CacheKey.AccessRequestChannel())
	defer pubsub.Close()

	ch := pubsub.Channel()

	// Drain reads so client close frames are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pingTicker := time.NewTicker(eventsPingInterval)
	defer pingTicker.Stop()

	h.log.Info().Int("admin_id", claims.UserID).Msg("Admin attached to access-request stream")

	for {
		select {
		case <-reqCtx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(eventsWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				h.log.Warn().Err(err).Msg("Event write failed, dropping stream")
				return
			}
		case <-pingTicker.C:
			conn.SetWriteDeadline(time.Now().Add(eventsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
