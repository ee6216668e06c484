package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"rentdesk/internal/hub"
	"rentdesk/pkg/jwt"
	"rentdesk/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeTimeout = 10 * time.Second
	pongWait     = 300 * time.Second
	pingInterval = 60 * time.Second
)

// WebSocketHandler 状态变更推送
type WebSocketHandler struct {
	upgrader   websocket.Upgrader
	hub        *hub.Hub
	jwtManager *jwt.JWTManager
	log        *logrus.Logger
}

// NewWebSocketHandler 创建WebSocket处理器，allowedOrigins 来自CORS配置
func NewWebSocketHandler(events *hub.Hub, jwtManager *jwt.JWTManager, allowedOrigins []string) *WebSocketHandler {
	log := logger.GetLogger()
	return &WebSocketHandler{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if allowed == "*" || matchOrigin(origin, allowed) {
						return true
					}
				}
				log.Warnf("WebSocket连接被拒绝，非法Origin: %s", origin)
				return false
			},
			ReadBufferSize:  1024 * 4,
			WriteBufferSize: 1024 * 32,
		},
		hub:        events,
		jwtManager: jwtManager,
		log:        log,
	}
}

// Events 推送领域状态变更、主题切换和提示事件
func (h *WebSocketHandler) Events(c *gin.Context) {
	// 从查询参数获取token（WebSocket不支持自定义header）
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "缺少认证令牌"})
		return
	}
	claims, err := h.jwtManager.VerifyToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的令牌"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Error("Failed to upgrade WebSocket connection")
		return
	}
	defer conn.Close()

	h.log.WithFields(logrus.Fields{
		"email":       claims.Email,
		"remote_addr": c.ClientIP(),
	}).Info("WebSocket connection established")

	events, unsubscribe := h.hub.Subscribe(hub.DefaultBuffer)
	defer unsubscribe()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go h.readPump(conn, cancel)

	pingTicker := time.NewTicker(pingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-pingTicker.C:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.log.WithError(err).Debug("Failed to send ping")
				return
			}

		case ev, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				h.log.WithError(err).Debug("Failed to send event to client")
				return
			}
		}
	}
}

// readPump 处理客户端消息（主要是ping/pong），连接断开时取消 ctx
func (h *WebSocketHandler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.WithError(err).Warn("WebSocket unexpected close")
			}
			return
		}
	}
}

// matchOrigin 检查origin是否匹配allowed模式，支持 *.example.com
func matchOrigin(origin, allowed string) bool {
	if origin == allowed {
		return true
	}
	if !strings.HasPrefix(allowed, "*.") {
		return false
	}
	domain := allowed[2:]

	host := origin
	if idx := strings.Index(host, "://"); idx != -1 {
		host = host[idx+3:]
	}
	if idx := strings.Index(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}
