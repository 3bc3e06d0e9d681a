package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"unit_rental/internal/busy"
	"unit_rental/internal/middleware"
)

// Busy tracks in-flight operations across the API; the routes layer
// hangs its tracking middleware off this instance and the WebSocket
// below streams its events.
var Busy = busy.NewTracker()

// upgrader configures the WebSocket connection.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all for development (restrict in production!)
	},
}

// authenticateForSocket validates the token carried in the header or
// the "token" query param (browsers cannot set headers on WebSockets).
func authenticateForSocket(c *gin.Context) (userID uint, ok bool) {
	tokenStr := middleware.ExtractToken(c)
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
		return 0, false
	}
	token, err := middleware.ValidateToken(tokenStr)
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return 0, false
	}
	if middleware.IsRevoked(c, tokenStr) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
		return 0, false
	}
	claims, okClaims := token.Claims.(jwt.MapClaims)
	if !okClaims {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return 0, false
	}
	uid, okUID := claims["user_id"].(float64)
	if !okUID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return 0, false
	}
	return uint(uid), true
}

// HandleOpsWebSocket streams busy-state transitions for the
// authenticated user's own operations. A client showing a progress
// indicator subscribes here instead of sharing ambient spinner state.
func HandleOpsWebSocket(c *gin.Context) {
	userID, ok := authenticateForSocket(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("failed to upgrade ops websocket")
		return
	}
	defer conn.Close()

	events := Busy.Subscribe(16)
	defer Busy.Unsubscribe(events)

	logrus.WithField("user_id", userID).Info("ops websocket connected")

	// Reader goroutine: we never expect client messages, but reading
	// is how the close handshake is observed.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, open := <-events:
			if !open {
				return
			}
			if ev.UserID != userID {
				continue
			}
			if err := conn.WriteJSON(ev); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
					logrus.WithError(err).WithField("user_id", userID).Warn("failed to write busy event")
				}
				return
			}
		case <-closed:
			logrus.WithField("user_id", userID).Info("ops websocket disconnected")
			return
		}
	}
}
