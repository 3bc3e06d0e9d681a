package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit_rental/internal/middleware"
)

func opsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/ops", HandleOpsWebSocket)
	return r
}

func getOps(r *gin.Engine, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws/ops"+query, nil))
	return w
}

func TestOpsWebSocketRejectsMissingToken(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, getOps(opsRouter(), "").Code)
}

func TestOpsWebSocketRejectsGarbageToken(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, getOps(opsRouter(), "?token=not.a.jwt").Code)
}

func TestOpsWebSocketRejectsRevokedToken(t *testing.T) {
	tok, err := middleware.GenerateToken(3, "owner")
	require.NoError(t, err)

	middleware.SetRevocationCheck(func(c *gin.Context, token string) bool { return token == tok })
	defer middleware.SetRevocationCheck(nil)

	w := getOps(opsRouter(), "?token="+tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "revoked")
}
