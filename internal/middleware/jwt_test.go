package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tok, err := GenerateToken(42, "owner")
	require.NoError(t, err)

	parsed, err := ValidateToken(tok)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "owner", claims["role"])
}

func protectedRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", handler, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet("user_id"),
			"role":    c.MustGet("role"),
		})
	})
	return r
}

func doRequest(r *gin.Engine, authorization, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected"+query, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	r := protectedRouter(RequireAuth())
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "", "").Code)
}

func TestRequireAuthRejectsGarbageToken(t *testing.T) {
	r := protectedRouter(RequireAuth())
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer not.a.jwt", "").Code)
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	tok, err := GenerateToken(7, "driver")
	require.NoError(t, err)

	r := protectedRouter(RequireAuth())
	w := doRequest(r, "Bearer "+tok, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"driver"`)
}

func TestRequireAuthAcceptsQueryToken(t *testing.T) {
	tok, err := GenerateToken(7, "driver")
	require.NoError(t, err)

	r := protectedRouter(RequireAuth())
	assert.Equal(t, http.StatusOK, doRequest(r, "", "?token="+tok).Code)
}

func TestRequireAuthRejectsRevokedToken(t *testing.T) {
	tok, err := GenerateToken(7, "owner")
	require.NoError(t, err)

	SetRevocationCheck(func(c *gin.Context, token string) bool { return token == tok })
	defer SetRevocationCheck(nil)

	r := protectedRouter(RequireAuth())
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer "+tok, "").Code)
}

func TestRequireAuthWithRole(t *testing.T) {
	ownerTok, err := GenerateToken(1, "owner")
	require.NoError(t, err)
	driverTok, err := GenerateToken(2, "driver")
	require.NoError(t, err)

	r := protectedRouter(RequireAuthWithRole("owner"))
	assert.Equal(t, http.StatusOK, doRequest(r, "Bearer "+ownerTok, "").Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "Bearer "+driverTok, "").Code)
}
