package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/immortalfoodie/Ecosphere/internal/identityctx"
)

const testSecret = "test-secret"

func mintToken(t *testing.T, secret, email, name string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"email": email,
		"name":  name,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runWithIdentity(t *testing.T, authz string) (email, name string) {
	t.Helper()
	mw, err := NewAuthMiddleware(testSecret)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.WithIdentity(func(c echo.Context) error {
		ctx := c.Request().Context()
		email = identityctx.Email(ctx)
		name = identityctx.Name(ctx)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return email, name
}

func TestWithIdentityAttachesSession(t *testing.T) {
	token := mintToken(t, testSecret, "alice@example.com", "Alice")
	email, name := runWithIdentity(t, "Bearer "+token)
	assert.Equal(t, "alice@example.com", email)
	assert.Equal(t, "Alice", name)
}

func TestWithIdentityWithoutTokenIsGuest(t *testing.T) {
	email, _ := runWithIdentity(t, "")
	assert.Empty(t, email)
}

func TestWithIdentityIgnoresBadToken(t *testing.T) {
	email, _ := runWithIdentity(t, "Bearer not-a-token")
	assert.Empty(t, email)

	wrongKey := mintToken(t, "other-secret", "alice@example.com", "Alice")
	email, _ = runWithIdentity(t, "Bearer "+wrongKey)
	assert.Empty(t, email)
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	mw, err := NewAuthMiddleware(testSecret)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.RequireAuth(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewAuthMiddlewareRequiresSecret(t *testing.T) {
	_, err := NewAuthMiddleware("")
	assert.Error(t, err)
}
