package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/immortalfoodie/Ecosphere/internal/identityctx"
	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(secret string) (*AuthMiddleware, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	return &AuthMiddleware{secret: []byte(secret)}, nil
}

// WithIdentity resolves a bearer token if one is present and attaches the
// session's email and name to the request context. Requests without a token
// (or with an invalid one) proceed as guests.
func (m *AuthMiddleware) WithIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if email, name, err := m.parse(c); err == nil {
			attach(c, email, name)
		}
		return next(c)
	}
}

// RequireAuth rejects requests without a valid bearer token.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email, name, err := m.parse(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		attach(c, email, name)
		return next(c)
	}
}

func attach(c echo.Context, email, name string) {
	ctx := identityctx.WithEmail(c.Request().Context(), email)
	ctx = identityctx.WithName(ctx, name)
	c.SetRequest(c.Request().WithContext(ctx))
}

func (m *AuthMiddleware) parse(c echo.Context) (email, name string, err error) {
	authz := c.Request().Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return "", "", errors.New("missing bearer token")
	}
	tokenStr := strings.TrimPrefix(authz, "Bearer ")
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid claims")
	}
	email, _ = claims["email"].(string)
	if email == "" {
		return "", "", errors.New("token has no email")
	}
	name, _ = claims["name"].(string)
	return email, name, nil
}
