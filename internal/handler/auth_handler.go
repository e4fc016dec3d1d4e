package handler

import (
	"net/http"
	"time"

	"github.com/immortalfoodie/Ecosphere/internal/identityctx"
	"github.com/immortalfoodie/Ecosphere/internal/model"
	"github.com/immortalfoodie/Ecosphere/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AccountResponse struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type AuthResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}

func toAccountResponse(a *model.Account) AccountResponse {
	return AccountResponse{
		Email:     a.Email,
		Name:      a.Name,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	account, token, err := h.svc.Signup(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch err {
		case service.ErrEmailTaken:
			return c.JSON(http.StatusConflict, NewErrorResponse("email_taken", "an account with this email already exists"))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusCreated, AuthResponse{Token: token, User: toAccountResponse(account)})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	account, token, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case service.ErrInvalidCredentials:
			return c.JSON(http.StatusUnauthorized, NewErrorResponse("invalid_credentials", "email or password is incorrect"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "login failed"))
		}
	}
	return c.JSON(http.StatusOK, AuthResponse{Token: token, User: toAccountResponse(account)})
}

// Me returns the identity carried by the session token.
func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	email := identityctx.Email(ctx)
	if email == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing session"))
	}
	return c.JSON(http.StatusOK, map[string]string{"email": email, "name": identityctx.Name(ctx)})
}
