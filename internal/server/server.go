package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/immortalfoodie/Ecosphere/internal/config"
	"github.com/immortalfoodie/Ecosphere/internal/handler"
	appmw "github.com/immortalfoodie/Ecosphere/internal/middleware"
	"github.com/immortalfoodie/Ecosphere/internal/repository"
	"github.com/immortalfoodie/Ecosphere/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, cfg *config.Config, sha, buildTime string) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			if strings.HasSuffix(u.Hostname(), "vercel.app") {
				return true, nil
			}
			return false, nil
		},
	}))

	stateRepo := repository.NewStateRepository(db)
	ledgerSvc := service.NewLedgerService(stateRepo)
	ledgerHandler := handler.NewLedgerHandler(ledgerSvc)

	accountRepo := repository.NewAccountRepository(db)
	authSvc := service.NewAuthService(accountRepo, cfg.JWTSecret)
	authHandler := handler.NewAuthHandler(authSvc)

	authMw, err := appmw.NewAuthMiddleware(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"ok":         "true",
			"git_sha":    sha,
			"build_time": buildTime,
		})
	})

	api := e.Group("/api", authMw.WithIdentity)
	api.GET("/state", ledgerHandler.GetState)
	api.POST("/events/:id/rsvp", ledgerHandler.RsvpEvent)
	api.DELETE("/events/:id/rsvp", ledgerHandler.CancelRsvp)
	api.POST("/scans", ledgerHandler.RecordScan)
	api.POST("/cart", ledgerHandler.AddToCart)
	api.PUT("/cart/:productId", ledgerHandler.UpdateCartQuantity)
	api.DELETE("/cart/:productId", ledgerHandler.RemoveFromCart)
	api.POST("/checkout", ledgerHandler.CheckoutCart)
	api.POST("/tracker", ledgerHandler.SaveTrackerSnapshot)
	api.PUT("/courses/:id", ledgerHandler.UpdateCourseProgress)

	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, authMw.RequireAuth)

	return &Server{e: e}, nil
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
