package server

import (
	"vendhub/internal/config"
	"vendhub/internal/handler"
	"vendhub/internal/metrics"
	appmw "vendhub/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Auth        *handler.AuthHandler
	Product     *handler.ProductHandler
	Order       *handler.OrderHandler
	Requirement *handler.RequirementHandler
	Admin       *handler.AdminHandler
}

// New はechoを組み立てて全ルートを登録する。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(appmw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	h.Auth.RegisterRoutes(e, cfg.JWTSecret)
	h.Product.RegisterRoutes(e, cfg.JWTSecret)
	h.Order.RegisterRoutes(e, cfg.JWTSecret)
	h.Requirement.RegisterRoutes(e, cfg.JWTSecret)
	h.Admin.RegisterRoutes(e, cfg.JWTSecret)

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	return e
}

func Start(addr string, cfg config.Config, h Handlers) error {
	e := New(cfg, h)
	return e.Start(addr)
}
