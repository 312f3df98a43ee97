package server

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"storefront/internal/config"
	"storefront/internal/middleware"
	"storefront/internal/session"
)

func New(cfg config.Config, sessions *session.Registry, logger *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.SessionResolver(cfg))
	e.Use(middleware.RouteGuard())

	RegisterRoutes(e, cfg, sessions)

	return e
}

func Start(e *echo.Echo, cfg config.Config) error {
	return e.Start(":" + cfg.Port)
}
