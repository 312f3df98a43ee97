package server

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/session"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, sessions *session.Registry) {
	handler.NewAuthHandler(sessions, cfg).RegisterRoutes(e)
	handler.NewCartHandler(sessions).RegisterRoutes(e)
	handler.NewProductHandler(sessions).RegisterRoutes(e)
	handler.NewOrderHandler(sessions).RegisterRoutes(e)
	handler.NewUserHandler(sessions).RegisterRoutes(e)
	handler.NewPageHandler().RegisterRoutes(e)
}
