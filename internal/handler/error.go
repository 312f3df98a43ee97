package handler

import (
	"errors"
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/session"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, usecase.ErrAlreadyInCart) {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "This item is already in your cart"})
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// ログイン済みセッションのCoreを引く。トークンが無ければ401。
func coreFor(c echo.Context, sessions *session.Registry) (*session.Core, error) {
	token, ok := middleware.SessionToken(c)
	if !ok {
		return nil, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return sessions.Get(token)
}
