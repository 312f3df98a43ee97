package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// リダイレクト先の終端ページ。状態は持たない。
// 決済の成功・キャンセルもここへ戻るだけで、
// 境界を越えて持ち越すクライアント状態は無い。
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/Login", page("login"))
	e.GET("/Unauthorized", page("unauthorized"))
	e.GET("/Success", page("checkout-success"))
	e.GET("/Cancel", page("checkout-cancel"))
	e.GET("/Seller/Dashboard", page("seller-dashboard"))
	e.GET("/Buyer", page("buyer-home"))
}

func page(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"page": name})
	}
}
