package handler

import (
	"net/http"

	"storefront/internal/session"

	"github.com/labstack/echo/v4"
)

// 注文履歴のHTTP。どちらのルートもRoute Guardの配下。
type OrderHandler struct {
	sessions *session.Registry
}

// DI
func NewOrderHandler(sessions *session.Registry) *OrderHandler {
	return &OrderHandler{sessions: sessions}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/Buyer/Orders", h.myOrders)
	e.GET("/Seller/Orders", h.sellerOrders)
}

func (h *OrderHandler) myOrders(c echo.Context) error {
	core, err := coreFor(c, h.sessions)
	if err != nil {
		return writeError(c, err)
	}

	// 失敗時もsliceの直前の正常値と理由を返す
	_ = core.Order.FetchMyOrders(c.Request().Context())

	return c.JSON(http.StatusOK, core.Store.State().Order)
}

func (h *OrderHandler) sellerOrders(c echo.Context) error {
	core, err := coreFor(c, h.sessions)
	if err != nil {
		return writeError(c, err)
	}

	_ = core.Order.FetchSellerOrders(c.Request().Context())

	return c.JSON(http.StatusOK, core.Store.State().Order)
}
