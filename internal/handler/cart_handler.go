package handler

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/session"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /CartのHTTP
type CartHandler struct {
	sessions *session.Registry
}

// DI
func NewCartHandler(sessions *session.Registry) *CartHandler {
	return &CartHandler{sessions: sessions}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/Cart", h.getCart)
	e.POST("/Cart/items", h.addItem)
	e.PATCH("/Cart/items/:productID", h.updateItem)
	e.DELETE("/Cart/items/:productID", h.removeItem)
	e.DELETE("/Cart", h.clearCart)
	e.POST("/Cart/checkout", h.checkout)
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int64 `json:"quantity"`
}

func (h *CartHandler) getCart(c echo.Context) error {
	core, err := coreFor(c, h.sessions)
	if err != nil {
		return writeError(c, err)
	}

	// 失敗してもsliceは直前の正常値と理由を持っている。
	// 401以外はそのまま返し、viewが理由をインライン表示する。
	if err := core.Cart.FetchCart(c.Request().Context()); err != nil {
		if he, ok := usecase.AsHTTPError(err); ok && he.Status == http.StatusUnauthorized {
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusOK, core.Store.State().Cart)
}

func (h *CartHandler) addItem(c echo.Context) error {
	core, err := coreFor(c, h.sessions)
	if err != nil {
		return writeError(c, err)
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := core.Cart.AddToCart(c.Request().Context(), req.ProductID, req.Quantity); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, core.Store.State().Cart)
}

func (h *CartHandler) updateItem(c echo.Context) error {
	core, err := coreFor(c, h.sessions)
	if err != nil {
		return writeError(c, err)
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := core.Cart.UpdateCartItem(c.Request().Context(), c.Param("productID"), req.Quantity); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, core.Store.State().Cart)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	core, err := coreFor(c, h.sessions)
	if err != nil {
		return writeError(c, err)
	}

	if err := core.Cart.RemoveCartItem(c.Request().Context(), c.Param("productID")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, core.Store.State().Cart)
}

// clearCartはサーバー側のカートも空にする
func (h *CartHandler) clearCart(c echo.Context) error {
	core, err := coreFor(c, h.sessions)
	if err != nil {
		return writeError(c, err)
	}

	if err := core.Cart.Clear(c.Request().Context()); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, core.Store.State().Cart)
}

// checkoutは成功すると決済ページへの303で終わる。
// ここから先の状態はリダイレクトが戻るまで観測できない。
func (h *CartHandler) checkout(c echo.Context) error {
	core, err := coreFor(c, h.sessions)
	if err != nil {
		return writeError(c, err)
	}

	var shipping model.ShippingAddress
	if err := c.Bind(&shipping); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	url, err := core.Checkout.InitiateCheckout(c.Request().Context(), shipping)
	if err != nil {
		return writeError(c, err)
	}

	// URLは無加工でそのまま
	return c.Redirect(http.StatusSeeOther, url)
}
