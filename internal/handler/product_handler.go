package handler

import (
	"io"
	"net/http"
	"strconv"

	"storefront/internal/domain/model"
	"storefront/internal/gateway"
	"storefront/internal/middleware"
	"storefront/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /ProductsのHTTP
type ProductHandler struct {
	sessions *session.Registry
}

// DI
func NewProductHandler(sessions *session.Registry) *ProductHandler {
	return &ProductHandler{sessions: sessions}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/Products", h.list)
	e.POST("/Products/create", h.create)
	e.GET("/Products/:id", h.detail)
	e.PUT("/Products/:id", h.update)
	e.DELETE("/Products/:id", h.remove)
}

// 閲覧はログイン不要。未ログインはゲスト共有Coreで公開一覧を見る。
func (h *ProductHandler) resolveCore(c echo.Context) (*session.Core, bool, error) {
	if token, ok := middleware.SessionToken(c); ok {
		core, err := h.sessions.Get(token)
		return core, true, err
	}
	core, err := h.sessions.Guest()
	return core, false, err
}

func (h *ProductHandler) list(c echo.Context) error {
	core, loggedIn, err := h.resolveCore(c)
	if err != nil {
		return writeError(c, err)
	}

	// 出品者には自分の出品一覧、それ以外には公開カタログ
	sess, _ := middleware.SessionFromContext(c)
	if loggedIn && sess.Role == model.RoleSeller {
		_ = core.Product.FetchSellerProducts(c.Request().Context())
	} else {
		_ = core.Product.FetchAll(c.Request().Context())
	}

	// 失敗時もsliceの直前の正常値と理由を返す
	return c.JSON(http.StatusOK, core.Store.State().Product)
}

func (h *ProductHandler) detail(c echo.Context) error {
	core, _, err := h.resolveCore(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := core.Product.FetchByID(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, core.Store.State().Product.Current)
}

func (h *ProductHandler) create(c echo.Context) error {
	core, err := coreFor(c, h.sessions)
	if err != nil {
		return writeError(c, err)
	}

	form, err := bindProductForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form"})
	}

	if err := core.Product.Create(c.Request().Context(), form); err != nil {
		return writeError(c, err)
	}

	// 完了通知は1回返したら消す
	state := core.Store.State().Product
	core.Product.ResetMessage()
	return c.JSON(http.StatusCreated, state)
}

func (h *ProductHandler) update(c echo.Context) error {
	core, err := coreFor(c, h.sessions)
	if err != nil {
		return writeError(c, err)
	}

	form, err := bindProductForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form"})
	}

	if err := core.Product.Update(c.Request().Context(), c.Param("id"), form); err != nil {
		return writeError(c, err)
	}

	state := core.Store.State().Product
	core.Product.ResetMessage()
	return c.JSON(http.StatusOK, state)
}

func (h *ProductHandler) remove(c echo.Context) error {
	core, err := coreFor(c, h.sessions)
	if err != nil {
		return writeError(c, err)
	}

	if err := core.Product.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	state := core.Store.State().Product
	core.Product.ResetMessage()
	return c.JSON(http.StatusOK, state)
}

// multipartフォームからProductFormを組み立てる
func bindProductForm(c echo.Context) (gateway.ProductForm, error) {
	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return gateway.ProductForm{}, err
	}

	stock, err := strconv.ParseInt(c.FormValue("stock"), 10, 64)
	if err != nil {
		return gateway.ProductForm{}, err
	}

	form := gateway.ProductForm{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Price:       price,
		Stock:       stock,
		Category:    c.FormValue("category"),
	}

	mf, err := c.MultipartForm()
	if err != nil {
		// 画像無しのフォームも許す
		return form, nil
	}

	for _, fh := range mf.File["images"] {
		f, err := fh.Open()
		if err != nil {
			return gateway.ProductForm{}, err
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return gateway.ProductForm{}, err
		}
		form.Images = append(form.Images, gateway.ImageFile{Name: fh.Filename, Content: content})
	}

	return form, nil
}
