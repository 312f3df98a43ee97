package handler

import (
	"net/http"

	"storefront/internal/session"

	"github.com/labstack/echo/v4"
)

// セッション復元のHTTP
type UserHandler struct {
	sessions *session.Registry
}

// DI
func NewUserHandler(sessions *session.Registry) *UserHandler {
	return &UserHandler{sessions: sessions}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/Me", h.me)
	e.GET("/Session", h.session)
}

// ロード時のinfo-fetch。失敗はuser sliceごと返す（未ログイン表示用）。
// エラーは1回表示したら消す。
func (h *UserHandler) me(c echo.Context) error {
	core, err := coreFor(c, h.sessions)
	if err != nil {
		return writeError(c, err)
	}

	_ = core.User.FetchUserInfo(c.Request().Context())

	state := core.Store.State().User
	core.User.ResetError()
	return c.JSON(http.StatusOK, state)
}

// セッションが生きているかの確認
func (h *UserHandler) session(c echo.Context) error {
	core, err := coreFor(c, h.sessions)
	if err != nil {
		return writeError(c, err)
	}

	_ = core.User.CheckLogin(c.Request().Context())

	return c.JSON(http.StatusOK, core.Store.State().User)
}
