package handler

import (
	"net/http"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/session"

	"github.com/labstack/echo/v4"
)

// ログイン・ログアウトのHTTP
type AuthHandler struct {
	sessions     *session.Registry
	cookieSecure bool
}

// DI
func NewAuthHandler(sessions *session.Registry, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		sessions:     sessions,
		cookieSecure: cfg.CookieSecure,
	}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/Login", h.login)
	e.POST("/Logout", h.logout)
}

type loginRequest struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	// ログインはまだトークンに紐付かない新しいCoreで行う
	core, err := h.sessions.NewCore()
	if err != nil {
		return writeError(c, err)
	}

	if err := core.User.Login(c.Request().Context(), req.Email, req.Password, req.Role); err != nil {
		return writeError(c, err)
	}

	// バックエンドがjarへ置いたセッションcookieをブラウザへ渡す
	token, ok := core.Client.SessionCookie(middleware.SessionCookieName)
	if !ok {
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "no session cookie from backend"})
	}

	h.sessions.Adopt(token.Value, core)

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token.Value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, core.Store.State().User)
}

func (h *AuthHandler) logout(c echo.Context) error {
	token, ok := middleware.SessionToken(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	core, err := h.sessions.Get(token)
	if err != nil {
		return writeError(c, err)
	}

	// バックエンド側の失敗でもローカルのセッションは破棄する
	logoutErr := core.User.Logout(c.Request().Context())
	h.sessions.Remove(token)

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	if logoutErr != nil {
		return writeError(c, logoutErr)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}
