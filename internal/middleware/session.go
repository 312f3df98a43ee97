package middleware

import (
	"errors"

	"storefront/internal/config"
	"storefront/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxSessionKey = "session" // model.Session
	CtxTokenKey   = "token"   // string（生のcookie値）

	// バックエンドが発行し、ブラウザへ映すセッションcookieの名前。
	// ハンドラ側のミラーリングもこの定数を使う。
	SessionCookieName = "token"
)

var errNoSession = errors.New("no session")

// SessionResolverはRoute Guardとハンドラのための信頼境界。
// tokenというcookieをHS256のJWTとして検証し、通った場合だけ
// Sessionをcontextへ置く。roleは検証済みclaimsから取る。
// 生のcookie値をこの先の層が直接読むことはない。
func SessionResolver(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, raw, err := resolveSession(cfg, c)
			if err == nil {
				c.Set(CtxSessionKey, sess)
				c.Set(CtxTokenKey, raw)
			}
			return next(c)
		}
	}
}

func resolveSession(cfg config.Config, c echo.Context) (model.Session, string, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return model.Session{}, "", errNoSession
	}

	//JWTをパースして検証する
	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return model.Session{}, "", errNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.Session{}, "", errNoSession
	}

	//subを取り出す
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return model.Session{}, "", errNoSession
	}

	//roleを取り出す（buyer/seller）
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return model.Session{}, "", errNoSession
	}

	return model.Session{UserID: sub, Role: model.Role(role)}, cookie.Value, nil
}

// 検証済みセッションを取り出す
func SessionFromContext(c echo.Context) (model.Session, bool) {
	sess, ok := c.Get(CtxSessionKey).(model.Session)
	return sess, ok
}

// セッションcookieの生値。session registryのキーに使う。
func SessionToken(c echo.Context) (string, bool) {
	raw, ok := c.Get(CtxTokenKey).(string)
	if !ok || raw == "" {
		return "", false
	}
	return raw, true
}
