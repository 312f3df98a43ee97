package middleware

import (
	"net/http"
	"strings"

	"storefront/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// Guardが適用されるパスパターン。ここに無いパスは素通し。
var guardPatterns = []string{
	"/Seller/:path*",
	"/Buyer/:path*",
	"/Products/create",
}

const (
	loginPath        = "/Login"
	unauthorizedPath = "/Unauthorized"
)

// RouteGuardはナビゲーションがページへ届く前の関所。
// ルールは上から順に評価し、最初に当たったものが勝つ。
//  1. セッション無し -> /Login
//  2. 出品者専用の名前空間でrole != seller -> /Unauthorized
//  3. 購入者専用の名前空間でrole != buyer -> /Unauthorized
//  4. 許可
//
// SessionResolverの後ろに置くこと。cookieは自分では読まない。
func RouteGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			if !guardMatches(path) {
				return next(c)
			}

			sess, ok := SessionFromContext(c)
			if !ok {
				return c.Redirect(http.StatusSeeOther, loginPath)
			}

			if sellerOnly(path) && sess.Role != model.RoleSeller {
				return c.Redirect(http.StatusSeeOther, unauthorizedPath)
			}

			if buyerOnly(path) && sess.Role != model.RoleBuyer {
				return c.Redirect(http.StatusSeeOther, unauthorizedPath)
			}

			return next(c)
		}
	}
}

func guardMatches(path string) bool {
	for _, pattern := range guardPatterns {
		if matchPattern(pattern, path) {
			return true
		}
	}
	return false
}

// `:path*`で終わるパターンはその配下すべて、それ以外は完全一致
func matchPattern(pattern, path string) bool {
	if base, ok := strings.CutSuffix(pattern, "/:path*"); ok {
		return path == base || strings.HasPrefix(path, base+"/")
	}
	return path == pattern
}

func sellerOnly(path string) bool {
	return matchPattern("/Seller/:path*", path) || path == "/Products/create"
}

func buyerOnly(path string) bool {
	return matchPattern("/Buyer/:path*", path)
}
