package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/gateway"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// dispatch前に弾いた重複追加。リクエストは発行されない。
var ErrAlreadyInCart = errors.New("already in cart")

// gateway層のエラーをHTTPステータスへ寄せる
func statusOf(err error) int {
	switch {
	case errors.Is(err, gateway.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, gateway.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, gateway.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, gateway.ErrOutOfStock):
		return http.StatusBadRequest
	}

	var se *gateway.ServerError
	if errors.As(err, &se) {
		return se.Status
	}

	var ne *gateway.NetworkError
	if errors.As(err, &ne) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// エラー種別をsliceへ入れる1本の文字列へ正規化する。
// 生のトランスポートエラーはこの層から先へ出さない。
func reasonOf(err error) string {
	switch {
	case errors.Is(err, gateway.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, gateway.ErrForbidden):
		return "forbidden"
	case errors.Is(err, gateway.ErrNotFound):
		return "not found"
	case errors.Is(err, gateway.ErrOutOfStock):
		return "out of stock"
	}

	var se *gateway.ServerError
	if errors.As(err, &se) {
		return se.Message
	}

	var ne *gateway.NetworkError
	if errors.As(err, &ne) {
		return "network error"
	}

	return "unexpected error"
}
