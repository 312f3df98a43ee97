package gateway

import (
	"errors"
	"fmt"
)

var (
	// セッション無し・無効
	ErrUnauthorized = errors.New("unauthorized")

	// ロール不一致
	ErrForbidden = errors.New("forbidden")

	// 対象が存在しない
	ErrNotFound = errors.New("not found")

	// 在庫不足
	ErrOutOfStock = errors.New("out of stock")
)

// トランスポート障害（接続失敗・タイムアウト）
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// メッセージ付きの非2xx応答
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}
