package gateway

import (
	"context"

	"storefront/internal/domain/model"
)

// 決済セッション作成。返ってくるのはホスト型チェックアウトのURL。
// リダイレクト後のことはこの層の関知外。
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, shipping model.ShippingAddress, idempotencyKey string) (string, error)
}
