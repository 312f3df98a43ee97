package gateway

import (
	"context"

	"storefront/internal/domain/model"
)

// /cart/* への1対1マッピング。
// リトライやキャッシュはしない。毎回素のラウンドトリップ。
type CartGateway interface {
	Fetch(ctx context.Context) (model.Cart, error)
	Add(ctx context.Context, productID string, quantity int64) (model.Cart, error)
	UpdateItem(ctx context.Context, productID string, quantity int64) (model.Cart, error)
	RemoveItem(ctx context.Context, productID string) (model.Cart, error)
	Clear(ctx context.Context) (model.Cart, error)
}
