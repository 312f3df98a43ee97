package gateway

import (
	"context"

	"storefront/internal/domain/model"
)

// /order/* への1対1マッピング。新しい順で返る。
type OrderGateway interface {
	// 買い手: 自分が出した注文
	FetchMine(ctx context.Context) ([]model.Order, error)

	// 売り手: 自分の商品を含む注文
	FetchForSeller(ctx context.Context) ([]model.Order, error)
}
