package gateway

import (
	"context"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 商品フォームに添付する画像ファイル
type ImageFile struct {
	Name    string
	Content []byte
}

// 作成・更新のmultipart入力
type ProductForm struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Stock       int64
	Category    string
	Images      []ImageFile
}

// /product/* への1対1マッピング
type ProductGateway interface {
	FetchAll(ctx context.Context) ([]model.Product, error)
	FetchSeller(ctx context.Context) ([]model.Product, error)
	FetchByID(ctx context.Context, productID string) (model.Product, error)
	Create(ctx context.Context, form ProductForm) (model.Product, error)
	Update(ctx context.Context, productID string, form ProductForm) (model.Product, error)
	Delete(ctx context.Context, productID string) error
}
