package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// カタログの商品。編集・削除はSellerIDの本人だけ（強制はバックエンド側）。
type Product struct {
	ID          string          `json:"_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	Category    string          `json:"category"`
	Images      []string        `json:"images"`
	SellerID    string          `json:"seller"`
	CreatedAt   time.Time       `json:"createdAt"`
}

var (
	ErrMissingProductID = errors.New("missing product id")
	ErrNegativePrice    = errors.New("price must be >= 0")
	ErrNegativeStock    = errors.New("stock must be >= 0")
)

// Validateはゲートウェイ境界で呼ぶ。
// 不正なレスポンスはここで落とし、viewには流さない。
func (p Product) Validate() error {
	if p.ID == "" {
		return ErrMissingProductID
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}
