package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// 税率5%（注文サマリ表示と同じ計算）
var taxRate = decimal.NewFromFloat(0.05)

// 1セッションにつきカートは1つ。同じ商品の明細は1つまで。
type Cart struct {
	ID    string     `json:"_id,omitempty"`
	Items []CartItem `json:"items"`
}

var ErrDuplicateCartItem = errors.New("duplicate product in cart")

// 指定商品の明細を探す
func (c Cart) Find(productID string) (CartItem, bool) {
	for _, it := range c.Items {
		if it.Product.ID == productID {
			return it, true
		}
	}
	return CartItem{}, false
}

func (c Cart) Contains(productID string) bool {
	_, ok := c.Find(productID)
	return ok
}

func (c Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.Items {
		sum = sum.Add(it.Product.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return sum
}

func (c Cart) Tax() decimal.Decimal {
	return c.Subtotal().Mul(taxRate)
}

func (c Cart) Total() decimal.Decimal {
	return c.Subtotal().Add(c.Tax())
}

// Validateはゲートウェイ境界で呼ぶ。
// 同一商品の明細が2つあるレスポンスは受け取らない。
func (c Cart) Validate() error {
	seen := make(map[string]struct{}, len(c.Items))
	for _, it := range c.Items {
		if err := it.Validate(); err != nil {
			return err
		}
		if _, dup := seen[it.Product.ID]; dup {
			return ErrDuplicateCartItem
		}
		seen[it.Product.ID] = struct{}{}
	}
	return nil
}
