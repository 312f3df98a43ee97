package model

import "errors"

// カートの明細。商品は追加時点のスナップショットを埋め込む。
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

var ErrInvalidQuantity = errors.New("quantity must be >= 1")

func (i CartItem) Validate() error {
	if i.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return i.Product.Validate()
}
