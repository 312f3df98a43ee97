package model

import "github.com/shopspring/decimal"

// 注文明細。購入時点のコピーであり、Productへの参照ではない。
// 後から商品が編集・削除されても履歴は変わらない。
type OrderItem struct {
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	Image    string          `json:"image"`
}
