package model

// 配送先住所。AddressLine2だけ任意。
type ShippingAddress struct {
	//宛名
	Name string `json:"name"`

	//電話番号
	Phone string `json:"phone"`

	//番地など
	AddressLine1 string `json:"addressLine1"`

	//建物名など（任意）
	AddressLine2 string `json:"addressLine2"`

	//市区町村
	City string `json:"city"`

	//州・都道府県
	State string `json:"state"`

	//郵便番号
	PostalCode string `json:"postalCode"`

	//国
	Country string `json:"country"`
}
