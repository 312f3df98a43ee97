package store

import "storefront/internal/domain/model"

// AppStateはアプリ全体の状態。グローバル変数にはせず、
// Store経由でDIする（隠れシングルトン禁止）。
type AppState struct {
	Cart    CartState
	Product ProductState
	Order   OrderState
	User    UserState
}

// サーバー確認済みのカート + ライフサイクル
type CartState struct {
	Cart   model.Cart
	Status Status
	Error  string
}

// 公開一覧と出品者一覧は別持ち。Currentは詳細ページの1件。
type ProductState struct {
	Products       []model.Product
	SellerProducts []model.Product
	Current        model.Product
	Status         Status
	Error          string

	// 作成・更新・削除の完了通知
	Message string
}

type OrderState struct {
	Orders []model.Order
	Status Status
	Error  string
}

type UserState struct {
	User            model.User
	Role            model.Role
	Login           bool
	IsAuthenticated bool
	Status          Status
	Error           string
}

func initialState() AppState {
	return AppState{
		Cart:    CartState{Status: StatusIdle},
		Product: ProductState{Status: StatusIdle},
		Order:   OrderState{Status: StatusIdle},
		User:    UserState{Status: StatusIdle},
	}
}
