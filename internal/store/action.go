package store

import "storefront/internal/domain/model"

// Actionはreducerへの入力。usecase層だけがdispatchする。
type Action interface {
	isAction()
}

// ===== cart =====

type CartPending struct{}

type CartFulfilled struct {
	Cart model.Cart
}

type CartRejected struct {
	Reason string
}

// ログアウト・未ログイン表示用のローカルクリア
type CartCleared struct{}

func (CartPending) isAction()   {}
func (CartFulfilled) isAction() {}
func (CartRejected) isAction()  {}
func (CartCleared) isAction()   {}

// ===== product =====

type ProductsPending struct{}

// 全件フェッチの結果で公開一覧を丸ごと置き換える
type ProductsFulfilled struct {
	Products []model.Product
}

// 出品者一覧を丸ごと置き換える
type SellerProductsFulfilled struct {
	Products []model.Product
}

// 詳細1件はCurrentだけ置き換える
type ProductFetched struct {
	Product model.Product
}

// 作成・更新の完了
type ProductSaved struct {
	Product model.Product
	Message string
}

// 削除の完了
type ProductDeleted struct {
	ProductID string
	Message   string
}

type ProductsRejected struct {
	Reason string
}

type ProductErrorReset struct{}

type ProductMessageReset struct{}

func (ProductsPending) isAction()         {}
func (ProductsFulfilled) isAction()       {}
func (SellerProductsFulfilled) isAction() {}
func (ProductFetched) isAction()          {}
func (ProductSaved) isAction()            {}
func (ProductDeleted) isAction()          {}
func (ProductsRejected) isAction()        {}
func (ProductErrorReset) isAction()       {}
func (ProductMessageReset) isAction()     {}

// ===== order =====

type OrdersPending struct{}

type OrdersFulfilled struct {
	Orders []model.Order
}

type OrdersRejected struct {
	Reason string
}

func (OrdersPending) isAction()   {}
func (OrdersFulfilled) isAction() {}
func (OrdersRejected) isAction()  {}

// ===== user =====

type UserPending struct{}

// info-fetch / login-check の成功
type UserFetched struct {
	User model.User
}

type UserLoggedIn struct {
	User model.User
}

type UserLoggedOut struct{}

// info-fetchの失敗は「未ログイン」を意味するので識別情報ごと消す
type UserFetchRejected struct {
	Reason string
}

// ログイン失敗。識別情報には触らない。
type UserLoginRejected struct {
	Reason string
}

// ログアウト失敗。ログイン状態は残る。
type UserLogoutRejected struct {
	Reason string
}

type UserErrorReset struct{}

func (UserPending) isAction()        {}
func (UserFetched) isAction()        {}
func (UserLoggedIn) isAction()       {}
func (UserLoggedOut) isAction()      {}
func (UserFetchRejected) isAction()  {}
func (UserLoginRejected) isAction()  {}
func (UserLogoutRejected) isAction() {}
func (UserErrorReset) isAction()     {}
