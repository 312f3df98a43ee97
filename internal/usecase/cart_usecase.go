package usecase

import (
	"context"
	"net/http"

	"storefront/internal/gateway"
	"storefront/internal/store"

	"github.com/sirupsen/logrus"
)

// CartUsecaseはカート操作のthunk。
// 1操作 = 1ゲートウェイ呼び出しをpending/fulfilled/rejectedで包む。
type CartUsecase struct {
	store *store.Store
	gw    gateway.CartGateway
	log   *logrus.Logger
}

// DI
func NewCartUsecase(st *store.Store, gw gateway.CartGateway, log *logrus.Logger) *CartUsecase {
	return &CartUsecase{store: st, gw: gw, log: log}
}

// FetchCartは現在のカートを取得。無ければ空のカートが返る。
func (u *CartUsecase) FetchCart(ctx context.Context) error {
	u.store.Dispatch(store.CartPending{})

	cart, err := u.gw.Fetch(ctx)
	if err != nil {
		reason := reasonOf(err)
		u.store.Dispatch(store.CartRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.store.Dispatch(store.CartFulfilled{Cart: cart})
	return nil
}

// AddToCartはカートへ追加する。
// すでに入っている商品は呼び出し側の意図の重複とみなし、
// リクエストを発行せずErrAlreadyInCartで返す（カートは変わらない）。
func (u *CartUsecase) AddToCart(ctx context.Context, productID string, quantity int64) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if quantity < 1 {
		return NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	if u.store.State().Cart.Cart.Contains(productID) {
		u.log.WithField("product_id", productID).Debug("add skipped: already in cart")
		return ErrAlreadyInCart
	}

	u.store.Dispatch(store.CartPending{})

	cart, err := u.gw.Add(ctx, productID, quantity)
	if err != nil {
		reason := reasonOf(err)
		u.store.Dispatch(store.CartRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.store.Dispatch(store.CartFulfilled{Cart: cart})
	return nil
}

// UpdateCartItemは数量変更。0以下はゲートウェイまで届かせない。
// 削除は明示操作（RemoveCartItem）であり、0更新の暗黙削除はしない。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, productID string, quantity int64) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if quantity < 1 {
		return NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	u.store.Dispatch(store.CartPending{})

	cart, err := u.gw.UpdateItem(ctx, productID, quantity)
	if err != nil {
		reason := reasonOf(err)
		u.store.Dispatch(store.CartRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.store.Dispatch(store.CartFulfilled{Cart: cart})
	return nil
}

// RemoveCartItemは明細の削除
func (u *CartUsecase) RemoveCartItem(ctx context.Context, productID string) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	u.store.Dispatch(store.CartPending{})

	cart, err := u.gw.RemoveItem(ctx, productID)
	if err != nil {
		reason := reasonOf(err)
		u.store.Dispatch(store.CartRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.store.Dispatch(store.CartFulfilled{Cart: cart})
	return nil
}

// Clearはサーバー側のカートも空にする
func (u *CartUsecase) Clear(ctx context.Context) error {
	u.store.Dispatch(store.CartPending{})

	cart, err := u.gw.Clear(ctx)
	if err != nil {
		reason := reasonOf(err)
		u.store.Dispatch(store.CartRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.store.Dispatch(store.CartFulfilled{Cart: cart})
	return nil
}

// ClearLocalはローカル状態だけを空へ戻す（ログアウト・未ログイン表示）
func (u *CartUsecase) ClearLocal() {
	u.store.Dispatch(store.CartCleared{})
}
