package usecase

import (
	"context"
	"fmt"

	"storefront/internal/gateway"
	"storefront/internal/store"

	"github.com/sirupsen/logrus"
)

// OrderUsecaseは注文履歴のthunk。buyer/sellerでスコープが違うだけで形は同じ。
type OrderUsecase struct {
	store *store.Store
	gw    gateway.OrderGateway
	log   *logrus.Logger
}

// DI
func NewOrderUsecase(st *store.Store, gw gateway.OrderGateway, log *logrus.Logger) *OrderUsecase {
	return &OrderUsecase{store: st, gw: gw, log: log}
}

// FetchMyOrdersは買い手の注文履歴（新しい順）
func (u *OrderUsecase) FetchMyOrders(ctx context.Context) error {
	u.store.Dispatch(store.OrdersPending{})

	orders, err := u.gw.FetchMine(ctx)
	if err != nil {
		reason := fmt.Sprintf("Failed to fetch orders, %s", reasonOf(err))
		u.store.Dispatch(store.OrdersRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.store.Dispatch(store.OrdersFulfilled{Orders: orders})
	return nil
}

// FetchSellerOrdersは自分の商品を含む注文（新しい順）
func (u *OrderUsecase) FetchSellerOrders(ctx context.Context) error {
	u.store.Dispatch(store.OrdersPending{})

	orders, err := u.gw.FetchForSeller(ctx)
	if err != nil {
		reason := fmt.Sprintf("Failed to fetch orders, %s", reasonOf(err))
		u.store.Dispatch(store.OrdersRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.store.Dispatch(store.OrdersFulfilled{Orders: orders})
	return nil
}
