package rest

import (
	"context"

	"storefront/internal/api"
	"storefront/internal/domain/model"
	"storefront/internal/gateway"
)

type orderRest struct {
	client *api.Client
}

// DI
func NewOrderGateway(client *api.Client) gateway.OrderGateway {
	return &orderRest{client: client}
}

// 注文履歴はエンベロープ無しの素の配列で返る
func (g *orderRest) FetchMine(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := g.client.Get(ctx, "/order/my-orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *orderRest) FetchForSeller(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := g.client.Get(ctx, "/order/seller-orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
