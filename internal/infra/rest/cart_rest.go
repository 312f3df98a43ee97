package rest

import (
	"context"
	"fmt"

	"storefront/internal/api"
	"storefront/internal/domain/model"
	"storefront/internal/gateway"
)

type cartRest struct {
	client *api.Client
}

// DI
func NewCartGateway(client *api.Client) gateway.CartGateway {
	return &cartRest{client: client}
}

// カート応答のエンベロープ
type cartEnvelope struct {
	Cart model.Cart `json:"cart"`
}

func (g *cartRest) Fetch(ctx context.Context) (model.Cart, error) {
	var env cartEnvelope
	if err := g.client.Get(ctx, "/cart", &env); err != nil {
		return model.Cart{}, err
	}
	return validatedCart(env.Cart)
}

func (g *cartRest) Add(ctx context.Context, productID string, quantity int64) (model.Cart, error) {
	body := map[string]any{
		"productId": productID,
		"quantity":  quantity,
	}

	var env cartEnvelope
	if err := g.client.Post(ctx, "/cart/add", body, &env); err != nil {
		return model.Cart{}, err
	}
	return validatedCart(env.Cart)
}

func (g *cartRest) UpdateItem(ctx context.Context, productID string, quantity int64) (model.Cart, error) {
	body := map[string]any{
		"productId": productID,
		"quantity":  quantity,
	}

	var env cartEnvelope
	if err := g.client.Put(ctx, "/cart/update", body, &env); err != nil {
		return model.Cart{}, err
	}
	return validatedCart(env.Cart)
}

func (g *cartRest) RemoveItem(ctx context.Context, productID string) (model.Cart, error) {
	var env cartEnvelope
	if err := g.client.Delete(ctx, "/cart/remove/"+productID, &env); err != nil {
		return model.Cart{}, err
	}
	return validatedCart(env.Cart)
}

func (g *cartRest) Clear(ctx context.Context) (model.Cart, error) {
	var env cartEnvelope
	if err := g.client.Delete(ctx, "/cart/clear", &env); err != nil {
		return model.Cart{}, err
	}
	return validatedCart(env.Cart)
}

// 境界での検証。重複明細や負数量はviewまで流さない。
func validatedCart(c model.Cart) (model.Cart, error) {
	if err := c.Validate(); err != nil {
		return model.Cart{}, fmt.Errorf("invalid cart payload: %w", err)
	}
	return c, nil
}
