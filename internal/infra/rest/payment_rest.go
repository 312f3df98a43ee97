package rest

import (
	"context"

	"storefront/internal/api"
	"storefront/internal/domain/model"
	"storefront/internal/gateway"
)

type paymentRest struct {
	client *api.Client
}

// DI
func NewPaymentGateway(client *api.Client) gateway.PaymentGateway {
	return &paymentRest{client: client}
}

type checkoutSessionRequest struct {
	Shipping       model.ShippingAddress `json:"shipping"`
	IdempotencyKey string                `json:"idempotencyKey"`
}

type checkoutSessionResponse struct {
	URL string `json:"url"`
}

// 決済セッションを作り、ホスト型チェックアウトのURLを無加工で返す
func (g *paymentRest) CreateCheckoutSession(ctx context.Context, shipping model.ShippingAddress, idempotencyKey string) (string, error) {
	req := checkoutSessionRequest{
		Shipping:       shipping,
		IdempotencyKey: idempotencyKey,
	}

	var resp checkoutSessionResponse
	if err := g.client.Post(ctx, "/api/payment/create-checkout-session", req, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}
