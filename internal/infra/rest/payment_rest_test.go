package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/domain/model"
	"storefront/internal/gateway"
)

func fullShipping() model.ShippingAddress {
	return model.ShippingAddress{
		Name:         "Taro Yamada",
		Phone:        "090-0000-0000",
		AddressLine1: "1-2-3 Chiyoda",
		City:         "Tokyo",
		State:        "Tokyo",
		PostalCode:   "100-0001",
		Country:      "JP",
	}
}

func TestPaymentRest_CreateCheckoutSession_SendsShippingAndKey(t *testing.T) {
	var body struct {
		Shipping       model.ShippingAddress `json:"shipping"`
		IdempotencyKey string                `json:"idempotencyKey"`
	}
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/payment/create-checkout-session", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"url": "https://pay.example/session/abc"}`))
	})
	gw := NewPaymentGateway(client)

	url, err := gw.CreateCheckoutSession(context.Background(), fullShipping(), "key-123")

	assert.NoError(t, err)
	assert.Equal(t, "https://pay.example/session/abc", url)
	assert.Equal(t, "key-123", body.IdempotencyKey)
	assert.Equal(t, "Taro Yamada", body.Shipping.Name)
	assert.Equal(t, "100-0001", body.Shipping.PostalCode)
}

func TestPaymentRest_CreateCheckoutSession_ServerErrorCarriesMessage(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "cart is empty"}`))
	})
	gw := NewPaymentGateway(client)

	_, err := gw.CreateCheckoutSession(context.Background(), fullShipping(), "key-123")

	var se *gateway.ServerError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "cart is empty", se.Message)
}
