package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/domain/model"
	"storefront/internal/gateway"
)

const ordersJSON = `[
	{"_id": "o-2", "status": "paid", "totalAmount": "4500", "items": [{"title": "Desk Lamp", "price": "3000", "quantity": 1}]},
	{"_id": "o-1", "status": "pending", "totalAmount": "1500", "items": []}
]`

func TestOrderRest_FetchMine_BareArray(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/order/my-orders", r.URL.Path)
		w.Write([]byte(ordersJSON))
	})
	gw := NewOrderGateway(client)

	orders, err := gw.FetchMine(context.Background())

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	// バックエンドの並び（新しい順）をそのまま保持する
	assert.Equal(t, "o-2", orders[0].ID)
	assert.Equal(t, model.OrderStatusPaid, orders[0].Status)
	assert.Len(t, orders[0].Items, 1)
}

func TestOrderRest_FetchForSeller(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/order/seller-orders", r.URL.Path)
		w.Write([]byte(ordersJSON))
	})
	gw := NewOrderGateway(client)

	orders, err := gw.FetchForSeller(context.Background())

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderRest_FetchMine_Unauthorized(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	gw := NewOrderGateway(client)

	_, err := gw.FetchMine(context.Background())

	assert.ErrorIs(t, err, gateway.ErrUnauthorized)
}
