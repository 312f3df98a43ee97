package rest

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront/internal/gateway"
)

const productListJSON = `{
	"products": [
		{"_id": "p-1", "title": "Desk Lamp", "price": "3000", "stock": 10, "seller": "s-1"},
		{"_id": "p-2", "title": "Ceramic Mug", "price": "1500", "stock": 5, "seller": "s-1"}
	]
}`

func TestProductRest_FetchAll(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/all", r.URL.Path)
		w.Write([]byte(productListJSON))
	})
	gw := NewProductGateway(client)

	products, err := gw.FetchAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "p-1", products[0].ID)
}

func TestProductRest_FetchSeller(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/seller-products", r.URL.Path)
		w.Write([]byte(productListJSON))
	})
	gw := NewProductGateway(client)

	products, err := gw.FetchSeller(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductRest_FetchByID_NotFound(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/ghost", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})
	gw := NewProductGateway(client)

	_, err := gw.FetchByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

// IDの無い商品が混ざったレスポンスは境界で弾く
func TestProductRest_FetchAll_InvalidPayload_Rejected(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [{"title": "no id", "price": "100", "stock": 1}]}`))
	})
	gw := NewProductGateway(client)

	_, err := gw.FetchAll(context.Background())

	assert.Error(t, err)
}

func TestProductRest_Create_SendsMultipartForm(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/product/create", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Desk Lamp", r.FormValue("title"))
		assert.Equal(t, "3000", r.FormValue("price"))
		assert.Equal(t, "10", r.FormValue("stock"))
		assert.Equal(t, "lighting", r.FormValue("category"))

		files := r.MultipartForm.File["images"]
		assert.Len(t, files, 1)
		assert.Equal(t, "lamp.jpg", files[0].Filename)
		f, err := files[0].Open()
		assert.NoError(t, err)
		defer f.Close()
		content, err := io.ReadAll(f)
		assert.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), content)

		w.Write([]byte(`{"product": {"_id": "p-new", "title": "Desk Lamp", "price": "3000", "stock": 10}}`))
	})
	gw := NewProductGateway(client)

	form := gateway.ProductForm{
		Title:    "Desk Lamp",
		Price:    decimal.NewFromInt(3000),
		Stock:    10,
		Category: "lighting",
		Images:   []gateway.ImageFile{{Name: "lamp.jpg", Content: []byte("jpeg-bytes")}},
	}

	p, err := gw.Create(context.Background(), form)

	assert.NoError(t, err)
	assert.Equal(t, "p-new", p.ID)
}

func TestProductRest_Update_UsesPutWithID(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/product/update/p-1", r.URL.Path)
		w.Write([]byte(`{"product": {"_id": "p-1", "title": "Desk Lamp v2", "price": "3200", "stock": 8}}`))
	})
	gw := NewProductGateway(client)

	p, err := gw.Update(context.Background(), "p-1", gateway.ProductForm{Title: "Desk Lamp v2", Price: decimal.NewFromInt(3200), Stock: 8})

	assert.NoError(t, err)
	assert.Equal(t, "Desk Lamp v2", p.Title)
}

func TestProductRest_Delete(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/product/delete/p-1", r.URL.Path)
		w.Write([]byte(`{}`))
	})
	gw := NewProductGateway(client)

	assert.NoError(t, gw.Delete(context.Background(), "p-1"))
}
