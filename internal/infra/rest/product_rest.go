package rest

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"storefront/internal/api"
	"storefront/internal/domain/model"
	"storefront/internal/gateway"
)

type productRest struct {
	client *api.Client
}

// DI
func NewProductGateway(client *api.Client) gateway.ProductGateway {
	return &productRest{client: client}
}

type productListEnvelope struct {
	Products []model.Product `json:"products"`
}

type productEnvelope struct {
	Product model.Product `json:"product"`
}

func (g *productRest) FetchAll(ctx context.Context) ([]model.Product, error) {
	var env productListEnvelope
	if err := g.client.Get(ctx, "/product/all", &env); err != nil {
		return nil, err
	}
	return validatedProducts(env.Products)
}

func (g *productRest) FetchSeller(ctx context.Context) ([]model.Product, error) {
	var env productListEnvelope
	if err := g.client.Get(ctx, "/product/seller-products", &env); err != nil {
		return nil, err
	}
	return validatedProducts(env.Products)
}

func (g *productRest) FetchByID(ctx context.Context, productID string) (model.Product, error) {
	var env productEnvelope
	if err := g.client.Get(ctx, "/product/"+productID, &env); err != nil {
		return model.Product{}, err
	}
	if err := env.Product.Validate(); err != nil {
		return model.Product{}, fmt.Errorf("invalid product payload: %w", err)
	}
	return env.Product, nil
}

func (g *productRest) Create(ctx context.Context, form gateway.ProductForm) (model.Product, error) {
	var env productEnvelope
	err := g.client.SendMultipart(ctx, http.MethodPost, "/product/create", writeProductForm(form), &env)
	if err != nil {
		return model.Product{}, err
	}
	if err := env.Product.Validate(); err != nil {
		return model.Product{}, fmt.Errorf("invalid product payload: %w", err)
	}
	return env.Product, nil
}

func (g *productRest) Update(ctx context.Context, productID string, form gateway.ProductForm) (model.Product, error) {
	var env productEnvelope
	err := g.client.SendMultipart(ctx, http.MethodPut, "/product/update/"+productID, writeProductForm(form), &env)
	if err != nil {
		return model.Product{}, err
	}
	if err := env.Product.Validate(); err != nil {
		return model.Product{}, fmt.Errorf("invalid product payload: %w", err)
	}
	return env.Product, nil
}

func (g *productRest) Delete(ctx context.Context, productID string) error {
	return g.client.Delete(ctx, "/product/delete/"+productID, nil)
}

// multipartボディの組み立て
func writeProductForm(form gateway.ProductForm) func(*multipart.Writer) error {
	return func(w *multipart.Writer) error {
		fields := map[string]string{
			"title":       form.Title,
			"description": form.Description,
			"price":       form.Price.String(),
			"stock":       strconv.FormatInt(form.Stock, 10),
			"category":    form.Category,
		}
		for k, v := range fields {
			if err := w.WriteField(k, v); err != nil {
				return err
			}
		}

		for _, img := range form.Images {
			part, err := w.CreateFormFile("images", img.Name)
			if err != nil {
				return err
			}
			if _, err := part.Write(img.Content); err != nil {
				return err
			}
		}
		return nil
	}
}

func validatedProducts(list []model.Product) ([]model.Product, error) {
	for _, p := range list {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid product payload: %w", err)
		}
	}
	return list, nil
}
