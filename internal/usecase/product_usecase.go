package usecase

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/gateway"
	"storefront/internal/store"

	"github.com/sirupsen/logrus"
)

// ProductUsecaseは商品まわりのthunk。
// 作成・更新・削除は出品者専用（Route Guardとバックエンドが強制）。
type ProductUsecase struct {
	store *store.Store
	gw    gateway.ProductGateway
	log   *logrus.Logger
}

// DI
func NewProductUsecase(st *store.Store, gw gateway.ProductGateway, log *logrus.Logger) *ProductUsecase {
	return &ProductUsecase{store: st, gw: gw, log: log}
}

// FetchAllは公開カタログを丸ごと取り直す
func (u *ProductUsecase) FetchAll(ctx context.Context) error {
	u.store.Dispatch(store.ProductsPending{})

	products, err := u.gw.FetchAll(ctx)
	if err != nil {
		reason := reasonOf(err)
		u.store.Dispatch(store.ProductsRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.store.Dispatch(store.ProductsFulfilled{Products: products})
	return nil
}

// FetchSellerProductsは自分の出品一覧
func (u *ProductUsecase) FetchSellerProducts(ctx context.Context) error {
	u.store.Dispatch(store.ProductsPending{})

	products, err := u.gw.FetchSeller(ctx)
	if err != nil {
		reason := reasonOf(err)
		u.store.Dispatch(store.ProductsRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.store.Dispatch(store.SellerProductsFulfilled{Products: products})
	return nil
}

// FetchByIDは詳細1件。Currentスロットだけを置き換える。
func (u *ProductUsecase) FetchByID(ctx context.Context, productID string) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	u.store.Dispatch(store.ProductsPending{})

	p, err := u.gw.FetchByID(ctx, productID)
	if err != nil {
		reason := reasonOf(err)
		u.store.Dispatch(store.ProductsRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.store.Dispatch(store.ProductFetched{Product: p})
	return nil
}

func validateForm(form gateway.ProductForm) error {
	if strings.TrimSpace(form.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if form.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if form.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	return nil
}

// Createは商品作成（multipart）
func (u *ProductUsecase) Create(ctx context.Context, form gateway.ProductForm) error {
	if err := validateForm(form); err != nil {
		return err
	}

	u.store.Dispatch(store.ProductsPending{})

	p, err := u.gw.Create(ctx, form)
	if err != nil {
		reason := reasonOf(err)
		u.store.Dispatch(store.ProductsRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.log.WithField("product_id", p.ID).Info("product created")
	u.store.Dispatch(store.ProductSaved{Product: p, Message: "Product created successfully"})
	return nil
}

// Updateは商品更新（multipart）
func (u *ProductUsecase) Update(ctx context.Context, productID string, form gateway.ProductForm) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := validateForm(form); err != nil {
		return err
	}

	u.store.Dispatch(store.ProductsPending{})

	p, err := u.gw.Update(ctx, productID, form)
	if err != nil {
		reason := reasonOf(err)
		u.store.Dispatch(store.ProductsRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.store.Dispatch(store.ProductSaved{Product: p, Message: "Product updated successfully"})
	return nil
}

// Deleteは商品削除。一覧からも取り除く。
func (u *ProductUsecase) Delete(ctx context.Context, productID string) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	u.store.Dispatch(store.ProductsPending{})

	if err := u.gw.Delete(ctx, productID); err != nil {
		reason := reasonOf(err)
		u.store.Dispatch(store.ProductsRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.store.Dispatch(store.ProductDeleted{ProductID: productID, Message: "Product deleted successfully"})
	return nil
}

func (u *ProductUsecase) ResetError() {
	u.store.Dispatch(store.ProductErrorReset{})
}

func (u *ProductUsecase) ResetMessage() {
	u.store.Dispatch(store.ProductMessageReset{})
}
