package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/model"
	"storefront/internal/gateway"
	"storefront/internal/store"
)

// =====================
// Mock: ProductGateway
// =====================

type ProductGatewayMock struct {
	mock.Mock
}

func (m *ProductGatewayMock) FetchAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *ProductGatewayMock) FetchSeller(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *ProductGatewayMock) FetchByID(ctx context.Context, productID string) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductGatewayMock) Create(ctx context.Context, form gateway.ProductForm) (model.Product, error) {
	args := m.Called(ctx, form)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductGatewayMock) Update(ctx context.Context, productID string, form gateway.ProductForm) (model.Product, error) {
	args := m.Called(ctx, productID, form)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductGatewayMock) Delete(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func validForm() gateway.ProductForm {
	return gateway.ProductForm{
		Title:    "Ceramic Mug",
		Price:    decimal.NewFromInt(1500),
		Stock:    20,
		Category: "kitchen",
	}
}

func TestProductUsecase_FetchAll_ReplacesPublicList(t *testing.T) {
	gw := new(ProductGatewayMock)
	st := store.New()
	st.Dispatch(store.ProductsFulfilled{Products: []model.Product{{ID: "stale"}}})
	uc := NewProductUsecase(st, gw, testLogger())

	gw.On("FetchAll", mock.Anything).Return([]model.Product{{ID: "p-1"}, {ID: "p-2"}}, nil)

	err := uc.FetchAll(context.Background())

	assert.NoError(t, err)
	s := st.State().Product
	assert.Equal(t, store.StatusSucceeded, s.Status)
	assert.Len(t, s.Products, 2)
	assert.Equal(t, "p-1", s.Products[0].ID)
}

func TestProductUsecase_FetchSellerProducts_DoesNotTouchPublicList(t *testing.T) {
	gw := new(ProductGatewayMock)
	st := store.New()
	st.Dispatch(store.ProductsFulfilled{Products: []model.Product{{ID: "public-1"}}})
	uc := NewProductUsecase(st, gw, testLogger())

	gw.On("FetchSeller", mock.Anything).Return([]model.Product{{ID: "mine-1"}}, nil)

	err := uc.FetchSellerProducts(context.Background())

	assert.NoError(t, err)
	s := st.State().Product
	assert.Len(t, s.SellerProducts, 1)
	assert.Len(t, s.Products, 1)
}

func TestProductUsecase_FetchByID_NotFound(t *testing.T) {
	gw := new(ProductGatewayMock)
	st := store.New()
	uc := NewProductUsecase(st, gw, testLogger())

	gw.On("FetchByID", mock.Anything, "ghost").Return(model.Product{}, gateway.ErrNotFound)

	err := uc.FetchByID(context.Background(), "ghost")

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "not found", st.State().Product.Error)
}

func TestProductUsecase_Create_Success_SetsMessage(t *testing.T) {
	gw := new(ProductGatewayMock)
	st := store.New()
	uc := NewProductUsecase(st, gw, testLogger())

	form := validForm()
	gw.On("Create", mock.Anything, form).Return(model.Product{ID: "p-new", Title: form.Title}, nil)

	err := uc.Create(context.Background(), form)

	assert.NoError(t, err)
	s := st.State().Product
	assert.Equal(t, "Product created successfully", s.Message)
	assert.Equal(t, "p-new", s.Current.ID)
}

func TestProductUsecase_Create_EmptyTitle_NoRequest(t *testing.T) {
	gw := new(ProductGatewayMock)
	st := store.New()
	uc := NewProductUsecase(st, gw, testLogger())

	form := validForm()
	form.Title = "   "

	err := uc.Create(context.Background(), form)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	gw.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, store.StatusIdle, st.State().Product.Status)
}

func TestProductUsecase_Update_Forbidden(t *testing.T) {
	gw := new(ProductGatewayMock)
	st := store.New()
	uc := NewProductUsecase(st, gw, testLogger())

	form := validForm()
	gw.On("Update", mock.Anything, "p-1", form).Return(model.Product{}, gateway.ErrForbidden)

	err := uc.Update(context.Background(), "p-1", form)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)
}

func TestProductUsecase_Delete_RemovesFromLists(t *testing.T) {
	gw := new(ProductGatewayMock)
	st := store.New()
	st.Dispatch(store.ProductsFulfilled{Products: []model.Product{{ID: "p-1"}, {ID: "p-2"}}})
	st.Dispatch(store.SellerProductsFulfilled{Products: []model.Product{{ID: "p-1"}}})
	uc := NewProductUsecase(st, gw, testLogger())

	gw.On("Delete", mock.Anything, "p-1").Return(nil)

	err := uc.Delete(context.Background(), "p-1")

	assert.NoError(t, err)
	s := st.State().Product
	assert.Len(t, s.Products, 1)
	assert.Empty(t, s.SellerProducts)
	assert.Equal(t, "Product deleted successfully", s.Message)
}

func TestProductUsecase_ResetMessage(t *testing.T) {
	gw := new(ProductGatewayMock)
	st := store.New()
	st.Dispatch(store.ProductSaved{Product: model.Product{ID: "p-1"}, Message: "Product created successfully"})
	uc := NewProductUsecase(st, gw, testLogger())

	uc.ResetMessage()

	assert.Empty(t, st.State().Product.Message)
}
