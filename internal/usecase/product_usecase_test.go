package usecase

import (
	"context"
	"net/http"
	"testing"

	"vendhub/internal/domain/model"
	repo "vendhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductUsecase(s *memStore) *ProductUsecase {
	return NewProductUsecase(&memProductRepo{s: s})
}

// Test: 商品登録の成功とデフォルト値
func TestAddProductSuccess(t *testing.T) {
	uc := newProductUsecase(newMemStore())

	p, err := uc.AddProduct(context.Background(), 100, AddProductInput{
		Name:  "  tomato ",
		Stock: 5,
		Unit:  "kg",
		Price: 10,
	})

	assert.NoError(t, err)
	assert.Equal(t, "tomato", p.Name)
	assert.Equal(t, int64(100), p.OwnerID)
	//カテゴリ未指定はUncategorized
	assert.Equal(t, "Uncategorized", p.Category)
	assert.True(t, p.IsActive)
	assert.Equal(t, int64(0), p.TotalSold)
}

// Test: 入力チェック
func TestAddProductValidation(t *testing.T) {
	uc := newProductUsecase(newMemStore())

	cases := []AddProductInput{
		{Name: "", Stock: 5, Unit: "kg", Price: 10},
		{Name: "tomato", Stock: 5, Unit: "", Price: 10},
		{Name: "tomato", Stock: 5, Unit: "barrel", Price: 10},
		{Name: "tomato", Stock: -1, Unit: "kg", Price: 10},
		{Name: "tomato", Stock: 5, Unit: "kg", Price: -10},
	}
	for _, in := range cases {
		_, err := uc.AddProduct(context.Background(), 100, in)
		requireHTTPError(t, err, http.StatusBadRequest, CodeInvalidInput)
	}
}

// Test: 同じfarmerの同名商品は409
func TestAddProductDuplicateName(t *testing.T) {
	uc := newProductUsecase(newMemStore())

	in := AddProductInput{Name: "tomato", Stock: 5, Unit: "kg", Price: 10}
	_, err := uc.AddProduct(context.Background(), 100, in)
	assert.NoError(t, err)

	_, err = uc.AddProduct(context.Background(), 100, in)
	requireHTTPError(t, err, http.StatusConflict, CodeConflict)

	//別のfarmerなら同名でもOK
	_, err = uc.AddProduct(context.Background(), 101, in)
	assert.NoError(t, err)
}

// Test: 自分の商品だけ検索対象になる
func TestSearchMyProductsScopedToOwner(t *testing.T) {
	products := new(MockProductRepository)

	products.On("Search", mock.MatchedBy(func(q repo.ProductSearchQuery) bool {
		return q.OwnerID != nil && *q.OwnerID == 100 && q.Keyword == "tom"
	})).Return([]model.Product{}, nil)

	uc := NewProductUsecase(products)

	_, err := uc.SearchMyProducts(context.Background(), 100, SearchProductsInput{Keyword: " tom "})
	assert.NoError(t, err)
	products.AssertExpectations(t)
}

// Test: 公開カタログはowner縛りなし
func TestListAllProductsUnscoped(t *testing.T) {
	products := new(MockProductRepository)

	products.On("Search", mock.MatchedBy(func(q repo.ProductSearchQuery) bool {
		return q.OwnerID == nil
	})).Return([]model.Product{{ID: 1, Name: "tomato"}}, nil)

	uc := NewProductUsecase(products)

	items, err := uc.ListAllProducts(context.Background(), SearchProductsInput{})
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	products.AssertExpectations(t)
}

// Test: 要望投稿の入力チェック
func TestPostRequirement(t *testing.T) {
	requirements := new(MockRequirementRepository)
	requirements.On("Create", mock.MatchedBy(func(r model.Requirement) bool {
		return r.ProductName == "onion" && r.Quantity == 20 && r.UserID == 200
	})).Return(model.Requirement{ID: 1, ProductName: "onion", Quantity: 20, UserID: 200}, nil)

	uc := NewRequirementUsecase(requirements)

	saved, err := uc.Post(context.Background(), 200, PostRequirementInput{ProductName: " onion ", Quantity: 20})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	_, err = uc.Post(context.Background(), 200, PostRequirementInput{ProductName: "", Quantity: 20})
	requireHTTPError(t, err, http.StatusBadRequest, CodeInvalidInput)

	_, err = uc.Post(context.Background(), 200, PostRequirementInput{ProductName: "onion", Quantity: 0})
	requireHTTPError(t, err, http.StatusBadRequest, CodeInvalidInput)
}

type MockRequirementRepository struct {
	mock.Mock
}

func (m *MockRequirementRepository) Create(ctx context.Context, r model.Requirement) (model.Requirement, error) {
	args := m.Called(r)
	return args.Get(0).(model.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) ListRecent(ctx context.Context, limit int) ([]model.Requirement, error) {
	args := m.Called(limit)
	return args.Get(0).([]model.Requirement), args.Error(1)
}
