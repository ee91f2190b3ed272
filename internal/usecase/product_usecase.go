package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"vendhub/internal/domain/model"
	repo "vendhub/internal/repository"
)

type ProductUsecase struct {
	products repo.ProductRepository
}

func NewProductUsecase(products repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

type AddProductInput struct {
	Name        string
	Stock       int64
	Unit        string
	Price       int64
	Description string
	Category    string
	ImageURL    string
}

// farmerの商品登録
func (u *ProductUsecase) AddProduct(ctx context.Context, ownerID int64, in AddProductInput) (model.Product, error) {
	if ownerID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}

	name := strings.TrimSpace(in.Name)
	unit := strings.TrimSpace(in.Unit)
	if name == "" || unit == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "Please provide product name, stock, unit, and price.")
	}
	if !model.IsValidUnit(unit) {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "invalid unit")
	}
	if in.Stock < 0 || in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "Stock and price cannot be negative.")
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "Uncategorized"
	}

	now := time.Now()
	p, err := u.products.Create(ctx, model.Product{
		Name:              name,
		Stock:             in.Stock,
		Unit:              unit,
		Price:             in.Price,
		OwnerID:           ownerID,
		Description:       in.Description,
		Category:          category,
		ImageURL:          in.ImageURL,
		IsActive:          true,
		TotalSold:         0,
		LastStockUpdateAt: now,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if errors.Is(err, repo.ErrConflict) {
		//同じfarmerの同名商品
		return model.Product{}, NewHTTPError(http.StatusConflict, CodeConflict, "You already have a product with this name.")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return p, nil
}

// farmer自身の商品一覧
func (u *ProductUsecase) ListMyProducts(ctx context.Context, ownerID int64) ([]model.Product, error) {
	if ownerID <= 0 {
		return []model.Product{}, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}

	items, err := u.products.ListByOwner(ctx, ownerID)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return items, nil
}

type SearchProductsInput struct {
	Keyword  string
	Category string
	IsActive *bool
}

// farmer自身の商品を条件検索
func (u *ProductUsecase) SearchMyProducts(ctx context.Context, ownerID int64, in SearchProductsInput) ([]model.Product, error) {
	if ownerID <= 0 {
		return []model.Product{}, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}

	items, err := u.products.Search(ctx, repo.ProductSearchQuery{
		OwnerID:  &ownerID,
		Keyword:  strings.TrimSpace(in.Keyword),
		Category: strings.TrimSpace(in.Category),
		IsActive: in.IsActive,
	})
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return items, nil
}

// 公開カタログ（vendorが全商品を見る）
func (u *ProductUsecase) ListAllProducts(ctx context.Context, in SearchProductsInput) ([]model.Product, error) {
	items, err := u.products.Search(ctx, repo.ProductSearchQuery{
		Keyword:  strings.TrimSpace(in.Keyword),
		Category: strings.TrimSpace(in.Category),
		IsActive: in.IsActive,
	})
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return items, nil
}
