package repository

import (
	"context"

	"vendhub/internal/domain/model"
)

// 商品検索の条件。nil/空は条件なし。
type ProductSearchQuery struct {
	OwnerID  *int64
	Keyword  string
	Category string
	IsActive *bool
}

type ProductRepository interface {
	// 作成。同じfarmerの同名商品はErrConflict。
	Create(ctx context.Context, p model.Product) (model.Product, error)
	FindByID(ctx context.Context, productID int64) (model.Product, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Product, error)
	Search(ctx context.Context, q ProductSearchQuery) ([]model.Product, error)
}
