package repository

import (
	"context"
	"time"

	"vendhub/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	// vendor自身の注文（新しい順）
	ListByVendor(ctx context.Context, vendorID int64) ([]model.Order, error)
	// farmerの商品に入った注文（新しい順）
	ListByFarmer(ctx context.Context, farmerID int64) ([]model.Order, error)
	// 管理者用の全件（新しい順）
	ListAll(ctx context.Context) ([]model.Order, error)

	// ダッシュボード用の集計
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
	CountCreatedBetween(ctx context.Context, from time.Time, to time.Time) (int64, error)
	SumTotalPriceByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
}
