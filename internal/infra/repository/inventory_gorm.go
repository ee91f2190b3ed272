package repository

import (
	"context"
	"time"

	"vendhub/internal/domain/model"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫が足りるときだけ減らす。同じUPDATE文でtotalSoldと在庫更新時刻も進めるので、
// チェックと減算の間に他の注文が割り込めない（stockは負にならない）。
func (r *InventoryGormRepository) ApplySale(ctx context.Context, productID int64, qty int64, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		Updates(map[string]interface{}{
			"stock":                gorm.Expr("stock - ?", qty),
			"total_sold":           gorm.Expr("total_sold + ?", qty),
			"last_stock_update_at": now,
		})

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}
