package repository

import (
	"context"
	"time"
)

type InventoryRepository interface {
	// 在庫が足りるときだけ減算して、totalSoldと在庫更新時刻も同じ文で進める。
	// 足りなければfalse。同じ商品への同時注文はここで直列化される。
	ApplySale(ctx context.Context, productID int64, qty int64, now time.Time) (bool, error)
}
