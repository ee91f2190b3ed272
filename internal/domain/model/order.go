package model

import "time"

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "Placed"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// 遷移許可表。Placedは初期状態で、遷移先には戻れない。
// Cancelled/Deliveredを終端にするかは未確定なので、現状は全状態から4状態へ許可。
var orderTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPlaced:    {OrderStatusConfirmed: true, OrderStatusShipped: true, OrderStatusDelivered: true, OrderStatusCancelled: true},
	OrderStatusConfirmed: {OrderStatusConfirmed: true, OrderStatusShipped: true, OrderStatusDelivered: true, OrderStatusCancelled: true},
	OrderStatusShipped:   {OrderStatusConfirmed: true, OrderStatusShipped: true, OrderStatusDelivered: true, OrderStatusCancelled: true},
	OrderStatusDelivered: {OrderStatusConfirmed: true, OrderStatusShipped: true, OrderStatusDelivered: true, OrderStatusCancelled: true},
	OrderStatusCancelled: {OrderStatusConfirmed: true, OrderStatusShipped: true, OrderStatusDelivered: true, OrderStatusCancelled: true},
}

// 遷移先として指定できる値か（Placed指定は常にNG）
func IsOrderStatusTarget(s OrderStatus) bool {
	switch s {
	case OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func CanTransitionOrder(from, to OrderStatus) bool {
	return orderTransitions[from][to]
}

type Order struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	VendorID  int64 `gorm:"not null;index" json:"vendor"`
	FarmerID  int64 `gorm:"not null;index" json:"farmer"`
	ProductID int64 `gorm:"not null;index" json:"product"`
	Quantity  int64 `gorm:"not null" json:"quantity"`

	// 注文時点の quantity * price スナップショット。後から再計算しない。
	TotalPrice int64       `gorm:"not null" json:"totalPrice"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt  time.Time   `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time   `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
