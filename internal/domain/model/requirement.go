package model

import "time"

// vendorが欲しい商品を自由投稿する「要望」
type Requirement struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"productName"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	UserID      int64     `gorm:"not null;index" json:"user"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}
