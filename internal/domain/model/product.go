package model

import "time"

// 販売単位
var ProductUnits = map[string]struct{}{
	"kg":     {},
	"gram":   {},
	"liter":  {},
	"ml":     {},
	"piece":  {},
	"dozen":  {},
	"bundle": {},
	"other":  {},
}

func IsValidUnit(unit string) bool {
	_, ok := ProductUnits[unit]
	return ok
}

type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null;index:idx_products_owner_name,unique" json:"name"`
	Stock       int64  `gorm:"not null" json:"stock"`
	Unit        string `gorm:"type:varchar(20);not null" json:"unit"`
	Price       int64  `gorm:"not null" json:"price"`
	OwnerID     int64  `gorm:"not null;index:idx_products_owner_name,unique" json:"owner"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"type:varchar(100);not null;default:'Uncategorized';index" json:"category"`
	ImageURL    string `gorm:"type:text" json:"imageUrl,omitempty"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`

	// 注文確定で更新されるカウンタ（totalSoldは増えるだけ）
	TotalSold         int64     `gorm:"not null;default:0" json:"totalSold"`
	LastStockUpdateAt time.Time `gorm:"not null;autoCreateTime" json:"lastUpdatedStock"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
