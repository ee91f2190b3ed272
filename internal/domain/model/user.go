package model

import "time"

type Role string

const (
	RoleFarmer Role = "farmer"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// ロール文字列が正しいかチェック
func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// 住所（vendorの会社住所で使う）
type Address struct {
	Street  string `gorm:"type:varchar(255)" json:"street,omitempty"`
	City    string `gorm:"type:varchar(100)" json:"city,omitempty"`
	State   string `gorm:"type:varchar(100)" json:"state,omitempty"`
	Pincode string `gorm:"type:varchar(20)" json:"pincode,omitempty"`
}

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null;index" json:"role"`

	// farmer用
	FarmName     string `gorm:"type:varchar(255)" json:"farmName,omitempty"`
	FarmLocation string `gorm:"type:varchar(255)" json:"farmLocation,omitempty"`

	// vendor用
	CompanyName    string  `gorm:"type:varchar(255)" json:"companyName,omitempty"`
	CompanyAddress Address `gorm:"embedded;embeddedPrefix:company_" json:"companyAddress,omitempty"`
	BusinessType   string  `gorm:"type:varchar(100)" json:"businessType,omitempty"`
	GSTNumber      string  `gorm:"type:varchar(50)" json:"gstNumber,omitempty"`

	// admin用
	AdminLevel string `gorm:"type:varchar(20)" json:"adminLevel,omitempty"`

	// 管理者の承認フロー（approveでisActiveも立てる）
	IsApproved bool `gorm:"not null;default:false" json:"isApproved"`
	IsActive   bool `gorm:"not null;default:true" json:"isActive"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
