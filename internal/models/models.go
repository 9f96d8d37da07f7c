package models

import (
	"time"
)

const (
	RoleBuyer  = "BUYER"
	RoleSeller = "SELLER"
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	return s == RoleBuyer || s == RoleSeller
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Description string  `gorm:"size:1000"                json:"description"`
	ImageURL    string  `gorm:"size:500"                 json:"image_url"`
	SellerID    uint    `gorm:"index;not null"           json:"seller_id"`
	Seller      *User   `gorm:"foreignKey:SellerID"      json:"-"`
}

type CartItem struct {
	ID        uint     `gorm:"primaryKey;autoIncrement"    json:"id"`
	UserID    uint     `gorm:"index;not null"              json:"user_id"`
	ProductID uint     `gorm:"index;not null"              json:"product_id"`
	Quantity  int      `gorm:"not null;check:quantity > 0" json:"quantity"`
	Product   *Product `gorm:"foreignKey:ProductID"        json:"-"`
}

type Order struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint        `gorm:"index;not null"           json:"user_id"`
	User        *User       `gorm:"foreignKey:UserID"        json:"-"`
	TotalAmount float64     `gorm:"not null"                 json:"total_amount"`
	OrderDate   time.Time   `gorm:"not null"                 json:"order_date"`
	Items       []OrderItem `gorm:"foreignKey:OrderID"       json:"items"`
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint `gorm:"index;not null"           json:"order_id"`
	ProductID uint `gorm:"index;not null"           json:"product_id"`
	Quantity  int  `gorm:"not null"                 json:"quantity"`
	// Price is the product price at the instant the order was placed.
	Price   float64  `gorm:"not null"             json:"price"`
	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Token     string    `gorm:"size:500;index;not null"  json:"token"`
	Email     string    `gorm:"index;not null"           json:"email"`
	ExpiresAt time.Time `gorm:"not null"                 json:"expires_at"`
	Revoked   bool      `gorm:"default:false"            json:"revoked"`
}
