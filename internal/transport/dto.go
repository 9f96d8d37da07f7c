package transport

import (
	"time"

	"github.com/Skotchmaster/marketplace/internal/models"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ProductRequest carries product fields from the client. Description and
// ImageURL are pointers: on update a missing field keeps the stored value.
type ProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

type ProductDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	SellerID    uint    `json:"seller_id"`
	OrderCount  int64   `json:"order_count,omitempty"`
}

func ProductToDTO(p *models.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		SellerID:    p.SellerID,
	}
}

type CartItemDTO struct {
	ID           uint    `json:"id"`
	UserID       uint    `json:"user_id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
	TotalPrice   float64 `json:"total_price"`
}

// CartItemToDTO projects a cart row. A missing product reference degrades to
// a placeholder instead of failing: cart rows can outlive product rows.
func CartItemToDTO(item *models.CartItem) CartItemDTO {
	dto := CartItemDTO{
		ID:          item.ID,
		UserID:      item.UserID,
		ProductID:   item.ProductID,
		ProductName: "Unknown Product",
		Quantity:    item.Quantity,
	}
	if item.Product != nil {
		dto.ProductName = item.Product.Name
		dto.ProductPrice = item.Product.Price
	}
	dto.TotalPrice = dto.ProductPrice * float64(item.Quantity)
	return dto
}

type CartDTO struct {
	UserID      uint          `json:"user_id"`
	Items       []CartItemDTO `json:"items"`
	TotalAmount float64       `json:"total_amount"`
}

type OrderItemDTO struct {
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
	TotalPrice   float64 `json:"total_price"`
}

type OrderDTO struct {
	ID          uint           `json:"id"`
	UserID      uint           `json:"user_id"`
	TotalAmount float64        `json:"total_amount"`
	OrderDate   time.Time      `json:"order_date"`
	Items       []OrderItemDTO `json:"items"`
}

func OrderToDTO(o *models.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, OrderItemToDTO(&o.Items[i]))
	}
	return OrderDTO{
		ID:          o.ID,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount,
		OrderDate:   o.OrderDate,
		Items:       items,
	}
}

func OrderItemToDTO(item *models.OrderItem) OrderItemDTO {
	dto := OrderItemDTO{
		ProductID:    item.ProductID,
		ProductName:  "Unknown Product",
		ProductPrice: item.Price,
		Quantity:     item.Quantity,
		TotalPrice:   item.Price * float64(item.Quantity),
	}
	if item.Product != nil {
		dto.ProductName = item.Product.Name
	}
	return dto
}
