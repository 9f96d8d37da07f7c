package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/transport"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be more than zero")
	ErrCartItemNotFound = errors.New("cart item not found")
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) GetCart(ctx context.Context, userEmail string) (*transport.CartDTO, error) {
	user, err := s.Repo.UserByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	items, err := s.Repo.CartItemsWithProducts(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	cart := transport.CartDTO{
		UserID: user.ID,
		Items:  make([]transport.CartItemDTO, 0, len(items)),
	}
	for i := range items {
		dto := transport.CartItemToDTO(&items[i])
		cart.TotalAmount += dto.TotalPrice
		cart.Items = append(cart.Items, dto)
	}
	return &cart, nil
}

// AddItem merges into the existing (user, product) row or inserts a new one.
func (s *CartService) AddItem(ctx context.Context, userEmail string, productID uint, quantity int) (*transport.CartItemDTO, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	user, err := s.Repo.UserByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	product, err := s.Repo.ProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	item, err := s.Repo.AddCartItem(ctx, user.ID, product.ID, quantity)
	if err != nil {
		return nil, err
	}
	item.Product = product

	dto := transport.CartItemToDTO(item)
	return &dto, nil
}

// UpdateItem overwrites the quantity. A target of zero or less removes the
// row; the nil DTO result means "item removed", not an error.
func (s *CartService) UpdateItem(ctx context.Context, userEmail string, cartItemID uint, quantity int) (*transport.CartItemDTO, error) {
	user, err := s.Repo.UserByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	item, err := s.Repo.CartItemByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	if item.UserID != user.ID {
		return nil, ErrNotOwner
	}

	updated, err := s.Repo.SetCartItemQuantity(ctx, item, quantity)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}

	product, err := s.Repo.ProductByID(ctx, updated.ProductID)
	if err == nil {
		updated.Product = product
	}

	dto := transport.CartItemToDTO(updated)
	return &dto, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userEmail string, cartItemID uint) error {
	user, err := s.Repo.UserByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	item, err := s.Repo.CartItemByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}
		return err
	}
	if item.UserID != user.ID {
		return ErrNotOwner
	}

	return s.Repo.DeleteCartItem(ctx, item.ID)
}

func (s *CartService) ClearCart(ctx context.Context, userEmail string) error {
	user, err := s.Repo.UserByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.Repo.ClearCart(ctx, user.ID)
}
