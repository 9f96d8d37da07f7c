package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/logging"
	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/transport"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	Repo *repo.GormRepo
}

// PlaceOrder snapshots the user's cart into an immutable order. Prices are
// captured at this instant; later product edits never change the order.
func (s *OrderService) PlaceOrder(ctx context.Context, userEmail string) (*transport.OrderDTO, error) {
	l := logging.FromContext(ctx).With("svc", "order.place")

	user, err := s.Repo.UserByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	order, err := s.Repo.PlaceOrder(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repo.ErrCartEmpty) {
			l.Warn("place_order_failed", "status", 400, "reason", "cart is empty")
			return nil, err
		}
		l.Error("place_order_failed", "status", 500, "error", err)
		return nil, err
	}

	placed, err := s.Repo.OrderByIDWithUser(ctx, order.ID)
	if err != nil {
		// The order exists; fall back to the in-memory copy for the response.
		l.Warn("place_order_reload_failed", "order_id", order.ID, "error", err)
		placed = order
	}

	dto := transport.OrderToDTO(placed)
	return &dto, nil
}

func (s *OrderService) OrdersByUser(ctx context.Context, userEmail string) ([]transport.OrderDTO, error) {
	user, err := s.Repo.UserByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	orders, err := s.Repo.OrdersByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	dtos := make([]transport.OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, transport.OrderToDTO(&orders[i]))
	}
	return dtos, nil
}

func (s *OrderService) OrderByID(ctx context.Context, userEmail string, orderID uint) (*transport.OrderDTO, error) {
	order, err := s.Repo.OrderByIDWithUser(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.User == nil || order.User.Email != userEmail {
		return nil, ErrNotOwner
	}

	dto := transport.OrderToDTO(order)
	return &dto, nil
}

// AllOrders trusts the caller: the SELLER role check happens at the HTTP
// boundary.
func (s *OrderService) AllOrders(ctx context.Context) ([]transport.OrderDTO, error) {
	orders, err := s.Repo.AllOrders(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]transport.OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, transport.OrderToDTO(&orders[i]))
	}
	return dtos, nil
}
