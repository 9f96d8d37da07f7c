package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/logging"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/transport"
)

var (
	ErrNotSeller       = errors.New("only sellers can manage products")
	ErrNotOwner        = errors.New("not the owner")
	ErrProductOrdered  = errors.New("product has orders")
	ErrSellerNotFound  = errors.New("seller not found")
	ErrProductNotFound = errors.New("product not found")
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) Products(ctx context.Context) ([]transport.ProductDTO, error) {
	items, err := s.Repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]transport.ProductDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, transport.ProductToDTO(&items[i]))
	}
	return dtos, nil
}

func (s *CatalogService) Product(ctx context.Context, id uint) (*transport.ProductDTO, error) {
	p, err := s.Repo.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	dto := transport.ProductToDTO(p)
	return &dto, nil
}

func (s *CatalogService) AddProduct(ctx context.Context, sellerEmail string, req transport.ProductRequest) (*transport.ProductDTO, error) {
	seller, err := s.Repo.UserByEmail(ctx, sellerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSellerNotFound
		}
		return nil, err
	}
	if seller.Role != models.RoleSeller {
		return nil, ErrNotSeller
	}

	product := models.Product{
		Name:     req.Name,
		Price:    req.Price,
		SellerID: seller.ID,
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		return nil, err
	}

	dto := transport.ProductToDTO(&product)
	return &dto, nil
}

// UpdateProduct overwrites name and price; description and image only when
// the request carries them.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, sellerEmail string, req transport.ProductRequest) (*transport.ProductDTO, error) {
	product, err := s.Repo.ProductByIDWithSeller(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if product.Seller == nil || product.Seller.Email != sellerEmail {
		return nil, ErrNotOwner
	}

	product.Name = req.Name
	product.Price = req.Price
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	dto := transport.ProductToDTO(product)
	return &dto, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint, sellerEmail string) error {
	product, err := s.Repo.ProductByIDWithSeller(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	if product.Seller == nil || product.Seller.Email != sellerEmail {
		return ErrNotOwner
	}

	count, err := s.Repo.CountOrdersByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: cannot delete product %q: it has %d order(s)", ErrProductOrdered, product.Name, count)
	}

	return s.Repo.DeleteProduct(ctx, id)
}

// ProductsBySeller lists the seller's products annotated with an order-count
// aggregate. The aggregate is best-effort metadata: a failing count degrades
// to zero instead of failing the listing.
func (s *CatalogService) ProductsBySeller(ctx context.Context, sellerEmail string) ([]transport.ProductDTO, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.products_by_seller")

	seller, err := s.Repo.UserByEmail(ctx, sellerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSellerNotFound
		}
		return nil, err
	}

	items, err := s.Repo.ProductsBySeller(ctx, seller.ID)
	if err != nil {
		return nil, err
	}

	dtos := make([]transport.ProductDTO, 0, len(items))
	for i := range items {
		dto := transport.ProductToDTO(&items[i])
		count, err := s.Repo.CountOrdersByProduct(ctx, items[i].ID)
		if err != nil {
			l.Warn("order_count_failed", "product_id", items[i].ID, "error", err)
			count = 0
		}
		dto.OrderCount = count
		dtos = append(dtos, dto)
	}
	return dtos, nil
}
