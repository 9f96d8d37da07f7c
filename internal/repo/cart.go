package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/models"
)

// CartItemsWithProducts is the eager variant used for projections: product
// rows are joined so the DTO mapping never triggers extra reads.
func (r *GormRepo) CartItemsWithProducts(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).Preload("Product").Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CartItemByID(ctx context.Context, id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// AddCartItem merges quantity into the (user, product) row or inserts a new
// one. The merge is an atomic in-database increment, so two concurrent adds
// for the same product cannot lose an update.
func (r *GormRepo) AddCartItem(ctx context.Context, userID, productID uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			item = models.CartItem{
				UserID:    userID,
				ProductID: productID,
				Quantity:  quantity,
			}
			return tx.Create(&item).Error
		}
		return tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SetCartItemQuantity overwrites the quantity. A target of zero or less
// deletes the row instead; the returned item is nil in that case.
func (r *GormRepo) SetCartItemQuantity(ctx context.Context, item *models.CartItem, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		if err := r.DB.WithContext(ctx).Delete(&models.CartItem{}, item.ID).Error; err != nil {
			return nil, err
		}
		return nil, nil
	}
	item.Quantity = quantity
	if err := r.DB.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *GormRepo) DeleteCartItem(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.CartItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ClearCart(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
