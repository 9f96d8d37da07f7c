package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/tokens"
)

func (r *GormRepo) CreateRefreshToken(ctx context.Context, email, token string) error {
	row := models.RefreshToken{
		Token:     token,
		Email:     email,
		ExpiresAt: time.Now().Add(tokens.RefreshTTL),
		Revoked:   false,
	}
	return r.DB.WithContext(ctx).Create(&row).Error
}

func (r *GormRepo) RefreshByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var row models.RefreshToken
	if err := r.DB.WithContext(ctx).Where("token = ?", token).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// RevokeRefresh marks the stored token revoked. Revoking an already revoked
// token is not an error.
func (r *GormRepo) RevokeRefresh(ctx context.Context, token string) error {
	res := r.DB.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("token = ?", token).
		Update("revoked", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RotateRefresh overwrites the stored row in place: the old token string
// becomes unusable the moment the update lands. The guarded WHERE makes the
// read-then-overwrite race safe: of two concurrent rotations only one can
// match the old token string.
func (r *GormRepo) RotateRefresh(ctx context.Context, oldToken, newToken string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.RefreshToken{}).
			Where("token = ? AND revoked = ? AND expires_at > ?", oldToken, false, time.Now()).
			Updates(map[string]any{
				"token":      newToken,
				"expires_at": time.Now().Add(tokens.RefreshTTL),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTokenExpiredOrRevoked
		}
		return nil
	})
}
