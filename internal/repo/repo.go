package repo

import (
	"errors"

	"gorm.io/gorm"
)

// GormRepo is the data access layer. Absence of a record is reported as
// gorm.ErrRecordNotFound; domain-specific outcomes get their own sentinels.
type GormRepo struct {
	DB *gorm.DB
}

var (
	ErrUserAlreadyExist      = errors.New("user already exist")
	ErrCartEmpty             = errors.New("cart is empty")
	ErrTokenExpiredOrRevoked = errors.New("refresh token expired or revoked")
)
