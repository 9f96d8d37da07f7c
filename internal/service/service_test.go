package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/hash"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/repo"
)

type testEnv struct {
	DB      *gorm.DB
	Repo    *repo.GormRepo
	Auth    *AuthService
	Catalog *CatalogService
	Cart    *CartService
	Order   *OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.RefreshToken{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	r := &repo.GormRepo{DB: db}
	return &testEnv{
		DB:      db,
		Repo:    r,
		Auth:    &AuthService{Repo: r, JWTSecret: []byte("test-jwt-secret"), RefreshSecret: []byte("test-refresh-secret")},
		Catalog: &CatalogService{Repo: r},
		Cart:    &CartService{Repo: r},
		Order:   &OrderService{Repo: r},
	}
}

func (env *testEnv) createUser(t *testing.T, email, role string) *models.User {
	t.Helper()

	pwHash, err := hash.HashPassword("password")
	require.NoError(t, err)

	user := models.User{Email: email, PasswordHash: pwHash, Role: role}
	require.NoError(t, env.DB.Create(&user).Error)
	return &user
}

func (env *testEnv) createProduct(t *testing.T, sellerID uint, name string, price float64) *models.Product {
	t.Helper()

	product := models.Product{
		Name:        name,
		Price:       price,
		Description: "test description",
		SellerID:    sellerID,
	}
	require.NoError(t, env.DB.Create(&product).Error)
	return &product
}

func ctx() context.Context { return context.Background() }
