package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/transport"
)

func strPtr(s string) *string { return &s }

func TestAddProduct(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller@example.com", models.RoleSeller)

	dto, err := env.Catalog.AddProduct(ctx(), seller.Email, transport.ProductRequest{
		Name:        "Keyboard",
		Price:       49.90,
		Description: strPtr("mechanical"),
		ImageURL:    strPtr("https://img.example.com/kb.png"),
	})
	require.NoError(t, err)
	require.Equal(t, "Keyboard", dto.Name)
	require.Equal(t, seller.ID, dto.SellerID)
	require.Equal(t, "mechanical", dto.Description)
}

func TestAddProductRequiresSellerRole(t *testing.T) {
	env := newTestEnv(t)
	buyer := env.createUser(t, "buyer@example.com", models.RoleBuyer)

	_, err := env.Catalog.AddProduct(ctx(), buyer.Email, transport.ProductRequest{Name: "X", Price: 1})
	require.ErrorIs(t, err, ErrNotSeller)

	_, err = env.Catalog.AddProduct(ctx(), "ghost@example.com", transport.ProductRequest{Name: "X", Price: 1})
	require.ErrorIs(t, err, ErrSellerNotFound)
}

func TestUpdateProductPartialFields(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller@example.com", models.RoleSeller)
	product := env.createProduct(t, seller.ID, "Mouse", 10)
	product.ImageURL = "old.png"
	require.NoError(t, env.DB.Save(product).Error)

	// Name and price always overwritten; description/image only when sent.
	dto, err := env.Catalog.UpdateProduct(ctx(), product.ID, seller.Email, transport.ProductRequest{
		Name:  "Mouse v2",
		Price: 12,
	})
	require.NoError(t, err)
	require.Equal(t, "Mouse v2", dto.Name)
	require.Equal(t, 12.0, dto.Price)
	require.Equal(t, "test description", dto.Description)
	require.Equal(t, "old.png", dto.ImageURL)

	dto, err = env.Catalog.UpdateProduct(ctx(), product.ID, seller.Email, transport.ProductRequest{
		Name:        "Mouse v2",
		Price:       12,
		Description: strPtr("wireless"),
	})
	require.NoError(t, err)
	require.Equal(t, "wireless", dto.Description)
	require.Equal(t, "old.png", dto.ImageURL)
}

func TestUpdateProductOwnership(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller@example.com", models.RoleSeller)
	other := env.createUser(t, "other@example.com", models.RoleSeller)
	product := env.createProduct(t, seller.ID, "Mouse", 10)

	_, err := env.Catalog.UpdateProduct(ctx(), product.ID, other.Email, transport.ProductRequest{Name: "X", Price: 1})
	require.ErrorIs(t, err, ErrNotOwner)

	_, err = env.Catalog.UpdateProduct(ctx(), 9999, seller.Email, transport.ProductRequest{Name: "X", Price: 1})
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller@example.com", models.RoleSeller)
	product := env.createProduct(t, seller.ID, "Mouse", 10)

	require.NoError(t, env.Catalog.DeleteProduct(ctx(), product.ID, seller.Email))

	_, err := env.Catalog.Product(ctx(), product.ID)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProductWithOrdersConflicts(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller@example.com", models.RoleSeller)
	buyer := env.createUser(t, "buyer@example.com", models.RoleBuyer)
	product := env.createProduct(t, seller.ID, "Mouse", 10)

	_, err := env.Cart.AddItem(ctx(), buyer.Email, product.ID, 1)
	require.NoError(t, err)
	_, err = env.Order.PlaceOrder(ctx(), buyer.Email)
	require.NoError(t, err)

	err = env.Catalog.DeleteProduct(ctx(), product.ID, seller.Email)
	require.ErrorIs(t, err, ErrProductOrdered)
	require.Contains(t, err.Error(), "1 order(s)")

	// The product must still be there.
	_, err = env.Catalog.Product(ctx(), product.ID)
	require.NoError(t, err)
}

func TestDeleteProductForbiddenForNonOwner(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller@example.com", models.RoleSeller)
	other := env.createUser(t, "other@example.com", models.RoleSeller)
	product := env.createProduct(t, seller.ID, "Mouse", 10)

	err := env.Catalog.DeleteProduct(ctx(), product.ID, other.Email)
	require.ErrorIs(t, err, ErrNotOwner)
}

func TestProductsBySellerWithOrderCount(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller@example.com", models.RoleSeller)
	buyer := env.createUser(t, "buyer@example.com", models.RoleBuyer)
	ordered := env.createProduct(t, seller.ID, "Ordered", 5)
	env.createProduct(t, seller.ID, "Idle", 7)

	_, err := env.Cart.AddItem(ctx(), buyer.Email, ordered.ID, 2)
	require.NoError(t, err)
	_, err = env.Order.PlaceOrder(ctx(), buyer.Email)
	require.NoError(t, err)

	_, err = env.Cart.AddItem(ctx(), buyer.Email, ordered.ID, 1)
	require.NoError(t, err)
	_, err = env.Order.PlaceOrder(ctx(), buyer.Email)
	require.NoError(t, err)

	dtos, err := env.Catalog.ProductsBySeller(ctx(), seller.Email)
	require.NoError(t, err)
	require.Len(t, dtos, 2)

	byName := map[string]int64{}
	for _, d := range dtos {
		byName[d.Name] = d.OrderCount
	}
	require.EqualValues(t, 2, byName["Ordered"])
	require.EqualValues(t, 0, byName["Idle"])

	_, err = env.Catalog.ProductsBySeller(ctx(), "ghost@example.com")
	require.ErrorIs(t, err, ErrSellerNotFound)
}

func TestListAllProducts(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller@example.com", models.RoleSeller)
	env.createProduct(t, seller.ID, "A", 1)
	env.createProduct(t, seller.ID, "B", 2)

	dtos, err := env.Catalog.Products(ctx())
	require.NoError(t, err)
	require.Len(t, dtos, 2)
}
