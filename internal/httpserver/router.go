package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	authmw "github.com/Skotchmaster/marketplace/internal/middleware/auth"
	"github.com/Skotchmaster/marketplace/internal/models"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	JWTSecret      []byte
	CORSOrigins    []string
}

func Register(e *echo.Echo, d *Deps) {
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     d.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           3600,
	}))
	// Identity is an optional annotation: a bad token never rejects a
	// request here, the per-group guards below do.
	e.Use(authmw.BearerAuth(d.JWTSecret))

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/logout", d.AuthHandler.Logout)
	auth.POST("/refresh", d.AuthHandler.Refresh)

	products := api.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)

	seller := api.Group("/products", authmw.RequireLogin, authmw.RequireRole(models.RoleSeller))
	seller.POST("/add", d.ProductHandler.CreateProduct)
	seller.PUT("/:id", d.ProductHandler.UpdateProduct)
	seller.DELETE("/:id", d.ProductHandler.DeleteProduct)
	seller.GET("/my-products", d.ProductHandler.MyProducts)

	cart := api.Group("/cart", authmw.RequireLogin)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/add", d.CartHandler.AddToCart)
	cart.PUT("/update/:cartItemId", d.CartHandler.UpdateItem)
	cart.DELETE("/remove/:cartItemId", d.CartHandler.RemoveItem)
	cart.DELETE("/clear", d.CartHandler.ClearCart)

	orders := api.Group("/orders", authmw.RequireLogin)
	orders.POST("/place", d.OrderHandler.PlaceOrder)
	orders.GET("", d.OrderHandler.MyOrders)
	orders.GET("/all", d.OrderHandler.AllOrders, authmw.RequireRole(models.RoleSeller))
	orders.GET("/:orderId", d.OrderHandler.GetOrder)
}
