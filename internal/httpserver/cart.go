package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Skotchmaster/marketplace/internal/middleware/auth"
	"github.com/Skotchmaster/marketplace/internal/logging"
	"github.com/Skotchmaster/marketplace/internal/mykafka"
	"github.com/Skotchmaster/marketplace/internal/service"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *mykafka.Producer
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	email, _ := authmw.Email(c)

	cart, err := h.Svc.GetCart(c.Request().Context(), email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	email, _ := authmw.Email(c)

	productID, err := parseIntQuery(c, "productId")
	if err != nil || productID <= 0 {
		l.Warn("add_to_cart_failed", "status", 400, "reason", "invalid productId")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid productId")
	}
	quantity, err := parseIntQuery(c, "quantity")
	if err != nil || quantity <= 0 {
		l.Warn("add_to_cart_failed", "status", 400, "reason", "quantity must be more than zero")
		return echo.NewHTTPError(http.StatusBadRequest, "Quantity must be more than zero")
	}

	item, err := h.Svc.AddItem(ctx, email, uint(productID), quantity)
	if err != nil {
		return httpError(err)
	}

	publish(c, h.Producer, "cart_events", email, map[string]any{
		"type":       "cart_item_added",
		"email":      email,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})

	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	email, _ := authmw.Email(c)

	itemID, err := parseUintParam(c, "cartItemId")
	if err != nil {
		l.Warn("update_cart_item_failed", "status", 400, "reason", "invalid cartItemId", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cartItemId")
	}
	quantity, err := parseIntQuery(c, "quantity")
	if err != nil {
		l.Warn("update_cart_item_failed", "status", 400, "reason", "invalid quantity")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	item, err := h.Svc.UpdateItem(ctx, email, itemID, quantity)
	if err != nil {
		return httpError(err)
	}

	publish(c, h.Producer, "cart_events", email, map[string]any{
		"type":         "cart_item_updated",
		"email":        email,
		"cart_item_id": itemID,
		"quantity":     quantity,
	})

	// A nil item means the row was removed because the quantity dropped to
	// zero; the client gets an explicit null.
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	email, _ := authmw.Email(c)

	itemID, err := parseUintParam(c, "cartItemId")
	if err != nil {
		l.Warn("remove_cart_item_failed", "status", 400, "reason", "invalid cartItemId", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cartItemId")
	}

	if err := h.Svc.RemoveItem(ctx, email, itemID); err != nil {
		return httpError(err)
	}

	publish(c, h.Producer, "cart_events", email, map[string]any{
		"type":         "cart_item_removed",
		"email":        email,
		"cart_item_id": itemID,
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Item removed from cart"})
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	email, _ := authmw.Email(c)

	if err := h.Svc.ClearCart(c.Request().Context(), email); err != nil {
		return httpError(err)
	}

	publish(c, h.Producer, "cart_events", email, map[string]any{
		"type":  "cart_cleared",
		"email": email,
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Cart cleared"})
}
