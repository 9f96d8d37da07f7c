package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Skotchmaster/marketplace/internal/middleware/auth"
	"github.com/Skotchmaster/marketplace/internal/logging"
	"github.com/Skotchmaster/marketplace/internal/mykafka"
	"github.com/Skotchmaster/marketplace/internal/service"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	email, _ := authmw.Email(c)

	order, err := h.Svc.PlaceOrder(c.Request().Context(), email)
	if err != nil {
		return httpError(err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(order.ID), map[string]any{
		"type":         "order_placed",
		"order_id":     order.ID,
		"email":        email,
		"total_amount": order.TotalAmount,
	})

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) MyOrders(c echo.Context) error {
	email, _ := authmw.Email(c)

	orders, err := h.Svc.OrdersByUser(c.Request().Context(), email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	email, _ := authmw.Email(c)

	orderID, err := parseUintParam(c, "orderId")
	if err != nil {
		l.Warn("get_order_failed", "status", 400, "reason", "invalid orderId", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid orderId")
	}

	order, err := h.Svc.OrderByID(ctx, email, orderID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) AllOrders(c echo.Context) error {
	orders, err := h.Svc.AllOrders(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}
