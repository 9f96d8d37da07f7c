package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/service"
)

// httpError maps a domain error to the status code the boundary owes the
// client. Unrecognized errors are treated as transient infrastructure
// failures.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, repo.ErrUserAlreadyExist):
		return echo.NewHTTPError(http.StatusBadRequest, "Email already exists")
	case errors.Is(err, service.ErrInvalidRole):
		return echo.NewHTTPError(http.StatusBadRequest, "unknown role")
	case errors.Is(err, service.ErrInvalidQuantity):
		return echo.NewHTTPError(http.StatusBadRequest, "Quantity must be more than zero")
	case errors.Is(err, repo.ErrCartEmpty):
		return echo.NewHTTPError(http.StatusBadRequest, "Cart is empty")
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrInvalidToken):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid refresh token")
	case errors.Is(err, repo.ErrTokenExpiredOrRevoked):
		return echo.NewHTTPError(http.StatusUnauthorized, "Refresh token expired or revoked")
	case errors.Is(err, service.ErrNotSeller),
		errors.Is(err, service.ErrNotOwner):
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrProductOrdered):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSellerNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
