package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MounTainVSCO/oceans-api/internal/domain"
)

// httpError maps the domain error taxonomy onto HTTP status codes. Anything
// unrecognized falls through to echo's 500 handling.
func httpError(err error) error {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]interface{}{
			"error":      "validation failed",
			"violations": validationErr.Violations,
		})
	}

	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		return echo.NewHTTPError(http.StatusConflict, conflictErr.Error())
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}

	return err
}
