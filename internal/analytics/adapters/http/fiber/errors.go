package fiber

import (
	"errors"
	"net/http"

	"session-analytics-service/internal/analytics/core/usecase"
	"session-analytics-service/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// writeError maps usecase and adapter errors onto HTTP responses.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod),
		errors.Is(err, usecase.ErrInvalidTimeRange),
		errors.Is(err, usecase.ErrInvalidLimit),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidMinSessions),
		apperrors.IsType(err, apperrors.ErrorTypeValidation):
		return badRequest(c, err)
	case errors.Is(err, usecase.ErrSimilarityDisabled):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "service_unavailable",
			Message: err.Error(),
		})
	case apperrors.IsType(err, apperrors.ErrorTypeExternal):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "upstream_error",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusNotFound).JSON(ErrorResponse{
		Error:   "not_found",
		Message: msg,
	})
}
