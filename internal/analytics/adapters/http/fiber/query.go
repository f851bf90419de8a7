package fiber

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"session-analytics-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// parseTime accepts RFC3339 timestamps and plain dates (UTC midnight).
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, s)
}

func parseWindow(c *fiber.Ctx) (usecase.TimeWindow, error) {
	var w usecase.TimeWindow
	if s := c.Query("start_date", ""); s != "" {
		t, err := parseTime(s)
		if err != nil {
			return w, errors.New("invalid 'start_date' parameter")
		}
		w.From = &t
	}
	if s := c.Query("end_date", ""); s != "" {
		t, err := parseTime(s)
		if err != nil {
			return w, errors.New("invalid 'end_date' parameter")
		}
		w.To = &t
	}
	return w, nil
}

func optionalQuery(c *fiber.Ctx, key string) *string {
	v := c.Query(key, "")
	if v == "" {
		return nil
	}
	return &v
}

// intQuery returns 0 when the parameter is absent.
func intQuery(c *fiber.Ctx, key string) (int, error) {
	v := c.Query(key, "")
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid '%s' parameter", key)
	}
	return n, nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_request",
		Message: err.Error(),
	})
}
