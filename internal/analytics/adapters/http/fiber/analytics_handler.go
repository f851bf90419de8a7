package fiber

import (
	"context"
	"net/http"
	"time"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// DefaultDashboardWindow is used when the dashboard is requested without dates.
const DefaultDashboardWindow = 30 * 24 * time.Hour

// DashboardWindowAlign is the granularity of the default window end.
const DashboardWindowAlign = time.Minute

type FunnelUseCase interface {
	Execute(ctx context.Context, in usecase.FunnelInput) ([]domain.FunnelAnalysisResult, error)
}

type DropoffUseCase interface {
	Execute(ctx context.Context, in usecase.DropoffInput) ([]domain.DropoffPoint, error)
}

type TrendsUseCase interface {
	Execute(ctx context.Context, in usecase.TrendsInput) ([]domain.TrendPoint, error)
}

type CohortUseCase interface {
	Execute(ctx context.Context, in usecase.CohortInput) ([]domain.CohortResult, error)
}

type JourneyUseCase interface {
	Execute(ctx context.Context, in usecase.JourneyInput) ([]domain.JourneyPattern, error)
}

type DashboardUseCase interface {
	Execute(ctx context.Context, in usecase.DashboardInput) (*domain.DashboardMetrics, error)
}

// AnalyticsUseCases bundles the aggregate analytics the handler serves.
type AnalyticsUseCases struct {
	Funnel    FunnelUseCase
	Dropoff   DropoffUseCase
	Trends    TrendsUseCase
	Cohort    CohortUseCase
	Journey   JourneyUseCase
	Dashboard DashboardUseCase
}

type AnalyticsHandler struct {
	uc  AnalyticsUseCases
	now func() time.Time
}

func NewAnalyticsHandler(uc AnalyticsUseCases) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, now: time.Now}
}

// GetDashboard godoc
// @Summary Dashboard metrics
// @Description Returns the composed dashboard summary. Defaults to the last 30 days.
// @Tags Dashboard
// @Produce json
// @Param start_date query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/metrics [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	w, err := parseWindow(c)
	if err != nil {
		return badRequest(c, err)
	}
	if w.To == nil {
		now := h.now().UTC().Truncate(DashboardWindowAlign)
		w.To = &now
	}
	if w.From == nil {
		from := w.To.Add(-DefaultDashboardWindow)
		w.From = &from
	}

	res, err := h.uc.Dashboard.Execute(c.Context(), usecase.DashboardInput{Window: w})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(res))
}

// GetFunnel godoc
// @Summary Funnel analysis
// @Description Per-step conversion for the booking funnel, one result per device unless device_type is set
// @Tags Funnel
// @Produce json
// @Param start_date query string false "Window start"
// @Param end_date query string false "Window end"
// @Param device_type query string false "Device filter"
// @Success 200 {array} FunnelAnalysisResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /funnel/analysis [get]
func (h *AnalyticsHandler) GetFunnel(c *fiber.Ctx) error {
	w, err := parseWindow(c)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.uc.Funnel.Execute(c.Context(), usecase.FunnelInput{
		Device: optionalQuery(c, "device_type"),
		Window: w,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toFunnelResponses(res))
}

// GetDropoffs godoc
// @Summary Drop-off points
// @Description Consecutive funnel step pairs ordered by drop-off rate
// @Tags Funnel
// @Produce json
// @Param device_type query string false "Device filter"
// @Param start_date query string false "Window start"
// @Param end_date query string false "Window end"
// @Param limit query int false "Maximum number of points (default 10)"
// @Success 200 {array} DropoffPointResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /funnel/dropoff [get]
func (h *AnalyticsHandler) GetDropoffs(c *fiber.Ctx) error {
	w, err := parseWindow(c)
	if err != nil {
		return badRequest(c, err)
	}
	limit, err := intQuery(c, "limit")
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.uc.Dropoff.Execute(c.Context(), usecase.DropoffInput{
		Device: optionalQuery(c, "device_type"),
		Window: w,
		Limit:  limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDropoffResponses(res))
}

// GetConversionTrends godoc
// @Summary Conversion trends
// @Tags Analytics
// @Produce json
// @Param period query string false "daily | weekly | monthly"
// @Param device_type query string false "Device filter"
// @Param start_date query string false "Window start"
// @Param end_date query string false "Window end"
// @Success 200 {array} TrendPointResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/conversion-trends [get]
func (h *AnalyticsHandler) GetConversionTrends(c *fiber.Ctx) error {
	w, err := parseWindow(c)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.uc.Trends.Execute(c.Context(), usecase.TrendsInput{
		Period: domain.Period(c.Query("period", "")),
		Device: optionalQuery(c, "device_type"),
		Window: w,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toTrendResponses(res))
}

// GetCohorts godoc
// @Summary Cohort retention
// @Tags Analytics
// @Produce json
// @Param cohort_type query string false "daily | weekly | monthly (default weekly)"
// @Param device_type query string false "Device filter"
// @Success 200 {array} CohortResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/cohort [get]
func (h *AnalyticsHandler) GetCohorts(c *fiber.Ctx) error {
	res, err := h.uc.Cohort.Execute(c.Context(), usecase.CohortInput{
		Period: domain.Period(c.Query("cohort_type", "")),
		Device: optionalQuery(c, "device_type"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toCohortResponses(res))
}

// GetJourneys godoc
// @Summary Journey patterns
// @Description Most common page sequences among users with at least min_sessions sessions
// @Tags Analytics
// @Produce json
// @Param device_type query string false "Device filter"
// @Param min_sessions query int false "Minimum sessions per user (default 2)"
// @Param start_date query string false "Window start"
// @Param end_date query string false "Window end"
// @Success 200 {array} JourneyPatternResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/user-journey [get]
func (h *AnalyticsHandler) GetJourneys(c *fiber.Ctx) error {
	w, err := parseWindow(c)
	if err != nil {
		return badRequest(c, err)
	}
	minSessions, err := intQuery(c, "min_sessions")
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.uc.Journey.Execute(c.Context(), usecase.JourneyInput{
		Device:      optionalQuery(c, "device_type"),
		Window:      w,
		MinSessions: minSessions,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toJourneyResponses(res))
}
