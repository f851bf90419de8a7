package fiber

import (
	"context"
	"net/http"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type SentimentUseCase interface {
	AnalyzeUser(ctx context.Context, userID string) (*domain.UserSentiment, error)
	PageSentiments(ctx context.Context, in usecase.PageSentimentInput) ([]domain.PageSentiment, error)
	Trends(ctx context.Context, in usecase.SentimentTrendsInput) ([]domain.SentimentTrendPoint, error)
}

type BackfillUseCase interface {
	Execute(ctx context.Context, limit int) ([]usecase.BackfillItemResult, error)
}

type SentimentHandler struct {
	uc       SentimentUseCase
	backfill BackfillUseCase
}

func NewSentimentHandler(uc SentimentUseCase, backfill BackfillUseCase) *SentimentHandler {
	return &SentimentHandler{uc: uc, backfill: backfill}
}

// GetPageSentiments godoc
// @Summary Page sentiment
// @Description Sentiment per page, aggregated over the users who interacted with it
// @Tags Sentiment
// @Produce json
// @Param page query string false "Page filter"
// @Param start_date query string false "Window start"
// @Param end_date query string false "Window end"
// @Success 200 {array} PageSentimentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sentiment/analysis [get]
func (h *SentimentHandler) GetPageSentiments(c *fiber.Ctx) error {
	w, err := parseWindow(c)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.uc.PageSentiments(c.Context(), usecase.PageSentimentInput{
		Page:   optionalQuery(c, "page"),
		Window: w,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toPageSentimentResponses(res))
}

// GetUserSentiment godoc
// @Summary User sentiment
// @Description Overall and per-page sentiment of one user's interaction history
// @Tags Sentiment
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} UserSentimentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{user_id}/sentiment [get]
func (h *SentimentHandler) GetUserSentiment(c *fiber.Ctx) error {
	res, err := h.uc.AnalyzeUser(c.Context(), c.Params("user_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toUserSentimentResponse(res))
}

// GetSentimentTrends godoc
// @Summary Sentiment trends
// @Tags Sentiment
// @Produce json
// @Param period query string false "daily | weekly | monthly"
// @Param page query string false "Page filter"
// @Param start_date query string false "Window start"
// @Param end_date query string false "Window end"
// @Success 200 {array} SentimentTrendResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sentiment/trends [get]
func (h *SentimentHandler) GetSentimentTrends(c *fiber.Ctx) error {
	w, err := parseWindow(c)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.uc.Trends(c.Context(), usecase.SentimentTrendsInput{
		Period: domain.Period(c.Query("period", "")),
		Page:   optionalQuery(c, "page"),
		Window: w,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toSentimentTrendResponses(res))
}

// RunBackfill godoc
// @Summary Sentiment backfill
// @Description Scores users without a recent snapshot and stores the result
// @Tags Sentiment
// @Produce json
// @Param limit query int false "Maximum number of users (default 1000)"
// @Success 200 {object} BackfillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sentiment/backfill [post]
func (h *SentimentHandler) RunBackfill(c *fiber.Ctx) error {
	limit, err := intQuery(c, "limit")
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.backfill.Execute(c.Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toBackfillResponse(res))
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func Health(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(HealthResponse{Status: "healthy", Service: service})
	}
}
