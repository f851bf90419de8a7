package fiber

import (
	"context"
	"net/http"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserBehaviorUseCase interface {
	Execute(ctx context.Context, userID string) (*domain.UserBehavior, error)
}

type SimilarUsersUseCase interface {
	Execute(ctx context.Context, in usecase.SimilarUsersInput) ([]domain.SimilarUser, error)
}

type UserHandler struct {
	behavior UserBehaviorUseCase
	similar  SimilarUsersUseCase
}

func NewUserHandler(behavior UserBehaviorUseCase, similar SimilarUsersUseCase) *UserHandler {
	return &UserHandler{behavior: behavior, similar: similar}
}

// GetBehavior godoc
// @Summary User behavior profile
// @Tags Users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} UserBehaviorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{user_id}/behavior [get]
func (h *UserHandler) GetBehavior(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	res, err := h.behavior.Execute(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	if res == nil {
		return notFound(c, "user not found")
	}
	return c.Status(http.StatusOK).JSON(toBehaviorResponse(res))
}

// GetSimilar godoc
// @Summary Similar users
// @Description Nearest neighbours from the external similarity service
// @Tags Users
// @Produce json
// @Param user_id path string true "User ID"
// @Param device_type query string false "Device filter"
// @Param limit query int false "Maximum number of users (default 10)"
// @Success 200 {object} SimilarUsersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /users/similar/{user_id} [get]
func (h *UserHandler) GetSimilar(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	limit, err := intQuery(c, "limit")
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.similar.Execute(c.Context(), usecase.SimilarUsersInput{
		UserID: userID,
		Device: optionalQuery(c, "device_type"),
		Limit:  limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	if res == nil {
		return notFound(c, "user not found")
	}

	resp := SimilarUsersResponse{
		UserID:       userID,
		SimilarUsers: make([]SimilarUserResponse, 0, len(res)),
	}
	for _, u := range res {
		resp.SimilarUsers = append(resp.SimilarUsers, SimilarUserResponse{
			UserID:          u.UserID,
			SimilarityScore: u.SimilarityScore,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}
