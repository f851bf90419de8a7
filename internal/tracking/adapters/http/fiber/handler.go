package fiber

import (
	"context"
	"errors"
	"net/http"

	"session-analytics-service/internal/tracking/core/usecase"
	"session-analytics-service/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

type RecordInteractionUseCase interface {
	Execute(ctx context.Context, in usecase.RecordInteractionInput) (bool, error)
	BulkRecord(ctx context.Context, in usecase.BulkRecordInput) (usecase.BulkRecordResult, error)
}

type InteractionHandler struct {
	uc RecordInteractionUseCase
}

func NewInteractionHandler(uc RecordInteractionUseCase) *InteractionHandler {
	return &InteractionHandler{uc: uc}
}

// RecordInteraction godoc
// @Summary Track an interaction
// @Description Stores a single interaction. Replays of the same interaction are ignored.
// @Tags Tracking
// @Accept json
// @Produce json
// @Param request body RecordInteractionRequest true "Interaction payload"
// @Success 201 {object} RecordInteractionResponse
// @Success 200 {object} RecordInteractionResponse "Duplicate interaction"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /interactions [post]
func (h *InteractionHandler) RecordInteraction(c *fiber.Ctx) error {
	var req RecordInteractionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	created, err := h.uc.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return writeError(c, err)
	}

	if !created {
		return c.Status(http.StatusOK).JSON(RecordInteractionResponse{Status: "duplicate"})
	}
	return c.Status(http.StatusCreated).JSON(RecordInteractionResponse{Status: "created"})
}

// BulkRecordInteractions godoc
// @Summary Track interactions in bulk
// @Description Validates the whole batch, then stores each interaction
// @Tags Tracking
// @Accept json
// @Produce json
// @Param request body BulkRecordRequest true "Bulk interaction payload"
// @Success 201 {object} BulkRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /interactions/bulk [post]
func (h *InteractionHandler) BulkRecordInteractions(c *fiber.Ctx) error {
	var req BulkRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	inputs := make([]usecase.RecordInteractionInput, len(req.Interactions))
	for i, it := range req.Interactions {
		inputs[i] = toInput(it)
	}

	res, err := h.uc.BulkRecord(c.UserContext(), usecase.BulkRecordInput{Interactions: inputs})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(BulkRecordResponse{
		Created:    res.Created,
		Duplicates: res.Duplicates,
	})
}

func toInput(req RecordInteractionRequest) usecase.RecordInteractionInput {
	return usecase.RecordInteractionInput{
		UserID:    req.UserID,
		SessionID: req.SessionID,
		Page:      req.Page,
		Type:      req.InteractionType,
		Timestamp: req.Timestamp,
		Metadata:  req.Metadata,
	}
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInteraction),
		errors.Is(err, usecase.ErrUnknownType),
		errors.Is(err, usecase.ErrFutureTime),
		errors.Is(err, usecase.ErrEmptyBatch),
		apperrors.IsType(err, apperrors.ErrorTypeValidation):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_interaction",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
