package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	analytics "session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/tracking/core/domain"
	"session-analytics-service/internal/tracking/core/ports"

	"github.com/rs/zerolog"
)

var (
	ErrInvalidInteraction = errors.New("invalid interaction")
	ErrUnknownType        = errors.New("unknown interaction type")
	ErrFutureTime         = errors.New("timestamp cannot be in the future")
	ErrEmptyBatch         = errors.New("interactions list is required")
)

var knownTypes = map[analytics.InteractionType]struct{}{
	analytics.InteractionClick:      {},
	analytics.InteractionScroll:     {},
	analytics.InteractionHover:      {},
	analytics.InteractionFormFill:   {},
	analytics.InteractionBack:       {},
	analytics.InteractionFormSubmit: {},
	analytics.InteractionPurchase:   {},
}

type RecordInteractionUseCase struct {
	repo ports.InteractionRepositoryPort
	log  zerolog.Logger
	now  func() time.Time
}

func NewRecordInteractionUseCase(repo ports.InteractionRepositoryPort, log zerolog.Logger) *RecordInteractionUseCase {
	return &RecordInteractionUseCase{repo: repo, log: log, now: time.Now}
}

type RecordInteractionInput struct {
	UserID    string
	SessionID string
	Page      string
	Type      string
	Timestamp int64 // unix seconds, 0 = now
	Metadata  map[string]any
}

// Execute stores one interaction. It reports false for a duplicate.
func (uc *RecordInteractionUseCase) Execute(ctx context.Context, in RecordInteractionInput) (bool, error) {
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	if err := uc.validateInput(in); err != nil {
		return false, err
	}

	occurredAt := uc.now().UTC().Truncate(time.Second)
	if in.Timestamp != 0 {
		occurredAt = time.Unix(in.Timestamp, 0).UTC()
	}
	if in.Metadata == nil {
		in.Metadata = map[string]any{}
	}

	i := &domain.Interaction{
		UserID:     in.UserID,
		SessionID:  in.SessionID,
		Page:       in.Page,
		Type:       in.Type,
		OccurredAt: occurredAt,
		Metadata:   in.Metadata,
		DedupeKey:  buildDedupeKey(in, occurredAt),
	}

	created, err := uc.repo.InsertInteraction(ctx, i)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", in.UserID).Str("page", in.Page).Msg("storing interaction failed")
		return false, err
	}
	if !created {
		uc.log.Debug().Str("dedupe_key", i.DedupeKey).Msg("duplicate interaction ignored")
	}
	return created, nil
}

func buildDedupeKey(in RecordInteractionInput, t time.Time) string {
	// user_id + session_id + page + type + unix_timestamp
	return fmt.Sprintf("%s|%s|%s|%s|%d",
		in.UserID,
		in.SessionID,
		in.Page,
		in.Type,
		t.Unix(),
	)
}

type BulkRecordInput struct {
	Interactions []RecordInteractionInput
}

type BulkRecordResult struct {
	Created    int
	Duplicates int
}

// BulkRecord validates the whole batch before storing any of it.
func (uc *RecordInteractionUseCase) BulkRecord(ctx context.Context, in BulkRecordInput) (BulkRecordResult, error) {
	var res BulkRecordResult

	if len(in.Interactions) == 0 {
		return res, ErrEmptyBatch
	}

	for idx, it := range in.Interactions {
		it.Type = strings.ToLower(strings.TrimSpace(it.Type))
		if err := uc.validateInput(it); err != nil {
			return res, fmt.Errorf("interaction %d: %w", idx, err)
		}
	}

	for _, it := range in.Interactions {
		ok, err := uc.Execute(ctx, it)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	uc.log.Info().Int("created", res.Created).Int("duplicates", res.Duplicates).Msg("bulk interactions recorded")
	return res, nil
}

func (uc *RecordInteractionUseCase) validateInput(in RecordInteractionInput) error {
	if strings.TrimSpace(in.UserID) == "" || strings.TrimSpace(in.Page) == "" {
		return ErrInvalidInteraction
	}
	if _, ok := knownTypes[analytics.InteractionType(in.Type)]; !ok {
		return ErrUnknownType
	}
	if in.Timestamp > uc.now().Unix() {
		return ErrFutureTime
	}
	return nil
}
