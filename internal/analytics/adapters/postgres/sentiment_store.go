package postgres

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/ports"
	"session-analytics-service/pkg/apperrors"
)

type SentimentStore struct {
	db DB
}

func NewSentimentStore(db DB) *SentimentStore {
	return &SentimentStore{db: db}
}

var _ ports.SentimentStorePort = (*SentimentStore)(nil)

func (s *SentimentStore) SaveSentiment(ctx context.Context, r *domain.SentimentRecord) error {
	patterns := r.Patterns
	if patterns == nil {
		patterns = []string{}
	}

	query, args, err := dialect.Insert(sentimentTable).
		Rows(goqu.Record{
			"id":              r.ID,
			"user_id":         r.UserID,
			"page":            r.Page,
			"sentiment_score": r.Score,
			"sentiment_label": string(r.Label),
			"confidence":      r.Confidence,
			"patterns":        pq.Array(patterns),
			"analyzed_at":     r.AnalyzedAt.UTC(),
		}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("build save sentiment", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewStoreError("save sentiment", err)
	}
	return nil
}

func (s *SentimentStore) HasRecentSentiment(ctx context.Context, userID string, since time.Time) (bool, error) {
	query, args, err := dialect.From(sentimentTable).
		Select(goqu.L("1")).
		Where(
			goqu.C("user_id").Eq(userID),
			goqu.C("analyzed_at").Gte(since.UTC()),
		).
		Limit(1).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("build recent sentiment", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return false, apperrors.NewStoreError("recent sentiment", err)
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, apperrors.NewStoreError("recent sentiment", err)
	}
	return found, nil
}

func (s *SentimentStore) LatestSentiment(ctx context.Context, userID string) (*domain.SentimentRecord, error) {
	query, args, err := dialect.From(sentimentTable).
		Select("id", "user_id", "page", "sentiment_score", "sentiment_label", "confidence", "patterns", "analyzed_at").
		Where(goqu.C("user_id").Eq(userID)).
		Order(goqu.C("analyzed_at").Desc()).
		Limit(1).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("build latest sentiment", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreError("latest sentiment", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, apperrors.NewStoreError("latest sentiment", err)
		}
		return nil, nil
	}

	var (
		rec      domain.SentimentRecord
		label    string
		patterns pq.StringArray
	)
	if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Page, &rec.Score, &label, &rec.Confidence, &patterns, &rec.AnalyzedAt); err != nil {
		return nil, apperrors.NewStoreError("scan sentiment", err)
	}
	rec.Label = domain.SentimentLabel(label)
	rec.Patterns = []string(patterns)

	return &rec, nil
}
