package postgres

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/lib/pq"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/ports"
	"session-analytics-service/pkg/apperrors"
)

type EventStore struct {
	db DB
}

func NewEventStore(db DB) *EventStore {
	return &EventStore{db: db}
}

var _ ports.EventStorePort = (*EventStore)(nil)

var sessionColumns = []any{
	"session_id",
	"user_id",
	"start_time",
	"end_time",
	"pages_visited",
	"interaction_count",
	"device",
	"conversion_completed",
}

func sessionConditions(f ports.SessionFilter) []exp.Expression {
	var conds []exp.Expression
	if f.Device != nil {
		conds = append(conds, goqu.C("device").Eq(*f.Device))
	}
	if f.UserID != nil {
		conds = append(conds, goqu.C("user_id").Eq(*f.UserID))
	}
	if f.From != nil {
		conds = append(conds, goqu.C("start_time").Gte(f.From.UTC()))
	}
	if f.To != nil {
		conds = append(conds, goqu.C("start_time").Lte(f.To.UTC()))
	}
	return conds
}

func interactionConditions(f ports.InteractionFilter) []exp.Expression {
	var conds []exp.Expression
	if f.UserID != nil {
		conds = append(conds, goqu.C("user_id").Eq(*f.UserID))
	}
	if f.Page != nil {
		conds = append(conds, goqu.C("page").Eq(*f.Page))
	}
	if f.From != nil {
		conds = append(conds, goqu.C("occurred_at").Gte(f.From.UTC()))
	}
	if f.To != nil {
		conds = append(conds, goqu.C("occurred_at").Lte(f.To.UTC()))
	}
	return conds
}

func (s *EventStore) CountSessions(ctx context.Context, f ports.SessionFilter) (int64, error) {
	ds := dialect.From(sessionsTable).
		Select(goqu.COUNT(goqu.Star())).
		Where(sessionConditions(f)...)
	return s.count(ctx, ds, "count sessions")
}

func (s *EventStore) FindSessions(ctx context.Context, f ports.SessionFilter) ([]domain.Session, error) {
	ds := dialect.From(sessionsTable).
		Select(sessionColumns...).
		Where(sessionConditions(f)...).
		Order(goqu.C("start_time").Asc(), goqu.C("session_id").Asc())

	rows, err := s.query(ctx, ds, "find sessions")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []domain.Session{}
	for rows.Next() {
		var (
			sess   domain.Session
			end    sql.NullTime
			pages  pq.StringArray
			device sql.NullString
		)
		if err := rows.Scan(
			&sess.SessionID,
			&sess.UserID,
			&sess.StartTime,
			&end,
			&pages,
			&sess.InteractionCount,
			&device,
			&sess.ConversionCompleted,
		); err != nil {
			return nil, apperrors.NewStoreError("scan session", err)
		}
		if end.Valid {
			t := end.Time
			sess.EndTime = &t
		}
		sess.PagesVisited = []string(pages)
		sess.Device = device.String
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("find sessions", err)
	}

	return sessions, nil
}

func (s *EventStore) FindUsers(ctx context.Context, f ports.UserFilter) ([]domain.User, error) {
	ds := dialect.From(usersTable).
		Select("user_id", "registered_at", "device", "sex").
		Order(goqu.C("registered_at").Asc(), goqu.C("user_id").Asc())
	if f.Device != nil {
		ds = ds.Where(goqu.C("device").Eq(*f.Device))
	}
	if f.Limit > 0 {
		ds = ds.Limit(uint(f.Limit))
	}

	return s.scanUsers(ctx, ds, "find users")
}

func (s *EventStore) FindUser(ctx context.Context, userID string) (*domain.User, error) {
	ds := dialect.From(usersTable).
		Select("user_id", "registered_at", "device", "sex").
		Where(goqu.C("user_id").Eq(userID)).
		Limit(1)

	users, err := s.scanUsers(ctx, ds, "find user")
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (s *EventStore) FindInteractions(ctx context.Context, f ports.InteractionFilter) ([]domain.Interaction, error) {
	ds := dialect.From(interactionsTable).
		Select("user_id", "page", "interaction_type", "occurred_at", "session_id").
		Where(interactionConditions(f)...).
		Order(goqu.C("occurred_at").Asc(), goqu.C("id").Asc())

	rows, err := s.query(ctx, ds, "find interactions")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Interaction{}
	for rows.Next() {
		var (
			in      domain.Interaction
			typ     string
			session sql.NullString
		)
		if err := rows.Scan(&in.UserID, &in.Page, &typ, &in.Timestamp, &session); err != nil {
			return nil, apperrors.NewStoreError("scan interaction", err)
		}
		in.Type = domain.InteractionType(typ)
		in.SessionID = session.String
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("find interactions", err)
	}

	return out, nil
}

func (s *EventStore) CountInteractions(ctx context.Context, f ports.InteractionFilter) (int64, error) {
	ds := dialect.From(interactionsTable).
		Select(goqu.COUNT(goqu.Star())).
		Where(interactionConditions(f)...)
	return s.count(ctx, ds, "count interactions")
}

// SessionStatsByUser groups sessions of the given users in one query.
func (s *EventStore) SessionStatsByUser(ctx context.Context, userIDs []string) (map[string]domain.UserSessionStats, error) {
	stats := make(map[string]domain.UserSessionStats, len(userIDs))
	if len(userIDs) == 0 {
		return stats, nil
	}

	ds := dialect.From(sessionsTable).
		Select(
			goqu.C("user_id"),
			goqu.COUNT(goqu.Star()).As("session_count"),
			goqu.L("BOOL_OR(conversion_completed)").As("converted"),
		).
		Where(goqu.L(`"user_id" = ANY(?)`, pq.Array(userIDs))).
		GroupBy("user_id")

	rows, err := s.query(ctx, ds, "session stats")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var st domain.UserSessionStats
		if err := rows.Scan(&st.UserID, &st.SessionCount, &st.Converted); err != nil {
			return nil, apperrors.NewStoreError("scan session stats", err)
		}
		stats[st.UserID] = st
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("session stats", err)
	}

	return stats, nil
}

func (s *EventStore) scanUsers(ctx context.Context, ds *goqu.SelectDataset, op string) ([]domain.User, error) {
	rows, err := s.query(ctx, ds, op)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var (
			u           domain.User
			device, sex sql.NullString
		)
		if err := rows.Scan(&u.UserID, &u.RegisteredAt, &device, &sex); err != nil {
			return nil, apperrors.NewStoreError("scan user", err)
		}
		u.Device = device.String
		u.Sex = sex.String
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(op, err)
	}

	return users, nil
}

func (s *EventStore) query(ctx context.Context, ds *goqu.SelectDataset, op string) (RowScanner, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("build "+op, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreError(op, err)
	}
	return rows, nil
}

func (s *EventStore) count(ctx context.Context, ds *goqu.SelectDataset, op string) (int64, error) {
	rows, err := s.query(ctx, ds, op)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var n int64
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, apperrors.NewStoreError(op, err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, apperrors.NewStoreError(op, err)
	}

	return n, nil
}
