package usecase_test

import (
	"context"
	"errors"
	"testing"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/ports"
	"session-analytics-service/internal/analytics/core/usecase"
)

// ------------------------------------------------------------
// USER BEHAVIOR
// ------------------------------------------------------------

func TestUserBehavior_Success(t *testing.T) {
	store := &fakeEventStore{
		FindUserFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{UserID: userID}, nil
		},
		CountSessionsFn: func(ctx context.Context, f ports.SessionFilter) (int64, error) {
			if f.UserID == nil || *f.UserID != "u1" {
				t.Fatalf("expected user filter")
			}
			return 2, nil
		},
		FindSessionsFn: func(ctx context.Context, f ports.SessionFilter) ([]domain.Session, error) {
			return []domain.Session{
				{UserID: "u1", PagesVisited: []string{"search_page", "home_page"}},
				{UserID: "u1", PagesVisited: []string{"home_page", "payment_page"}, ConversionCompleted: true},
			}, nil
		},
		CountInteractionsFn: func(ctx context.Context, f ports.InteractionFilter) (int64, error) {
			return 17, nil
		},
	}
	sentiments := &fakeSentimentStore{
		LatestFn: func(ctx context.Context, userID string) (*domain.SentimentRecord, error) {
			return &domain.SentimentRecord{UserID: userID, Score: -0.4}, nil
		},
	}

	b, err := usecase.NewUserBehaviorUseCase(store, sentiments, nopLog).Execute(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Device != domain.UnknownDevice || b.TotalSessions != 2 || b.TotalInteractions != 17 || !b.ConversionCompleted {
		t.Fatalf("unexpected behavior: %+v", b)
	}
	want := []string{"home_page", "payment_page", "search_page"}
	if len(b.PagesVisited) != len(want) {
		t.Fatalf("expected pages %v, got %v", want, b.PagesVisited)
	}
	for i := range want {
		if b.PagesVisited[i] != want[i] {
			t.Fatalf("expected pages %v, got %v", want, b.PagesVisited)
		}
	}
	if b.SentimentScore == nil || *b.SentimentScore != -0.4 {
		t.Fatalf("expected sentiment -0.4, got %v", b.SentimentScore)
	}
}

func TestUserBehavior_UnknownUser(t *testing.T) {
	b, err := usecase.NewUserBehaviorUseCase(&fakeEventStore{}, &fakeSentimentStore{}, nopLog).Execute(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != nil {
		t.Fatalf("expected nil, got %+v", b)
	}
}

func TestUserBehavior_NoSentimentStored(t *testing.T) {
	store := &fakeEventStore{
		FindUserFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{UserID: userID, Device: "Mobile"}, nil
		},
	}

	b, err := usecase.NewUserBehaviorUseCase(store, &fakeSentimentStore{}, nopLog).Execute(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.SentimentScore != nil || b.Device != "Mobile" || len(b.PagesVisited) != 0 {
		t.Fatalf("unexpected behavior: %+v", b)
	}
}

func TestUserBehavior_StoreError(t *testing.T) {
	storeErr := errors.New("db down")
	store := &fakeEventStore{
		FindUserFn: func(ctx context.Context, userID string) (*domain.User, error) { return nil, storeErr },
	}

	_, err := usecase.NewUserBehaviorUseCase(store, &fakeSentimentStore{}, nopLog).Execute(context.Background(), "u1")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

// ------------------------------------------------------------
// SIMILAR USERS
// ------------------------------------------------------------

func knownUserStore() *fakeEventStore {
	return &fakeEventStore{
		FindUserFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{UserID: userID}, nil
		},
	}
}

func TestSimilarUsers_PassThrough(t *testing.T) {
	sim := &fakeSimilarity{
		FindFn: func(ctx context.Context, userID string, device *string, limit int) ([]domain.SimilarUser, error) {
			if limit != usecase.DefaultSimilarLimit {
				t.Fatalf("expected default limit, got %d", limit)
			}
			if device == nil || *device != "Mobile" {
				t.Fatalf("expected device filter")
			}
			return []domain.SimilarUser{{UserID: "u9", SimilarityScore: 0.12}, {UserID: "u3", SimilarityScore: 0.5}}, nil
		},
	}

	out, err := usecase.NewSimilarUsersUseCase(knownUserStore(), sim, nopLog).Execute(context.Background(), usecase.SimilarUsersInput{
		UserID: "u1",
		Device: strPtr("Mobile"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0].UserID != "u9" || out[0].SimilarityScore != 0.12 {
		t.Fatalf("expected order and scores untouched, got %+v", out)
	}
}

func TestSimilarUsers_Validation(t *testing.T) {
	uc := usecase.NewSimilarUsersUseCase(knownUserStore(), &fakeSimilarity{}, nopLog)

	if _, err := uc.Execute(context.Background(), usecase.SimilarUsersInput{}); !errors.Is(err, usecase.ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), usecase.SimilarUsersInput{UserID: "u1", Limit: 500}); !errors.Is(err, usecase.ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
}

func TestSimilarUsers_NotConfigured(t *testing.T) {
	_, err := usecase.NewSimilarUsersUseCase(knownUserStore(), nil, nopLog).Execute(context.Background(), usecase.SimilarUsersInput{UserID: "u1"})
	if !errors.Is(err, usecase.ErrSimilarityDisabled) {
		t.Fatalf("expected ErrSimilarityDisabled, got %v", err)
	}
}

func TestSimilarUsers_UnknownUser(t *testing.T) {
	out, err := usecase.NewSimilarUsersUseCase(&fakeEventStore{}, &fakeSimilarity{}, nopLog).Execute(context.Background(), usecase.SimilarUsersInput{UserID: "ghost"})
	if err != nil || out != nil {
		t.Fatalf("expected nil, nil; got %+v, %v", out, err)
	}
}

func TestSimilarUsers_ServiceError(t *testing.T) {
	svcErr := errors.New("503")
	sim := &fakeSimilarity{
		FindFn: func(ctx context.Context, userID string, device *string, limit int) ([]domain.SimilarUser, error) {
			return nil, svcErr
		},
	}

	_, err := usecase.NewSimilarUsersUseCase(knownUserStore(), sim, nopLog).Execute(context.Background(), usecase.SimilarUsersInput{UserID: "u1"})
	if !errors.Is(err, svcErr) {
		t.Fatalf("expected service error, got %v", err)
	}
}
