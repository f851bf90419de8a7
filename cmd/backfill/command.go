package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	analyticsPg "session-analytics-service/internal/analytics/adapters/postgres"
	"session-analytics-service/internal/analytics/core/engine"
	"session-analytics-service/internal/analytics/core/usecase"
	"session-analytics-service/internal/platform/logger"
	"session-analytics-service/internal/platform/postgres"
	"session-analytics-service/pkg/config"
)

type backfillRunner interface {
	Execute(ctx context.Context, limit int) ([]usecase.BackfillItemResult, error)
}

// builder wires a runner and returns a cleanup func. The second return is
// the configured default limit.
type builder func(ctx context.Context) (backfillRunner, int, func(), error)

func newRootCommand(build builder) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Score user sentiment and store snapshots",
		Long: `Scores every user without a recent sentiment snapshot and stores the
result. Users analyzed within the recent window are skipped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			runner, defaultLimit, cleanup, err := build(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !cmd.Flags().Changed("limit") {
				limit = defaultLimit
			}
			return runBackfill(ctx, cmd, runner, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", usecase.DefaultBackfillLimit, "Maximum number of users to process")

	return cmd
}

func runBackfill(ctx context.Context, cmd *cobra.Command, runner backfillRunner, limit int) error {
	out := cmd.OutOrStdout()
	start := time.Now()

	results, err := runner.Execute(ctx, limit)
	if results != nil {
		sum := usecase.Summarize(results)
		fmt.Fprintf(out, "Backfill complete in %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Fprintf(out, "Total processed: %d\n", sum.TotalProcessed)
		fmt.Fprintf(out, "Success: %d\n", sum.SuccessCount)
		fmt.Fprintf(out, "Skipped: %d\n", sum.SkippedCount)
		fmt.Fprintf(out, "Failed: %d\n", sum.FailureCount)

		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(out, "  %s: %v\n", r.UserID, r.Err)
			}
		}
	}
	if err != nil {
		return fmt.Errorf("backfill failed: %w", err)
	}
	return nil
}

func buildBackfill(ctx context.Context) (backfillRunner, int, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, 0, nil, err
	}

	logger.Init(cfg.App.ServiceName+"-backfill", cfg.App.Env, cfg.App.LogLevel)

	db, err := postgres.Open(ctx, &cfg.Database)
	if err != nil {
		return nil, 0, nil, err
	}

	sqlDB := analyticsPg.NewSQLDB(db)

	scoring := engine.DefaultScoringConfig()
	scoring.RapidClickWindow = cfg.Sentiment.RapidClickWindow()
	scoring.LongPauseWindow = cfg.Sentiment.PauseWindow()
	scoring.LabelThreshold = cfg.Sentiment.LabelThreshold

	uc := usecase.NewSentimentBackfillUseCase(
		analyticsPg.NewEventStore(sqlDB),
		analyticsPg.NewSentimentStore(sqlDB),
		engine.NewScorer(scoring),
		cfg.Sentiment.RecentWindow(),
		logger.Component("sentiment_backfill"),
	)

	return uc, cfg.Sentiment.BackfillLimit, func() { db.Close() }, nil
}
