package fiber

import (
	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/usecase"
)

type FunnelStepResponse struct {
	Step           string   `json:"step" example:"search_page"`
	TotalUsers     int      `json:"total_users" example:"120"`
	ConversionRate float64  `json:"conversion_rate" example:"48.5"`
	DropOffRate    float64  `json:"drop_off_rate" example:"51.5"`
	AvgTimeSpent   *float64 `json:"avg_time_spent"`
}

type FunnelAnalysisResponse struct {
	DeviceType            string               `json:"device_type" example:"Mobile"`
	TotalUsers            int                  `json:"total_users"`
	Steps                 []FunnelStepResponse `json:"steps"`
	OverallConversionRate float64              `json:"overall_conversion_rate"`
}

type DropoffPointResponse struct {
	FromStep       string  `json:"from_step" example:"home_page"`
	ToStep         string  `json:"to_step" example:"search_page"`
	DropoffCount   int     `json:"dropoff_count"`
	DropoffRate    float64 `json:"dropoff_rate"`
	UsersAtStep    int     `json:"users_at_step"`
	UsersContinued int     `json:"users_continued"`
}

type TrendPointResponse struct {
	Date           string  `json:"date" example:"2024-03-05"`
	Period         string  `json:"period" example:"daily"`
	TotalSessions  int     `json:"total_sessions"`
	Conversions    int     `json:"conversions"`
	UniqueUsers    int     `json:"unique_users"`
	ConversionRate float64 `json:"conversion_rate"`
}

type CohortResponse struct {
	CohortDate     string  `json:"cohort_date" example:"2024-W10"`
	CohortType     string  `json:"cohort_type" example:"weekly"`
	CohortSize     int     `json:"cohort_size"`
	RetainedUsers  int     `json:"retained_users"`
	ConvertedUsers int     `json:"converted_users"`
	RetentionRate  float64 `json:"retention_rate"`
	ConversionRate float64 `json:"conversion_rate"`
}

type JourneyPatternResponse struct {
	JourneyPattern string  `json:"journey_pattern" example:"home_page -> search_page"`
	UserCount      int     `json:"user_count"`
	Percentage     float64 `json:"percentage"`
}

type DashboardResponse struct {
	TotalUsers                int                    `json:"total_users"`
	TotalSessions             int                    `json:"total_sessions"`
	OverallConversionRate     float64                `json:"overall_conversion_rate"`
	MobileVsDesktopConversion map[string]float64     `json:"mobile_vs_desktop_conversion"`
	TopDropOffPoints          []DropoffPointResponse `json:"top_drop_off_points"`
	DailyMetrics              []TrendPointResponse   `json:"daily_metrics"`
	SentimentDistribution     map[string]int         `json:"sentiment_distribution"`
}

type UserBehaviorResponse struct {
	UserID              string   `json:"user_id"`
	Device              string   `json:"device"`
	TotalSessions       int      `json:"total_sessions"`
	TotalInteractions   int64    `json:"total_interactions"`
	PagesVisited        []string `json:"pages_visited"`
	ConversionCompleted bool     `json:"conversion_completed"`
	SentimentScore      *float64 `json:"sentiment_score"`
}

type SimilarUserResponse struct {
	UserID          string  `json:"user_id"`
	SimilarityScore float64 `json:"similarity_score"`
}

type SimilarUsersResponse struct {
	UserID       string                `json:"user_id"`
	SimilarUsers []SimilarUserResponse `json:"similar_users"`
}

type SentimentResultResponse struct {
	SentimentScore float64  `json:"sentiment_score"`
	SentimentLabel string   `json:"sentiment_label" example:"neutral"`
	Confidence     float64  `json:"confidence"`
	Patterns       []string `json:"patterns"`
}

type UserSentimentResponse struct {
	UserID string `json:"user_id"`
	SentimentResultResponse
	PageSentiments map[string]SentimentResultResponse `json:"page_sentiments"`
}

type PageSentimentResponse struct {
	Page                  string         `json:"page"`
	OverallSentiment      float64        `json:"overall_sentiment"`
	SentimentDistribution map[string]int `json:"sentiment_distribution"`
	AvgConfidence         float64        `json:"avg_confidence"`
	TotalInteractions     int            `json:"total_interactions"`
	UserCount             int            `json:"user_count"`
}

type SentimentTrendResponse struct {
	Date                  string         `json:"date"`
	Period                string         `json:"period"`
	SentimentScore        float64        `json:"sentiment_score"`
	SentimentDistribution map[string]int `json:"sentiment_distribution"`
	Confidence            float64        `json:"confidence"`
	InteractionCount      int            `json:"interaction_count"`
}

type BackfillFailureResponse struct {
	UserID string `json:"user_id"`
	Reason string `json:"reason"`
}

type BackfillResponse struct {
	TotalProcessed int                       `json:"total_processed"`
	SuccessCount   int                       `json:"success_count"`
	SkippedCount   int                       `json:"skipped_count"`
	FailureCount   int                       `json:"failure_count"`
	Failures       []BackfillFailureResponse `json:"failures"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"session-analytics-service"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message" example:"invalid period"`
}

func toFunnelResponses(in []domain.FunnelAnalysisResult) []FunnelAnalysisResponse {
	out := make([]FunnelAnalysisResponse, 0, len(in))
	for _, f := range in {
		steps := make([]FunnelStepResponse, 0, len(f.Steps))
		for _, s := range f.Steps {
			steps = append(steps, FunnelStepResponse{
				Step:           s.Step,
				TotalUsers:     s.TotalUsers,
				ConversionRate: s.ConversionRate,
				DropOffRate:    s.DropOffRate,
				AvgTimeSpent:   s.AvgTimeSpent,
			})
		}
		out = append(out, FunnelAnalysisResponse{
			DeviceType:            f.DeviceType,
			TotalUsers:            f.TotalUsers,
			Steps:                 steps,
			OverallConversionRate: f.OverallConversionRate,
		})
	}
	return out
}

func toDropoffResponses(in []domain.DropoffPoint) []DropoffPointResponse {
	out := make([]DropoffPointResponse, 0, len(in))
	for _, d := range in {
		out = append(out, DropoffPointResponse{
			FromStep:       d.FromStep,
			ToStep:         d.ToStep,
			DropoffCount:   d.DropoffCount,
			DropoffRate:    d.DropoffRate,
			UsersAtStep:    d.UsersAtStep,
			UsersContinued: d.UsersContinued,
		})
	}
	return out
}

func toTrendResponses(in []domain.TrendPoint) []TrendPointResponse {
	out := make([]TrendPointResponse, 0, len(in))
	for _, p := range in {
		out = append(out, TrendPointResponse{
			Date:           p.Date,
			Period:         string(p.Period),
			TotalSessions:  p.TotalSessions,
			Conversions:    p.Conversions,
			UniqueUsers:    p.UniqueUsers,
			ConversionRate: p.ConversionRate,
		})
	}
	return out
}

func toCohortResponses(in []domain.CohortResult) []CohortResponse {
	out := make([]CohortResponse, 0, len(in))
	for _, c := range in {
		out = append(out, CohortResponse{
			CohortDate:     c.CohortDate,
			CohortType:     string(c.CohortType),
			CohortSize:     c.CohortSize,
			RetainedUsers:  c.RetainedUsers,
			ConvertedUsers: c.ConvertedUsers,
			RetentionRate:  c.RetentionRate,
			ConversionRate: c.ConversionRate,
		})
	}
	return out
}

func toJourneyResponses(in []domain.JourneyPattern) []JourneyPatternResponse {
	out := make([]JourneyPatternResponse, 0, len(in))
	for _, j := range in {
		out = append(out, JourneyPatternResponse{
			JourneyPattern: j.JourneyPattern,
			UserCount:      j.UserCount,
			Percentage:     j.Percentage,
		})
	}
	return out
}

func labelCounts(in map[domain.SentimentLabel]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

func toDashboardResponse(m *domain.DashboardMetrics) DashboardResponse {
	byDevice := m.MobileVsDesktopConversion
	if byDevice == nil {
		byDevice = map[string]float64{}
	}
	return DashboardResponse{
		TotalUsers:                m.TotalUsers,
		TotalSessions:             m.TotalSessions,
		OverallConversionRate:     m.OverallConversionRate,
		MobileVsDesktopConversion: byDevice,
		TopDropOffPoints:          toDropoffResponses(m.TopDropOffPoints),
		DailyMetrics:              toTrendResponses(m.DailyMetrics),
		SentimentDistribution:     labelCounts(m.SentimentDistribution),
	}
}

func toBehaviorResponse(b *domain.UserBehavior) UserBehaviorResponse {
	pages := b.PagesVisited
	if pages == nil {
		pages = []string{}
	}
	return UserBehaviorResponse{
		UserID:              b.UserID,
		Device:              b.Device,
		TotalSessions:       b.TotalSessions,
		TotalInteractions:   b.TotalInteractions,
		PagesVisited:        pages,
		ConversionCompleted: b.ConversionCompleted,
		SentimentScore:      b.SentimentScore,
	}
}

func toSentimentResult(r domain.SentimentResult) SentimentResultResponse {
	patterns := r.Patterns
	if patterns == nil {
		patterns = []string{}
	}
	return SentimentResultResponse{
		SentimentScore: r.Score,
		SentimentLabel: string(r.Label),
		Confidence:     r.Confidence,
		Patterns:       patterns,
	}
}

func toUserSentimentResponse(s *domain.UserSentiment) UserSentimentResponse {
	pages := make(map[string]SentimentResultResponse, len(s.PageSentiments))
	for p, r := range s.PageSentiments {
		pages[p] = toSentimentResult(r)
	}
	return UserSentimentResponse{
		UserID:                  s.UserID,
		SentimentResultResponse: toSentimentResult(s.Overall),
		PageSentiments:          pages,
	}
}

func toPageSentimentResponses(in []domain.PageSentiment) []PageSentimentResponse {
	out := make([]PageSentimentResponse, 0, len(in))
	for _, p := range in {
		out = append(out, PageSentimentResponse{
			Page:                  p.Page,
			OverallSentiment:      p.OverallSentiment,
			SentimentDistribution: labelCounts(p.SentimentDistribution),
			AvgConfidence:         p.AvgConfidence,
			TotalInteractions:     p.TotalInteractions,
			UserCount:             len(p.UserSentiments),
		})
	}
	return out
}

func toSentimentTrendResponses(in []domain.SentimentTrendPoint) []SentimentTrendResponse {
	out := make([]SentimentTrendResponse, 0, len(in))
	for _, p := range in {
		out = append(out, SentimentTrendResponse{
			Date:                  p.Date,
			Period:                string(p.Period),
			SentimentScore:        p.SentimentScore,
			SentimentDistribution: labelCounts(p.SentimentDistribution),
			Confidence:            p.Confidence,
			InteractionCount:      p.InteractionCount,
		})
	}
	return out
}

func toBackfillResponse(results []usecase.BackfillItemResult) BackfillResponse {
	sum := usecase.Summarize(results)
	resp := BackfillResponse{
		TotalProcessed: sum.TotalProcessed,
		SuccessCount:   sum.SuccessCount,
		SkippedCount:   sum.SkippedCount,
		FailureCount:   sum.FailureCount,
		Failures:       []BackfillFailureResponse{},
	}
	for _, r := range results {
		if r.OK || r.Err == nil {
			continue
		}
		resp.Failures = append(resp.Failures, BackfillFailureResponse{UserID: r.UserID, Reason: r.Err.Error()})
	}
	return resp
}
