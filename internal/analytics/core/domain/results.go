package domain

import "time"

type FunnelStepResult struct {
	Step           string
	TotalUsers     int
	ConversionRate float64
	DropOffRate    float64
	AvgTimeSpent   *float64 // nil when no session had a measurable duration
}

type FunnelAnalysisResult struct {
	DeviceType            string
	TotalUsers            int
	Steps                 []FunnelStepResult
	OverallConversionRate float64
}

type DropoffPoint struct {
	FromStep       string
	ToStep         string
	DropoffCount   int
	DropoffRate    float64
	UsersAtStep    int
	UsersContinued int
}

type TrendPoint struct {
	Date           string
	Period         Period
	TotalSessions  int
	Conversions    int
	UniqueUsers    int
	ConversionRate float64
}

type CohortResult struct {
	CohortDate     string
	CohortType     Period
	CohortSize     int
	RetainedUsers  int
	ConvertedUsers int
	RetentionRate  float64
	ConversionRate float64
}

type JourneyPattern struct {
	JourneyPattern string
	UserCount      int
	Percentage     float64
}

// DashboardMetrics is the composed summary for one date window.
type DashboardMetrics struct {
	TotalUsers                int
	TotalSessions             int
	OverallConversionRate     float64
	MobileVsDesktopConversion map[string]float64
	TopDropOffPoints          []DropoffPoint
	DailyMetrics              []TrendPoint
	SentimentDistribution     map[SentimentLabel]int
}

type UserBehavior struct {
	UserID              string
	Device              string
	TotalSessions       int
	TotalInteractions   int64
	PagesVisited        []string
	ConversionCompleted bool
	SentimentScore      *float64
}

// SimilarUser is one neighbor returned by the similarity service. The score
// is passed through untouched.
type SimilarUser struct {
	UserID          string
	SimilarityScore float64
}

// SentimentRecord is a persisted per-user sentiment snapshot.
type SentimentRecord struct {
	ID         string
	UserID     string
	Page       string
	Score      float64
	Label      SentimentLabel
	Confidence float64
	Patterns   []string
	AnalyzedAt time.Time
}
