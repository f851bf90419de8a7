package domain

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// Pattern tags attached to a sentiment result.
const (
	PatternBackPress        = "back_press"
	PatternRapidClicking    = "rapid_clicking"
	PatternFormInteraction  = "form_interaction"
	PatternConversionAction = "conversion_action"
	PatternLongPause        = "long_pause"
)

// PatternScores holds the four accumulator buckets of the scorer.
type PatternScores struct {
	Frustrated int
	Engaged    int
	Confused   int
	Satisfied  int
}

func (p PatternScores) Positive() int { return p.Engaged + p.Satisfied }
func (p PatternScores) Negative() int { return p.Frustrated + p.Confused }

// SentimentResult is the scorer output for one subject (user or page).
type SentimentResult struct {
	Subject    string
	Score      float64 // [-1, 1]
	Label      SentimentLabel
	Confidence float64 // [0, 1]
	Patterns   []string
	Scores     PatternScores
}

// NewLabelDistribution returns a distribution with every label present.
func NewLabelDistribution() map[SentimentLabel]int {
	return map[SentimentLabel]int{
		SentimentPositive: 0,
		SentimentNeutral:  0,
		SentimentNegative: 0,
	}
}

type PageSentiment struct {
	Page                  string
	OverallSentiment      float64
	SentimentDistribution map[SentimentLabel]int
	AvgConfidence         float64
	TotalInteractions     int
	UserSentiments        map[string]SentimentResult
}

type UserSentiment struct {
	UserID         string
	Overall        SentimentResult
	PageSentiments map[string]SentimentResult
}

type SentimentTrendPoint struct {
	Date                  string
	Period                Period
	SentimentScore        float64
	SentimentDistribution map[SentimentLabel]int
	Confidence            float64
	InteractionCount      int
}
