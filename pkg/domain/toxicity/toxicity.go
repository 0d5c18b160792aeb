package toxicity

const (
	// Category is the classifier output entry the verdict is derived from.
	Category = "toxicity"

	// DefaultThreshold is the score a text must exceed to be flagged as toxic.
	DefaultThreshold = 0.5
)

// Scores maps a classifier category (toxicity, severe_toxicity, obscene, ...) to its probability.
// Values are reported as-is, they are neither clamped nor validated against [0,1].
type Scores map[string]float64

// Get returns the score for category, or 0 when the classifier did not report it.
func (s Scores) Get(category string) float64 {
	if s == nil {
		return 0
	}
	return s[category]
}

type Analysis struct {
	Toxic bool    `json:"toxic"`
	Score float64 `json:"score"`
}

// NewAnalysis derives the verdict from the classifier scores. A score equal to the
// threshold is not toxic.
func NewAnalysis(scores Scores, threshold float64) *Analysis {
	score := scores.Get(Category)
	return &Analysis{
		Toxic: score > threshold,
		Score: score,
	}
}
