package evaluator

const (
	MinScore = 1
	MaxScore = 10
	// FallbackScore is used whenever no usable score came back.
	FallbackScore = 5

	notAvailable = "N/A"
)

// Evaluation is the verdict on one answered question.
type Evaluation struct {
	Score        int    `json:"score" yaml:"score"`
	Feedback     string `json:"feedback" yaml:"feedback"`
	Strengths    string `json:"strengths" yaml:"strengths"`
	Improvements string `json:"improvements" yaml:"improvements"`
}

func fallback(feedback string) Evaluation {
	return Evaluation{
		Score:        FallbackScore,
		Feedback:     feedback,
		Strengths:    notAvailable,
		Improvements: notAvailable,
	}
}
