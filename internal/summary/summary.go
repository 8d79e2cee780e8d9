package summary

import (
	"fmt"

	"github.com/spigell/interview-simulator/internal/evaluator"
)

// Review pairs one evaluation with the question it answered.
type Review struct {
	Number       int    `json:"number" yaml:"number"`
	Question     string `json:"question" yaml:"question"`
	Score        int    `json:"score" yaml:"score"`
	Feedback     string `json:"feedback" yaml:"feedback"`
	Strengths    string `json:"strengths" yaml:"strengths"`
	Improvements string `json:"improvements" yaml:"improvements"`
}

// BandCount is one slice of the score distribution.
type BandCount struct {
	Band  Band `json:"band" yaml:"band"`
	Count int  `json:"count" yaml:"count"`
}

// Summary is a read-only view over a finished interview.
type Summary struct {
	TotalScore   int         `json:"total_score" yaml:"total_score"`
	MaxScore     int         `json:"max_score" yaml:"max_score"`
	AverageScore float64     `json:"average_score" yaml:"average_score"`
	Performance  Band        `json:"performance" yaml:"performance"`
	Reviews      []Review    `json:"reviews" yaml:"reviews"`
	Distribution []BandCount `json:"distribution" yaml:"distribution"`
	// Progression holds the running average after each answer.
	Progression []float64 `json:"progression" yaml:"progression"`
}

// Summarize reduces the evaluation list. It is a pure function of its inputs.
func Summarize(questions []string, evaluations []evaluator.Evaluation, cumulativeScore int) Summary {
	s := Summary{
		TotalScore:   cumulativeScore,
		MaxScore:     len(evaluations) * evaluator.MaxScore,
		Reviews:      make([]Review, 0, len(evaluations)),
		Distribution: make([]BandCount, len(Bands)),
		Progression:  make([]float64, 0, len(evaluations)),
	}

	if len(evaluations) > 0 {
		s.AverageScore = float64(cumulativeScore) / float64(len(evaluations))
	}
	s.Performance = BandFor(s.AverageScore)

	for i, band := range Bands {
		s.Distribution[i] = BandCount{Band: band}
	}

	running := 0
	for i, e := range evaluations {
		question := fmt.Sprintf("Question %d", i+1)
		if i < len(questions) {
			question = questions[i]
		}

		s.Reviews = append(s.Reviews, Review{
			Number:       i + 1,
			Question:     question,
			Score:        e.Score,
			Feedback:     e.Feedback,
			Strengths:    e.Strengths,
			Improvements: e.Improvements,
		})

		s.Distribution[BandFor(float64(e.Score))].Count++

		running += e.Score
		s.Progression = append(s.Progression, float64(running)/float64(i+1))
	}

	return s
}

// Count returns how many answers fell into band.
func (s Summary) Count(band Band) int {
	for _, bc := range s.Distribution {
		if bc.Band == band {
			return bc.Count
		}
	}
	return 0
}
