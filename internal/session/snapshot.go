package session

import (
	"github.com/spigell/interview-simulator/internal/evaluator"
	"github.com/spigell/interview-simulator/internal/summary"
)

// Snapshot is a serializable copy of a session, used for report export.
type Snapshot struct {
	ID              string                 `json:"id" yaml:"id"`
	State           State                  `json:"state" yaml:"state"`
	QuestionCount   int                    `json:"question_count" yaml:"question_count"`
	Questions       []string               `json:"questions" yaml:"questions"`
	Asked           int                    `json:"asked" yaml:"asked"`
	Evaluations     []evaluator.Evaluation `json:"evaluations" yaml:"evaluations"`
	CumulativeScore int                    `json:"cumulative_score" yaml:"cumulative_score"`
	Transcript      []Entry                `json:"transcript" yaml:"transcript"`
	Summary         *summary.Summary       `json:"summary,omitempty" yaml:"summary,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:              s.ID,
		State:           s.State(),
		QuestionCount:   s.questionCount,
		Questions:       s.Questions(),
		Asked:           s.cursor,
		Evaluations:     s.Evaluations(),
		CumulativeScore: s.score,
		Transcript:      s.Transcript(),
	}
	if sum, ok := s.Summary(); ok {
		snap.Summary = &sum
	}
	return snap
}
