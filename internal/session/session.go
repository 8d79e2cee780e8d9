package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spigell/interview-simulator/internal/evaluator"
	"github.com/spigell/interview-simulator/internal/logger"
	"github.com/spigell/interview-simulator/internal/questions"
	"github.com/spigell/interview-simulator/internal/summary"
	"go.uber.org/zap"
)

// WelcomeMessage opens every interview transcript.
const WelcomeMessage = "Welcome to your technical interview! I'll ask you personalized questions based on your resume and evaluate your responses. Let's begin!"

var (
	ErrNotStarted        = errors.New("interview has not been started")
	ErrNotInProgress     = errors.New("interview is not in progress")
	ErrNoPendingQuestion = errors.New("no question is waiting for an answer")
	ErrInvalidCount      = fmt.Errorf("question count must be between %d and %d", questions.MinCount, questions.MaxCount)
)

// QuestionGenerator produces exactly count questions for a résumé.
type QuestionGenerator interface {
	Generate(ctx context.Context, resumeText string, count int) []string
}

// AnswerEvaluator scores one answer. It never fails.
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, question, answer, resumeText string) evaluator.Evaluation
}

// Session owns one interview. It is not safe for concurrent use; every
// caller drives its own Session one event at a time.
type Session struct {
	ID string

	resumeText    string
	questionCount int
	questions     []string
	cursor        int
	pending       bool
	transcript    []Entry
	evaluations   []evaluator.Evaluation
	score         int
	started       bool
	completed     bool
	summary       *summary.Summary

	generator QuestionGenerator
	evaluator AnswerEvaluator
	logger    *zap.Logger
}

// New returns a session in the NotStarted state.
func New(gen QuestionGenerator, eval AnswerEvaluator, log *zap.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		ID:        id,
		generator: gen,
		evaluator: eval,
		logger:    logger.WithSession(log, id),
	}
}

// Start generates a fresh question list and posts the first question. Called
// on a running or finished session it acts as a reset.
func (s *Session) Start(ctx context.Context, resumeText string, count int) error {
	if !validCount(count) {
		return ErrInvalidCount
	}

	s.resumeText = resumeText
	s.questionCount = count
	s.questions = s.generator.Generate(ctx, resumeText, count)
	s.cursor = 0
	s.pending = false
	s.transcript = []Entry{{Kind: KindQuestion, Text: WelcomeMessage}}
	s.evaluations = nil
	s.score = 0
	s.completed = false
	s.summary = nil
	s.started = true

	s.logger.Info("interview started",
		zap.Int("questions", len(s.questions)),
		zap.Int("resume_length", len([]rune(resumeText))),
	)

	s.Advance()
	return nil
}

// Reset restarts the interview with the stored résumé and question count.
func (s *Session) Reset(ctx context.Context) error {
	if !s.started {
		return ErrNotStarted
	}
	return s.Start(ctx, s.resumeText, s.questionCount)
}

// Advance posts the next question, or completes the interview once every
// question has been asked. It does nothing on a completed session.
func (s *Session) Advance() {
	if !s.started || s.completed {
		return
	}

	if s.cursor < len(s.questions) {
		s.transcript = append(s.transcript, Entry{
			Kind: KindQuestion,
			Text: fmt.Sprintf("Question %d/%d: %s", s.cursor+1, len(s.questions), s.questions[s.cursor]),
		})
		s.cursor++
		s.pending = true
		return
	}

	snapshot := summary.Summarize(s.questions, s.evaluations, s.score)
	s.summary = &snapshot
	s.completed = true
	s.pending = false

	s.logger.Info("interview completed",
		zap.Int("total_score", snapshot.TotalScore),
		zap.Int("max_score", snapshot.MaxScore),
		zap.Float64("average_score", snapshot.AverageScore),
		zap.Stringer("performance", snapshot.Performance),
	)
}

// SubmitAnswer records the answer to the question last posted, scores it and
// moves on.
func (s *Session) SubmitAnswer(ctx context.Context, answer string) (evaluator.Evaluation, error) {
	if s.State() != InProgress {
		return evaluator.Evaluation{}, ErrNotInProgress
	}
	if !s.pending {
		return evaluator.Evaluation{}, ErrNoPendingQuestion
	}

	s.transcript = append(s.transcript, Entry{Kind: KindAnswer, Text: answer})

	index := s.cursor - 1
	evaluation := s.evaluator.Evaluate(ctx, s.questions[index], answer, s.resumeText)

	s.evaluations = append(s.evaluations, evaluation)
	s.score += evaluation.Score
	s.pending = false

	s.transcript = append(s.transcript, Entry{
		Kind: KindEvaluation,
		Text: fmt.Sprintf("Question %d/%d - Score: %d/10", index+1, len(s.questions), evaluation.Score),
	})

	s.logger.Debug("answer scored",
		zap.Int("question", index+1),
		zap.Int("score", evaluation.Score),
		zap.Int("cumulative_score", s.score),
	)

	s.Advance()
	return evaluation, nil
}

// EditQuestionCount grows or shrinks the question list of a running or
// finished interview. Growing asks the generator for the difference only.
// Shrinking below the cursor clamps it; evaluations already recorded are kept.
// Before Start it only records the count for the next interview.
func (s *Session) EditQuestionCount(ctx context.Context, count int) error {
	if !validCount(count) {
		return ErrInvalidCount
	}

	if !s.started {
		s.questionCount = count
		return nil
	}

	s.questionCount = count
	current := len(s.questions)
	clamped := false

	switch {
	case count > current:
		s.questions = append(s.questions, s.generator.Generate(ctx, s.resumeText, count-current)...)
	case count < current:
		s.questions = s.questions[:count]
		if s.cursor > count {
			s.cursor = count
			s.pending = false
			clamped = true
		}
	default:
		return nil
	}

	if s.completed && (clamped || s.cursor < len(s.questions)) {
		s.completed = false
		s.summary = nil
	}

	s.logger.Info("question count updated",
		zap.Int("from", current),
		zap.Int("to", len(s.questions)),
		zap.Int("cursor", s.cursor),
		zap.Stringer("state", s.State()),
	)

	return nil
}

// State reports where the session is in its lifecycle.
func (s *Session) State() State {
	switch {
	case !s.started:
		return NotStarted
	case s.completed:
		return Completed
	default:
		return InProgress
	}
}

// AwaitingAnswer reports whether the last posted question still needs an answer.
func (s *Session) AwaitingAnswer() bool {
	return s.State() == InProgress && s.pending
}

// CurrentQuestion returns the question waiting for an answer.
func (s *Session) CurrentQuestion() (string, bool) {
	if !s.AwaitingAnswer() {
		return "", false
	}
	return s.questions[s.cursor-1], true
}

// Cursor is the number of questions asked so far.
func (s *Session) Cursor() int { return s.cursor }

func (s *Session) QuestionCount() int { return s.questionCount }

func (s *Session) ResumeText() string { return s.resumeText }

func (s *Session) CumulativeScore() int { return s.score }

func (s *Session) Questions() []string {
	return append([]string(nil), s.questions...)
}

func (s *Session) Transcript() []Entry {
	return append([]Entry(nil), s.transcript...)
}

func (s *Session) Evaluations() []evaluator.Evaluation {
	return append([]evaluator.Evaluation(nil), s.evaluations...)
}

// Summary returns the snapshot taken when the interview completed.
func (s *Session) Summary() (summary.Summary, bool) {
	if s.summary == nil {
		return summary.Summary{}, false
	}
	return *s.summary, true
}

func validCount(count int) bool {
	return count >= questions.MinCount && count <= questions.MaxCount
}
