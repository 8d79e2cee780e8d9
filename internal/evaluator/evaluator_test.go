package evaluator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spigell/interview-simulator/internal/ai"
	"go.uber.org/zap"
)

type stubBackend struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubBackend) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestEvaluateParsesFencedObject(t *testing.T) {
	stub := &stubBackend{response: "```json\n{\"score\": 7, \"feedback\": \"Solid\", \"strengths\": \"Clear\", \"improvements\": \"Depth\"}\n```"}

	got := NewEvaluator(stub, zap.NewNop()).Evaluate(context.Background(), "Why Go?", "Goroutines", "Go developer")

	want := Evaluation{Score: 7, Feedback: "Solid", Strengths: "Clear", Improvements: "Depth"}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	for _, fragment := range []string{"Resume context: Go developer", "Question: Why Go?", "Candidate's Answer: Goroutines"} {
		if !strings.Contains(stub.lastPrompt, fragment) {
			t.Fatalf("expected prompt to contain %q", fragment)
		}
	}
}

func TestEvaluateCoercesLooseFields(t *testing.T) {
	stub := &stubBackend{response: `{"score": "8/10", "feedback": "ok", "strengths": ["clear", "concise"], "improvements": ""}`}

	got := NewEvaluator(stub, nil).Evaluate(context.Background(), "q", "a", "")

	if got.Score != 8 {
		t.Fatalf("expected score 8, got %d", got.Score)
	}
	if got.Strengths != "clear; concise" {
		t.Fatalf("unexpected strengths: %q", got.Strengths)
	}
	if got.Improvements != "N/A" {
		t.Fatalf("expected N/A improvements, got %q", got.Improvements)
	}
}

func TestEvaluateFallbacks(t *testing.T) {
	longText := strings.Repeat("x", 250)

	tests := []struct {
		name         string
		stub         *stubBackend
		wantFeedback string
	}{
		{
			name:         "status",
			stub:         &stubBackend{err: &ai.StatusError{Code: 429}},
			wantFeedback: "API Error: 429",
		},
		{
			name:         "transport",
			stub:         &stubBackend{err: errors.New("connection refused")},
			wantFeedback: "Error: connection refused",
		},
		{
			name:         "parse",
			stub:         &stubBackend{response: "I think this deserves a seven."},
			wantFeedback: "Unable to parse evaluation. I think this deserves a seven....",
		},
		{
			name:         "parse truncates raw text",
			stub:         &stubBackend{response: longText},
			wantFeedback: "Unable to parse evaluation. " + strings.Repeat("x", 200) + "...",
		},
		{
			name:         "array instead of object",
			stub:         &stubBackend{response: `[7]`},
			wantFeedback: "Unable to parse evaluation. [7]...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewEvaluator(tt.stub, nil).Evaluate(context.Background(), "q", "a", "resume")

			if got.Score != FallbackScore {
				t.Fatalf("expected fallback score, got %d", got.Score)
			}
			if got.Feedback != tt.wantFeedback {
				t.Fatalf("expected feedback %q, got %q", tt.wantFeedback, got.Feedback)
			}
			if got.Strengths != "N/A" || got.Improvements != "N/A" {
				t.Fatalf("expected N/A strengths and improvements, got %+v", got)
			}
		})
	}
}

func TestCoerceScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  int
	}{
		{name: "integer float", input: 7.0, want: 7},
		{name: "rounds half up", input: 6.5, want: 7},
		{name: "int", input: 9, want: 9},
		{name: "string", input: " 4 ", want: 4},
		{name: "fraction string", input: "3/10", want: 3},
		{name: "above range", input: 42.0, want: 10},
		{name: "below range", input: 0.0, want: 1},
		{name: "negative", input: -3.0, want: 1},
		{name: "missing", input: nil, want: 5},
		{name: "words", input: "seven", want: 5},
		{name: "bool", input: true, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := coerceScore(tt.input); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestEvaluateMissingScoreDefaultsToFive(t *testing.T) {
	stub := &stubBackend{response: `{"feedback": "no score given"}`}

	got := NewEvaluator(stub, nil).Evaluate(context.Background(), "q", "a", "")

	if got.Score != FallbackScore || got.Feedback != "no score given" {
		t.Fatalf("unexpected evaluation: %+v", got)
	}
}

func TestEvaluateTruncatesResumeContext(t *testing.T) {
	stub := &stubBackend{response: `{"score": 6}`}
	resume := strings.Repeat("r", resumeLimit) + "TAIL"

	NewEvaluator(stub, nil).Evaluate(context.Background(), "q", "a", resume)

	if strings.Contains(stub.lastPrompt, "TAIL") {
		t.Fatal("expected resume context to be truncated")
	}
}

func TestBuildPromptKeepsPlaceholdersInUserText(t *testing.T) {
	prompt := buildPrompt("Why {{ANSWER}}?", "I wrote {{RESUME}}", "Go dev {{QUESTION}}")

	for _, fragment := range []string{
		"Resume context: Go dev {{QUESTION}}",
		"Question: Why {{ANSWER}}?",
		"Candidate's Answer: I wrote {{RESUME}}",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Fatalf("expected prompt to contain %q, got:\n%s", fragment, prompt)
		}
	}
}
