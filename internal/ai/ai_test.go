package ai

import (
	"errors"
	"fmt"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: `["a","b"]`, want: `["a","b"]`},
		{name: "json fence", raw: "```json\n[\"a\"]\n```", want: `["a"]`},
		{name: "bare fence", raw: "```\n{\"score\": 7}\n```", want: `{"score": 7}`},
		{name: "surrounding whitespace", raw: "\n\n  ```json\n{}\n```  \n", want: `{}`},
		{name: "missing closing fence", raw: "```json\n[\"a\"]", want: `["a"]`},
		{name: "text before fence", raw: "Here are your questions:\n```json\n[\"a\"]\n```", want: `["a"]`},
		{name: "text after fence", raw: "```\n{\"score\": 7}\n```\nHope this helps!", want: `{"score": 7}`},
		{name: "stray backticks", raw: "`[\"a\"]`", want: `["a"]`},
		{name: "empty", raw: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExtractJSON(tt.raw); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	wrapped := fmt.Errorf("generate content: %w", &StatusError{Code: 500})
	if got := Classify(wrapped); got != FailureStatus {
		t.Fatalf("expected %q, got %q", FailureStatus, got)
	}

	if got := Classify(errors.New("connection refused")); got != FailureTransport {
		t.Fatalf("expected %q, got %q", FailureTransport, got)
	}
}

func TestStatusErrorMessage(t *testing.T) {
	if got := (&StatusError{Code: 503}).Error(); got != "upstream returned status 503" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := (&StatusError{Code: 400, Message: "bad key"}).Error(); got != "upstream returned status 400: bad key" {
		t.Fatalf("unexpected message: %q", got)
	}
}
