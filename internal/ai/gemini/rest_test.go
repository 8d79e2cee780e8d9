package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spigell/interview-simulator/internal/ai"
	"go.uber.org/zap"
)

func TestRESTGenerateContent(t *testing.T) {
	var gotKey string
	var gotBody generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		data, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(data, &gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"[\"Q1\"]"}]}}]}`))
	}))
	defer srv.Close()

	client := NewREST(Options{APIKey: "secret", URL: srv.URL}, zap.NewNop())

	text, err := client.GenerateContent(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != `["Q1"]` {
		t.Fatalf("unexpected text: %q", text)
	}

	if gotKey != "secret" {
		t.Fatalf("expected api key header, got %q", gotKey)
	}

	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 || gotBody.Contents[0].Parts[0].Text != "hello" {
		t.Fatalf("unexpected request body: %+v", gotBody)
	}
}

func TestRESTStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewREST(Options{APIKey: "secret", URL: srv.URL}, nil)

	_, err := client.GenerateContent(context.Background(), "hello")

	var statusErr *ai.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected status error, got %v", err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", statusErr.Code)
	}
}

func TestRESTMalformedResponses(t *testing.T) {
	bodies := map[string]string{
		"not json":      `<html>`,
		"no candidates": `{"candidates":[]}`,
		"no parts":      `{"candidates":[{"content":{"parts":[]}}]}`,
		"no content":    `{"candidates":[{}]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := NewREST(Options{APIKey: "k", URL: srv.URL}, nil).GenerateContent(context.Background(), "p")
			if err == nil {
				t.Fatal("expected error")
			}
			if ai.Classify(err) != ai.FailureTransport {
				t.Fatalf("expected transport failure, got %q", ai.Classify(err))
			}
		})
	}
}

func TestRESTTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewREST(Options{APIKey: "k", URL: url}, nil).GenerateContent(context.Background(), "p")
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	if ai.Classify(err) != ai.FailureTransport {
		t.Fatalf("expected transport failure, got %q", ai.Classify(err))
	}
}

func TestNewSelectsTransport(t *testing.T) {
	ctx := context.Background()

	if _, err := New(ctx, Options{}, nil); err == nil {
		t.Fatal("expected error without api key")
	}

	backend, err := New(ctx, Options{APIKey: "k"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rest, ok := backend.(*REST)
	if !ok {
		t.Fatalf("expected rest transport by default, got %T", backend)
	}
	if rest.url != DefaultURL {
		t.Fatalf("expected default url, got %q", rest.url)
	}

	if _, err := New(ctx, Options{APIKey: "k", Transport: "grpc"}, nil); err == nil {
		t.Fatal("expected error for unknown transport")
	}
}
