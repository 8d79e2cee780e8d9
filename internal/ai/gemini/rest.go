package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/spigell/interview-simulator/internal/ai"
	"github.com/spigell/interview-simulator/internal/logger"
	"github.com/spigell/interview-simulator/internal/utils"
	"go.uber.org/zap"
)

const apiKeyHeader = "x-goog-api-key"

// REST talks to the generateContent endpoint directly over HTTP.
type REST struct {
	url        string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	maxLogLen  int
}

var _ ai.Backend = (*REST)(nil)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content *content `json:"content"`
	} `json:"candidates"`
}

// NewREST creates the rest transport. The transport default timeout applies
// unless opts.HTTPClient carries its own.
func NewREST(opts Options, log *zap.Logger) *REST {
	url := strings.TrimSpace(opts.URL)
	if url == "" {
		url = DefaultURL
	}

	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &REST{
		url:        url,
		apiKey:     strings.TrimSpace(opts.APIKey),
		httpClient: client,
		logger:     logger.WithBackend(log, Provider, modelOrDefault(opts.Model), TransportREST),
		maxLogLen:  maxLogLength(opts.MaxLogLength),
	}
}

// GenerateContent posts the prompt and returns the text of the first candidate.
func (r *REST) GenerateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, r.apiKey)

	r.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, r.maxLogLen)),
	)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ai.StatusError{
			Code:    resp.StatusCode,
			Message: utils.TruncateForLog(string(data), r.maxLogLen),
		}
	}

	var decoded generateResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(decoded.Candidates) == 0 || decoded.Candidates[0].Content == nil || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini response has no candidate text")
	}

	text := decoded.Candidates[0].Content.Parts[0].Text

	r.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(text)),
		zap.String("response_preview", utils.TruncateForLog(text, r.maxLogLen)),
	)

	return text, nil
}
