package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/spigell/interview-simulator/internal/ai"
	"go.uber.org/zap"
)

const (
	Provider = "gemini"

	TransportREST = "rest"
	TransportSDK  = "sdk"

	DefaultModel = "gemini-2.0-flash"
	DefaultURL   = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

	defaultMaxLogLength = 200
)

// Options configures a Gemini backend.
type Options struct {
	APIKey    string
	Model     string
	Transport string
	// URL is the full generateContent endpoint used by the rest transport.
	URL string
	// BaseURL overrides the API host used by the sdk transport.
	BaseURL      string
	MaxLogLength int
	HTTPClient   *http.Client
}

// New returns the backend selected by opts.Transport. The rest transport is the default.
func New(ctx context.Context, opts Options, logger *zap.Logger) (ai.Backend, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	switch transport := strings.ToLower(strings.TrimSpace(opts.Transport)); transport {
	case "", TransportREST:
		return NewREST(opts, logger), nil
	case TransportSDK:
		return NewGenerator(ctx, opts, logger)
	default:
		return nil, fmt.Errorf("unsupported gemini transport: %s", opts.Transport)
	}
}

func modelOrDefault(model string) string {
	if model = strings.TrimSpace(model); model == "" {
		return DefaultModel
	}
	return model
}

func maxLogLength(n int) int {
	if n <= 0 {
		return defaultMaxLogLength
	}
	return n
}
