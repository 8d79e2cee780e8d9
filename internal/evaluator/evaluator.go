package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"github.com/spigell/interview-simulator/internal/ai"
	"github.com/spigell/interview-simulator/internal/logger"
	"github.com/spigell/interview-simulator/internal/utils"
	"go.uber.org/zap"
)

const (
	resumeLimit  = 2000
	previewLimit = 200
)

//go:embed prompt.md
var promptTemplate string

// Evaluator scores a candidate answer through the language-model backend.
type Evaluator struct {
	backend ai.Backend
	logger  *zap.Logger
}

func NewEvaluator(backend ai.Backend, log *zap.Logger) *Evaluator {
	return &Evaluator{
		backend: backend,
		logger:  logger.WithFields(log, zap.String("component", "evaluator")),
	}
}

// Evaluate always returns a well-formed Evaluation with a score in [1,10].
// Upstream failures are folded into a score-5 evaluation whose feedback
// explains what went wrong.
func (e *Evaluator) Evaluate(ctx context.Context, question, answer, resumeText string) Evaluation {
	raw, err := e.backend.GenerateContent(ctx, buildPrompt(question, answer, resumeText))
	if err != nil {
		e.logger.Warn("answer evaluation failed, using fallback score",
			zap.String("failure", ai.Classify(err)),
			zap.Error(err),
		)

		var statusErr *ai.StatusError
		if errors.As(err, &statusErr) {
			return fallback(fmt.Sprintf("API Error: %d", statusErr.Code))
		}
		return fallback(fmt.Sprintf("Error: %s", err))
	}

	evaluation, err := parseEvaluation(raw)
	if err != nil {
		e.logger.Warn("answer evaluation failed, using fallback score",
			zap.String("failure", ai.FailureParse),
			zap.String("response_preview", utils.TruncateForLog(raw, previewLimit)),
			zap.Error(err),
		)
		return fallback("Unable to parse evaluation. " + utils.Head(raw, previewLimit) + "...")
	}

	e.logger.Debug("answer evaluated", zap.Int("score", evaluation.Score))

	return evaluation
}

func buildPrompt(question, answer, resumeText string) string {
	return strings.NewReplacer(
		"{{RESUME}}", utils.Head(resumeText, resumeLimit),
		"{{QUESTION}}", question,
		"{{ANSWER}}", answer,
	).Replace(promptTemplate)
}

type rawEvaluation struct {
	Score        any    `mapstructure:"score"`
	Feedback     string `mapstructure:"feedback"`
	Strengths    string `mapstructure:"strengths"`
	Improvements string `mapstructure:"improvements"`
}

func parseEvaluation(raw string) (Evaluation, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(ai.ExtractJSON(raw)), &data); err != nil {
		return Evaluation{}, fmt.Errorf("parse evaluation: %w", err)
	}
	if data == nil {
		return Evaluation{}, errors.New("parse evaluation: empty object")
	}

	var decoded rawEvaluation
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(flattenToString),
		WeaklyTypedInput: true,
		Result:           &decoded,
	})
	if err != nil {
		return Evaluation{}, fmt.Errorf("create decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return Evaluation{}, fmt.Errorf("decode evaluation: %w", err)
	}

	return Evaluation{
		Score:        coerceScore(decoded.Score),
		Feedback:     strings.TrimSpace(decoded.Feedback),
		Strengths:    orNotAvailable(decoded.Strengths),
		Improvements: orNotAvailable(decoded.Improvements),
	}, nil
}

// flattenToString lets list or object values land in string fields; models
// often answer "strengths" with a bullet array.
func flattenToString(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}

	switch from.Kind() {
	case reflect.Slice, reflect.Array:
		items, ok := data.([]any)
		if !ok {
			break
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			text := strings.TrimSpace(fmt.Sprint(item))
			if text != "" {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, "; "), nil
	case reflect.Map:
		encoded, err := json.Marshal(data)
		if err != nil {
			return fmt.Sprintf("%v", data), nil
		}
		return string(encoded), nil
	}

	return data, nil
}

// coerceScore maps whatever the model put under "score" into [1,10].
// Missing or non-numeric values become FallbackScore.
func coerceScore(v any) int {
	var score float64
	switch val := v.(type) {
	case float64:
		score = val
	case int:
		score = float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if idx := strings.Index(trimmed, "/"); idx != -1 {
			trimmed = strings.TrimSpace(trimmed[:idx])
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return FallbackScore
		}
		score = f
	default:
		return FallbackScore
	}

	if math.IsNaN(score) || math.IsInf(score, 0) {
		return FallbackScore
	}

	rounded := int(math.Round(score))
	if rounded < MinScore {
		return MinScore
	}
	if rounded > MaxScore {
		return MaxScore
	}
	return rounded
}

func orNotAvailable(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return notAvailable
	}
	return s
}
