package questions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "embed"

	"github.com/spigell/interview-simulator/internal/ai"
	"github.com/spigell/interview-simulator/internal/logger"
	"github.com/spigell/interview-simulator/internal/utils"
	"go.uber.org/zap"
)

const (
	// MinCount and MaxCount bound the number of questions in one interview.
	MinCount = 1
	MaxCount = 20

	resumeLimit = 3000
)

//go:embed prompt.md
var promptTemplate string

// Generator asks the backend for interview questions tailored to a résumé.
type Generator struct {
	backend ai.Backend
	logger  *zap.Logger
}

func NewGenerator(backend ai.Backend, log *zap.Logger) *Generator {
	return &Generator{
		backend: backend,
		logger:  logger.WithFields(log, zap.String("component", "questions")),
	}
}

// Generate returns exactly count questions. Upstream failures never surface:
// any of them yields the first count entries of the default pool.
func (g *Generator) Generate(ctx context.Context, resumeText string, count int) []string {
	if count <= 0 {
		return []string{}
	}

	raw, err := g.backend.GenerateContent(ctx, buildPrompt(resumeText, count))
	if err != nil {
		g.logger.Warn("question generation failed, using default questions",
			zap.String("failure", ai.Classify(err)),
			zap.Int("count", count),
			zap.Error(err),
		)
		return Defaults(count)
	}

	questions, err := parseQuestions(raw)
	if err != nil {
		g.logger.Warn("question generation failed, using default questions",
			zap.String("failure", ai.FailureParse),
			zap.Int("count", count),
			zap.String("response_preview", utils.TruncateForLog(raw, 200)),
			zap.Error(err),
		)
		return Defaults(count)
	}

	switch {
	case len(questions) > count:
		questions = questions[:count]
	case len(questions) < count:
		g.logger.Debug("padding short question list",
			zap.Int("received", len(questions)),
			zap.Int("count", count),
		)
		questions = pad(questions, count)
	}

	return questions
}

func buildPrompt(resumeText string, count int) string {
	prompt := strings.ReplaceAll(promptTemplate, "{{COUNT}}", strconv.Itoa(count))
	return strings.ReplaceAll(prompt, "{{RESUME}}", utils.Head(resumeText, resumeLimit))
}

func parseQuestions(raw string) ([]string, error) {
	var questions []string
	if err := json.Unmarshal([]byte(ai.ExtractJSON(raw)), &questions); err != nil {
		return nil, fmt.Errorf("parse question list: %w", err)
	}
	if questions == nil {
		return nil, errors.New("parse question list: not an array")
	}
	return questions, nil
}
