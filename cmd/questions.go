package cmd

import (
	"context"
	"fmt"

	"github.com/spigell/interview-simulator/internal/questions"
	"github.com/spigell/interview-simulator/internal/resume"
	"github.com/spigell/interview-simulator/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate interview questions for a resume and print them",
	Run: func(cmd *cobra.Command, _ []string) {
		generateQuestions(cmd)
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)

	questionsCmd.Flags().StringP("resume", "r", "", "path to the resume (PDF or text)")
	questionsCmd.Flags().IntP("count", "n", defaultQuestions, "number of questions (1-20)")

	questionsCmd.MarkFlagRequired("resume")
}

func generateQuestions(cmd *cobra.Command) {
	ctx := context.Background()
	logger, config := setup()

	count, _ := cmd.Flags().GetInt("count")
	if count < questions.MinCount || count > questions.MaxCount {
		logger.Fatal("invalid question count", zap.Int("count", count), zap.Error(session.ErrInvalidCount))
	}

	path, _ := cmd.Flags().GetString("resume")
	resumeText, err := resume.Load(path)
	if err != nil {
		logger.Fatal("loading resume", zap.Error(err))
	}
	if resumeText == "" {
		logger.Warn("resume text is empty, questions will not be personalized", zap.String("path", path))
	}

	backend, err := newBackend(ctx, config.Gemini, logger)
	if err != nil {
		logger.Fatal("building gemini backend", zap.Error(err))
	}

	list := questions.NewGenerator(backend, logger).Generate(ctx, resumeText, count)
	for i, q := range list {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, q)
	}
}
