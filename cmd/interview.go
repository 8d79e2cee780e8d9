package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spigell/interview-simulator/internal/evaluator"
	"github.com/spigell/interview-simulator/internal/questions"
	"github.com/spigell/interview-simulator/internal/report"
	"github.com/spigell/interview-simulator/internal/resume"
	"github.com/spigell/interview-simulator/internal/session"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptAnswer       = "Answer the question"
	PromptChangeCount  = "Change number of questions"
	PromptRestart      = "Restart interview"
	PromptNewInterview = "Start new interview"
	PromptQuit         = "Quit"
)

var errExit = errors.New("exit requested")

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run an interactive interview based on your resume",
	Run: func(cmd *cobra.Command, _ []string) {
		interview(cmd)
	},
}

func init() {
	rootCmd.AddCommand(interviewCmd)

	interviewCmd.Flags().StringP("resume", "r", "", "path to the resume (PDF or text)")
	interviewCmd.Flags().IntP("questions", "n", defaultQuestions, "number of questions (1-20)")
	interviewCmd.Flags().String("report", "", "write the finished session to a .yaml or .json file")

	interviewCmd.MarkFlagRequired("resume")
	viper.BindPFlag("interview.questions", interviewCmd.Flags().Lookup("questions"))
}

// shell drives one session from the terminal.
type shell struct {
	session    *session.Session
	out        io.Writer
	logger     *zap.Logger
	reportPath string
	printed    int
	rendered   bool
}

func interview(cmd *cobra.Command) {
	ctx := context.Background()
	logger, config := setup()

	logger.Info("starting the interview-simulator", zap.String("version", version))

	path, _ := cmd.Flags().GetString("resume")
	resumeText, err := resume.Load(path)
	if err != nil {
		logger.Fatal("loading resume", zap.Error(err))
	}
	if resumeText == "" {
		logger.Warn("resume text is empty, questions will not be personalized", zap.String("path", path))
	}

	logger.Debug("resume loaded", zap.String("path", path), zap.Int("length", len([]rune(resumeText))))

	backend, err := newBackend(ctx, config.Gemini, logger)
	if err != nil {
		logger.Fatal("building gemini backend", zap.Error(err))
	}

	s := session.New(
		questions.NewGenerator(backend, logger),
		evaluator.NewEvaluator(backend, logger),
		logger,
	)

	reportPath, _ := cmd.Flags().GetString("report")
	sh := &shell{
		session:    s,
		out:        cmd.OutOrStdout(),
		logger:     logger,
		reportPath: reportPath,
	}

	fmt.Fprintln(sh.out, "Generating interview questions...")
	if err := s.Start(ctx, resumeText, config.Interview.Questions); err != nil {
		logger.Fatal("starting the interview", zap.Error(err))
	}

	if err := sh.loop(ctx); err != nil && !errors.Is(err, errExit) {
		logger.Fatal("exiting", zap.Error(err))
	}
}

func (sh *shell) loop(ctx context.Context) error {
	for {
		sh.printTranscript()

		if sh.session.State() != session.Completed {
			sh.rendered = false
		} else if !sh.rendered {
			if err := sh.finish(); err != nil {
				return err
			}
			sh.rendered = true
		}

		action, err := sh.chooseAction()
		if err != nil {
			return err
		}

		if err := sh.handleAction(ctx, action); err != nil {
			return err
		}
	}
}

func (sh *shell) chooseAction() (string, error) {
	items := []string{PromptAnswer, PromptChangeCount, PromptRestart, PromptQuit}
	if sh.session.State() == session.Completed {
		items = []string{PromptNewInterview, PromptChangeCount, PromptQuit}
	}

	prompt := promptui.Select{
		Label: "What next?",
		Items: items,
	}

	_, action, err := prompt.Run()
	return action, err
}

func (sh *shell) handleAction(ctx context.Context, action string) error {
	switch action {
	case PromptAnswer:
		return sh.answer(ctx)
	case PromptChangeCount:
		return sh.changeCount(ctx)
	case PromptRestart, PromptNewInterview:
		fmt.Fprintln(sh.out, "Generating interview questions...")
		sh.printed = 0
		return sh.session.Reset(ctx)
	case PromptQuit:
		sh.logger.Info("exiting", zap.String("reason", "quit selected"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func (sh *shell) answer(ctx context.Context) error {
	if !sh.session.AwaitingAnswer() {
		sh.session.Advance()
		return nil
	}

	prompt := promptui.Prompt{
		Label: "Your answer",
	}

	answer, err := prompt.Run()
	if err != nil {
		return err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		fmt.Fprintln(sh.out, "Empty answer ignored.")
		return nil
	}

	fmt.Fprintln(sh.out, "Evaluating your answer...")
	_, err = sh.session.SubmitAnswer(ctx, answer)
	return err
}

func (sh *shell) changeCount(ctx context.Context) error {
	prompt := promptui.Prompt{
		Label:   fmt.Sprintf("Number of questions (%d-%d)", questions.MinCount, questions.MaxCount),
		Default: strconv.Itoa(len(sh.session.Questions())),
		Validate: func(input string) error {
			_, err := parseCount(input)
			return err
		},
	}

	input, err := prompt.Run()
	if err != nil {
		return err
	}

	count, err := parseCount(input)
	if err != nil {
		return err
	}

	return sh.setCount(ctx, count)
}

func (sh *shell) setCount(ctx context.Context, count int) error {
	if err := applyQuestionCount(ctx, sh.session, count); err != nil {
		return err
	}
	// A shrink can re-complete the interview within this call.
	sh.rendered = false

	fmt.Fprintf(sh.out, "Number of questions updated to %d\n", count)
	return nil
}

// applyQuestionCount edits the question list and posts the next question when
// nothing is waiting for an answer.
func applyQuestionCount(ctx context.Context, s *session.Session, count int) error {
	if err := s.EditQuestionCount(ctx, count); err != nil {
		return err
	}

	if s.State() == session.InProgress && !s.AwaitingAnswer() {
		s.Advance()
	}

	return nil
}

func parseCount(input string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", input)
	}
	if count < questions.MinCount || count > questions.MaxCount {
		return 0, session.ErrInvalidCount
	}
	return count, nil
}

// printTranscript writes the entries appended since the last call.
func (sh *shell) printTranscript() {
	transcript := sh.session.Transcript()
	if sh.printed > len(transcript) {
		sh.printed = 0
	}

	for _, entry := range transcript[sh.printed:] {
		fmt.Fprintln(sh.out, formatEntry(entry))
	}
	sh.printed = len(transcript)
}

func formatEntry(entry session.Entry) string {
	switch entry.Kind {
	case session.KindAnswer:
		return "You: " + entry.Text
	case session.KindEvaluation:
		return "  > " + entry.Text
	default:
		return "Interviewer: " + entry.Text
	}
}

func (sh *shell) finish() error {
	sum, ok := sh.session.Summary()
	if !ok {
		return nil
	}

	if err := report.Render(sh.out, sum); err != nil {
		return err
	}

	if sh.reportPath == "" {
		return nil
	}

	if err := report.Write(sh.reportPath, sh.session.Snapshot()); err != nil {
		return err
	}

	sh.logger.Info("session report written", zap.String("filename", sh.reportPath))
	return nil
}
