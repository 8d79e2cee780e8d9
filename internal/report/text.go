// Package report renders a finished interview for the terminal and exports
// session snapshots to disk.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/spigell/interview-simulator/internal/evaluator"
	"github.com/spigell/interview-simulator/internal/summary"
)

const (
	barWidth     = 20
	barFilled    = "█"
	barEmpty     = "░"
	questionSpan = 60
)

var nextSteps = []string{
	"Technical documentation for areas you need to improve",
	"Practice coding exercises on platforms like LeetCode, HackerRank",
	"Join developer communities related to your field",
	"Consider online courses to fill knowledge gaps",
}

// Text renders the summary as plain text with bar charts.
func Text(s summary.Summary) string {
	var output strings.Builder

	output.WriteString("=== INTERVIEW PERFORMANCE RESULTS ===\n")
	output.WriteString(fmt.Sprintf("Total Score: %d/%d\n", s.TotalScore, s.MaxScore))
	output.WriteString(fmt.Sprintf("Average Score: %.1f/%d\n", s.AverageScore, evaluator.MaxScore))
	output.WriteString(fmt.Sprintf("Performance Level: %s\n\n", s.Performance))

	output.WriteString("=== SCORES BY QUESTION ===\n")
	for _, r := range s.Reviews {
		output.WriteString(fmt.Sprintf("Q%-3d %s %2d\n", r.Number, bar(float64(r.Score)), r.Score))
	}
	output.WriteString("\n")

	output.WriteString("=== SCORE PROGRESSION ===\n")
	for i, avg := range s.Progression {
		output.WriteString(fmt.Sprintf("Q%-3d %s %4.1f\n", i+1, bar(avg), avg))
	}
	output.WriteString("\n")

	output.WriteString("=== SCORE DISTRIBUTION ===\n")
	width := 0
	for _, d := range s.Distribution {
		if l := len([]rune(d.Band.Label())); l > width {
			width = l
		}
	}
	for _, d := range s.Distribution {
		output.WriteString(fmt.Sprintf("%-*s %s %d\n", width, d.Band.Label(), strings.Repeat(barFilled, d.Count), d.Count))
	}
	output.WriteString("\n")

	output.WriteString("=== DETAILED REVIEW ===\n")
	for _, r := range s.Reviews {
		output.WriteString(fmt.Sprintf("Question %d: %s (Score: %d/%d)\n", r.Number, shorten(r.Question), r.Score, evaluator.MaxScore))
		output.WriteString(fmt.Sprintf("  Feedback: %s\n", r.Feedback))
		output.WriteString(fmt.Sprintf("  Strengths: %s\n", r.Strengths))
		output.WriteString(fmt.Sprintf("  Areas for Improvement: %s\n\n", r.Improvements))
	}

	output.WriteString("=== NEXT STEPS ===\n")
	output.WriteString("Based on your performance, focus on the improvement areas mentioned above.\n")
	output.WriteString("Learning resources:\n")
	for _, step := range nextSteps {
		output.WriteString("  - " + step + "\n")
	}

	return output.String()
}

// Render writes Text(s) to w.
func Render(w io.Writer, s summary.Summary) error {
	_, err := io.WriteString(w, Text(s))
	return err
}

func bar(score float64) string {
	filled := int(score/float64(evaluator.MaxScore)*barWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, barWidth-filled)
}

func shorten(question string) string {
	runes := []rune(question)
	if len(runes) <= questionSpan {
		return question
	}
	return string(runes[:questionSpan]) + "..."
}
