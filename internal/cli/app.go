// Package cli runs a written driving-licence mock test in the terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nepal-utilities/backend/internal/bank"
	"github.com/nepal-utilities/backend/internal/exam"
	"github.com/nepal-utilities/backend/internal/models"
)

const maxAttempts = 3

type Options struct {
	Dir       string
	Category  models.Category
	Language  models.Language
	TimeLimit int // minutes; zero keeps the default
}

func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	manager := exam.NewManager(bank.NewDirSource(opts.Dir), exam.WithTimeLimit(exam.DefaultConfig(), opts.TimeLimit))
	session := manager.Create()
	defer manager.Exit(session.ID())

	if _, err := manager.SelectCategory(ctx, session.ID(), opts.Category); err != nil {
		return err
	}
	if err := session.ChooseLanguage(opts.Language, models.DisplayQuiz); err != nil {
		return err
	}

	reader := bufio.NewReader(in)
	cfg := manager.Config()
	printInstructions(out, opts.Category, cfg)
	if _, err := reader.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if err := session.Begin(); err != nil {
		return err
	}

	questions := session.View().Questions
	for idx, q := range questions {
		if ctx.Err() != nil {
			break
		}
		printQuestion(out, idx+1, len(questions), session.View().Remaining, q)

		choice, ok := getAnswer(reader, out)
		if !ok {
			fmt.Fprintln(out, "Skipped.")
			continue
		}
		if _, err := session.RecordAnswer(q.Number, choice); err != nil {
			if errors.Is(err, exam.ErrExamCompleted) {
				fmt.Fprintln(out, "\nTime is up.")
				break
			}
			return err
		}
	}

	result, err := session.Complete()
	if err != nil {
		return err
	}
	printResult(out, result, session.View())
	return nil
}

func printInstructions(out io.Writer, category models.Category, cfg models.ExamConfig) {
	fmt.Fprintf(out, "Category %s written test\n", category)
	fmt.Fprintf(out, "%d questions, %d marks, pass mark %d, time limit %s\n",
		cfg.TotalQuestions, cfg.TotalMarks, cfg.PassingMarks, exam.FormatClock(cfg.TimeLimitSeconds))
	fmt.Fprintln(out, "Answer with a letter A-D. An empty line skips a question.")
	fmt.Fprintln(out, "Press Enter to start.")
}

func printQuestion(out io.Writer, number, total int, remaining string, q models.ExamQuestion) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d/%d [%s left]: %s\n\n", number, total, remaining, q.Text)
	for i, option := range q.Options {
		fmt.Fprintf(out, "%c. %s\n", 'A'+i, option)
	}
	fmt.Fprintln(out)
}

// getAnswer reads a letter A-D. A blank line or running out of input skips.
func getAnswer(reader *bufio.Reader, out io.Writer) (int, bool) {
	maxLetter := byte('A' + models.OptionCount - 1)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		line, err := reader.ReadString('\n')
		line = strings.ToUpper(strings.TrimSpace(line))
		if line == "" {
			return -1, false
		}
		if len(line) == 1 && line[0] >= 'A' && line[0] <= maxLetter {
			return int(line[0] - 'A'), true
		}
		if err != nil {
			return -1, false
		}
		if attempt < maxAttempts {
			fmt.Fprintf(out, "Invalid input. Please enter a letter A-%c.\n", maxLetter)
		}
	}
	return -1, false
}

func printResult(out io.Writer, result models.ExamResult, view models.SessionView) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Final score: %d/%d (%d%%)\n", result.TotalScore, result.TotalMarks, result.Percentage)
	fmt.Fprintf(out, "Correct: %d  Incorrect: %d  Unanswered: %d  Time: %s\n",
		result.CorrectCount, result.IncorrectCount, result.UnansweredCount, result.TimeSpent)
	if result.Passed {
		fmt.Fprintln(out, "PASSED")
	} else {
		fmt.Fprintln(out, "FAILED")
	}

	correct := make(map[int]bool, len(result.Answers))
	for _, a := range result.Answers {
		correct[a.QuestionID] = a.IsCorrect
	}
	var missed []string
	for i, q := range view.Questions {
		if correct[q.Number] {
			continue
		}
		missed = append(missed, fmt.Sprintf("Q%d: %s", i+1, strings.ToUpper(q.CorrectAnswer)))
	}
	if len(missed) > 0 {
		fmt.Fprintln(out, "\nCorrect answers for missed questions:")
		for _, m := range missed {
			fmt.Fprintln(out, m)
		}
	}
}
