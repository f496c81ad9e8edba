package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/pathwise/pathwise/internal/app"
	"github.com/pathwise/pathwise/internal/interview"
	"github.com/pathwise/pathwise/internal/llm"
	"github.com/pathwise/pathwise/internal/quiz"
	"github.com/pathwise/pathwise/internal/screen"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	bank, err := loadBank(e.cfg)
	if err != nil {
		return err
	}

	svc := &screen.Services{
		Study:         e.study,
		Bank:          bank,
		QuestionCount: e.cfg.Quiz.QuestionCount,
		Rand:          quiz.NewRand(),
	}

	provider, err := llm.NewProvider(cmd.Context(), e.cfg.LLM, e.store.EventRepo())
	switch {
	case errors.Is(err, llm.ErrDisabled):
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Mock interviews will be unavailable.")
	default:
		svc.Evaluator = interview.NewEvaluator(provider, e.cfg.EvaluatorConfig())
	}

	return app.Run(svc)
}
