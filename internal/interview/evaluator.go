// Package interview runs LLM-graded mock interviews.
package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/llm"
	"github.com/pathwise/pathwise/internal/profile"
)

// Purpose labels grading calls in the LLM event log.
const Purpose = "interview"

// ErrEmptyAnswer is returned when there is nothing to grade.
var ErrEmptyAnswer = errors.New("answer is empty")

// Config holds grading settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard grading settings.
func DefaultConfig() Config {
	return Config{MaxTokens: 512, Temperature: 0.3}
}

// Evaluation is the grader's verdict on one answer.
type Evaluation struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// Evaluator grades answers with an LLM.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewEvaluator returns an Evaluator using provider.
func NewEvaluator(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// Evaluate grades answer to question for track k.
func (e *Evaluator) Evaluate(ctx context.Context, k domain.Key, question, answer string) (*Evaluation, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("evaluate: %w", domain.ErrUnknown)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, ErrEmptyAnswer
	}

	resp, err := e.provider.Generate(llm.WithPurpose(ctx, Purpose), llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(k.DisplayName(), question, answer)}},
		Schema:      GradeSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("interview grading: %w", err)
	}

	var out Evaluation
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse grading response: %w", err)
	}
	return &out, nil
}

// Summary joins the feedback with the improvement list for storage.
func (ev *Evaluation) Summary() string {
	if len(ev.Improvements) == 0 {
		return ev.Feedback
	}
	return ev.Feedback + " Focus next on: " + strings.Join(ev.Improvements, "; ") + "."
}

// Record appends ev to the stored profile as an interview result.
func Record(ctx context.Context, repo profile.Repo, k domain.Key, ev *Evaluation, at time.Time) (profile.InterviewResult, error) {
	var rec profile.InterviewResult
	err := repo.Update(ctx, func(p *profile.Profile) error {
		var err error
		rec, err = p.AddInterviewResult(ev.Score, ev.Summary(), k, at)
		return err
	})
	if err != nil {
		return profile.InterviewResult{}, fmt.Errorf("record interview: %w", err)
	}
	return rec, nil
}
