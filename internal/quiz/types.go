package quiz

import (
	"errors"

	"github.com/pathwise/pathwise/internal/domain"
)

var (
	// ErrInvalidArgument is returned for out-of-range counts and indices.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSessionDone is returned when answering past the last question.
	ErrSessionDone = errors.New("quiz session already complete")

	// ErrSessionIncomplete is returned when a result is requested before
	// every question has been answered.
	ErrSessionIncomplete = errors.New("quiz session not complete")
)

// Option is one selectable answer. Picking it adds one point to each of
// its domains; an option may carry no domains at all.
type Option struct {
	Text    string       `json:"text" yaml:"text"`
	Domains []domain.Key `json:"domains" yaml:"domains"`
}

// Question is a single prompt with its ordered options.
type Question struct {
	ID       string   `json:"id" yaml:"id"`
	Question string   `json:"question" yaml:"question"`
	Options  []Option `json:"options" yaml:"options"`
}
