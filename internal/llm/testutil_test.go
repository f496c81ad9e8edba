package llm

import (
	"context"
	"sync"

	"github.com/pathwise/pathwise/internal/store"
)

func gradeSchema() *Schema {
	return &Schema{
		Name: "test-grade",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":    map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"feedback": map[string]any{"type": "string"},
				"tags":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required":             []any{"score", "feedback"},
			"additionalProperties": false,
		},
	}
}

type memorySink struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (s *memorySink) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, data)
	return nil
}
