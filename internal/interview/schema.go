package interview

import "github.com/pathwise/pathwise/internal/llm"

// GradeSchema is the structured output requested from the grader.
var GradeSchema = &llm.Schema{
	Name:        "interview-grade",
	Description: "Grade and feedback for one mock interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall score from 0 to 100",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "2-4 sentence overall assessment addressed to the candidate",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 specific strengths (5-12 words each)",
			},
			"improvements": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 concrete things to improve (5-12 words each)",
			},
		},
		"required":             []any{"score", "feedback", "strengths", "improvements"},
		"additionalProperties": false,
	},
}
