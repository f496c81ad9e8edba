package quiz

import "github.com/pathwise/pathwise/internal/domain"

// bankSchema returns the JSON Schema a question bank document must satisfy.
func bankSchema() map[string]any {
	domains := make([]any, 0, len(domain.All()))
	for _, k := range domain.All() {
		domains = append(domains, string(k))
	}

	return map[string]any{
		"type":     "object",
		"required": []any{"questions"},
		"properties": map[string]any{
			"meta": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":         map[string]any{"type": "string"},
					"description":   map[string]any{"type": "string"},
					"estimatedTime": map[string]any{"type": "string"},
					"version":       map[string]any{"type": "string"},
				},
			},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "question", "options"},
					"properties": map[string]any{
						"id":       map[string]any{"type": "string", "minLength": 1},
						"question": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items": map[string]any{
								"type":     "object",
								"required": []any{"text", "domains"},
								"properties": map[string]any{
									"text": map[string]any{"type": "string", "minLength": 1},
									"domains": map[string]any{
										"type":        "array",
										"uniqueItems": true,
										"items":       map[string]any{"enum": domains},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}
