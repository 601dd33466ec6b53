package questiongen

import "github.com/dayne-app/dayne/internal/llm"

// PayloadSchema is the shape the model is asked to return. Extra fields
// are tolerated; the questions array may be empty, null or absent here and
// is checked separately so that all three read as "no questions".
var PayloadSchema = &llm.Schema{
	Name: "question-batch",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": []any{"array", "null"},
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":   map[string]any{"type": "string", "minLength": 1},
						"answer":     map[string]any{"type": "string", "minLength": 1},
						"options":    map[string]any{"type": []any{"array", "null"}, "items": map[string]any{"type": "string"}},
						"difficulty": map[string]any{"type": "string"},
					},
					"required": []any{"question", "answer"},
				},
			},
		},
	},
}

type payload struct {
	Questions []struct {
		Question   string   `json:"question"`
		Answer     string   `json:"answer"`
		Options    []string `json:"options"`
		Difficulty string   `json:"difficulty"`
	} `json:"questions"`
}
