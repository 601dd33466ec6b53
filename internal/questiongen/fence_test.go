package questiongen

import "testing"

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"upper info", "```JSON\n{\"a\":1}\n```", `{"a":1}`},
		{"single line", "```json{\"a\":1}```", `{"a":1}`},
		{"no newline before close", "```json\n{\"a\":1}```", `{"a":1}`},
		{"surrounding space", "\n\n  ```json\n{\"a\":1}\n```\n", `{"a":1}`},
		{"fence with json on first line", "```{\"a\":1}\n```", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
