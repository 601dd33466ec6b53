package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test-object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
				"age":  map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"name", "age"},
		},
	}
}

func TestValidateJSON(t *testing.T) {
	doc, err := DecodeJSON(`{"name":"Alice","age":10}`)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSON(testSchema(), doc))

	doc, err = DecodeJSON(`{"name":"Bob"}`)
	require.NoError(t, err)
	err = ValidateJSON(testSchema(), doc)
	var inv *ErrInvalidResponse
	assert.True(t, errors.As(err, &inv))

	assert.NoError(t, ValidateJSON(nil, doc))
}

func TestDecodeJSON_Invalid(t *testing.T) {
	_, err := DecodeJSON(`not json`)
	var inv *ErrInvalidResponse
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, "not json", inv.Content)
}
