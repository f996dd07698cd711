package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gemini-flash-lite", "gemini-2.5-flash-lite"},
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-3-flash-preview", "gemini-3-flash-preview"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveModel(tt.input, geminiModels), tt.input)
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{"type": "string", "description": "subject"},
			"confidence": map[string]any{
				"type": "string",
				"enum": []string{"high", "medium", "low"},
			},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
				"maxItems": 4,
			},
			"answer_index": map[string]any{"type": "integer"},
			"flag":         map[string]any{"type": "boolean"},
		},
		"required": []any{"topic", "options"},
	}

	s := geminiSchema(def)

	assert.Equal(t, genai.TypeObject, s.Type)
	require.Len(t, s.Properties, 5)
	assert.Equal(t, "subject", s.Properties["topic"].Description)
	assert.Equal(t, []string{"high", "medium", "low"}, s.Properties["confidence"].Enum)
	assert.Equal(t, genai.TypeArray, s.Properties["options"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["options"].Items.Type)
	require.NotNil(t, s.Properties["options"].MinItems)
	assert.EqualValues(t, 4, *s.Properties["options"].MinItems)
	assert.Equal(t, genai.TypeInteger, s.Properties["answer_index"].Type)
	assert.Equal(t, genai.TypeBoolean, s.Properties["flag"].Type)
	assert.Equal(t, []string{"topic", "options"}, s.Required)
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(t.Context(), GeminiConfig{Model: "gemini-flash-lite"})
	assert.Error(t, err)
}
