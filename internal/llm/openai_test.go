package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(config), model: "gpt-4o-mini"}
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAIProvider_JSONSchemaRequest(t *testing.T) {
	var sent struct {
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
		ResponseFormat *struct {
			Type string `json:"type"`
		} `json:"response_format"`
	}
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&sent)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"name":"Ada","age":36}`, "stop"))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:      "You write study material.",
		Messages:    []Message{{Role: RoleUser, Content: "Describe a person."}},
		Schema:      testSchema(),
		MaxTokens:   256,
		Temperature: 0.7,
	})
	require.NoError(t, err)
	assert.Equal(t, 40, resp.Usage.InputTokens)
	assert.Equal(t, 25, resp.Usage.OutputTokens)
	assert.Equal(t, "end", resp.StopReason)

	require.Len(t, sent.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, sent.Messages[0].Role)
	require.NotNil(t, sent.ResponseFormat)
	assert.Equal(t, string(openai.ChatCompletionResponseFormatTypeJSONSchema), sent.ResponseFormat.Type)
}

func TestOpenAIProvider_TruncatedOutput(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"name":`, "length"))
	})

	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var maxTok *ErrMaxTokensExceeded
	assert.True(t, errors.As(err, &maxTok), "got %T (%v)", err, err)
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": "x", "choices": []any{}})
	})

	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var invalid *ErrInvalidResponse
	assert.True(t, errors.As(err, &invalid), "got %T (%v)", err, err)
}

func TestOpenAIProvider_ErrorMapping(t *testing.T) {
	t.Run("rate limit", func(t *testing.T) {
		p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"type": "tokens", "message": "slow down", "code": "rate_limit_exceeded"},
			})
		})
		_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
		var rl *ErrRateLimit
		assert.True(t, errors.As(err, &rl), "got %T (%v)", err, err)
	})

	t.Run("server error", func(t *testing.T) {
		p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"type": "server_error", "message": "upstream"},
			})
		})
		_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
		var u *ErrProviderUnavailable
		assert.True(t, errors.As(err, &u), "got %T (%v)", err, err)
	})
}

func TestNewOpenAIProvider(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-mini", BaseURL: "https://example.test/v1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.ModelID())

	_, err = NewOpenAIProvider(OpenAIConfig{Model: "gpt-mini"})
	assert.Error(t, err)
}
