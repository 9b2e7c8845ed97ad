package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIClient_EndpointNormalization(t *testing.T) {
	t.Run("Default endpoint", func(t *testing.T) {
		c := NewOpenAIClient(Config{APIKey: "k", Model: "m"}, nil)
		assert.Equal(t, "https://api.openai.com/v1/chat/completions", c.endpoint)
	})

	t.Run("Bare host", func(t *testing.T) {
		c := NewOpenAIClient(Config{APIKey: "k", Model: "m", BaseURL: "http://localhost:8080"}, nil)
		assert.Equal(t, "http://localhost:8080/v1/chat/completions", c.endpoint)
	})

	t.Run("Host with v1", func(t *testing.T) {
		c := NewOpenAIClient(Config{APIKey: "k", Model: "m", BaseURL: "http://localhost:8080/v1/"}, nil)
		assert.Equal(t, "http://localhost:8080/v1/chat/completions", c.endpoint)
	})

	t.Run("Full endpoint untouched", func(t *testing.T) {
		c := NewOpenAIClient(Config{APIKey: "k", Model: "m", BaseURL: "http://localhost:8080/v1/chat/completions"}, nil)
		assert.Equal(t, "http://localhost:8080/v1/chat/completions", c.endpoint)
	})
}

func TestOpenAIClient_Generate(t *testing.T) {
	var gotAuth string
	var gotBody openAIChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Here is the question."}}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(Config{
		APIKey:      "secret",
		Model:       "gpt-4",
		Temperature: 0.7,
		MaxTokens:   2000,
		BaseURL:     server.URL,
	}, nil)

	out, err := client.Generate(context.Background(), []Message{
		SystemMessage("You are a wizard."),
		UserMessage("Ask me something."),
	})
	require.NoError(t, err)

	assert.Equal(t, "Here is the question.", out)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "gpt-4", gotBody.Model)
	assert.InDelta(t, 0.7, gotBody.Temperature, 1e-9)
	assert.Equal(t, 2000, gotBody.MaxTokens)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, RoleSystem, gotBody.Messages[0].Role)
	assert.Equal(t, "Ask me something.", gotBody.Messages[1].Content)
}

func TestOpenAIClient_GenerateErrors(t *testing.T) {
	t.Run("Missing api key", func(t *testing.T) {
		client := NewOpenAIClient(Config{Model: "gpt-4"}, nil)
		_, err := client.Generate(context.Background(), []Message{UserMessage("hi")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api key")
	})

	t.Run("Missing model", func(t *testing.T) {
		client := NewOpenAIClient(Config{APIKey: "k"}, nil)
		_, err := client.Generate(context.Background(), []Message{UserMessage("hi")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model")
	})

	t.Run("Upstream failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewOpenAIClient(Config{APIKey: "k", Model: "m", BaseURL: server.URL}, nil)
		_, err := client.Generate(context.Background(), []Message{UserMessage("hi")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("Empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(Config{APIKey: "k", Model: "m", BaseURL: server.URL}, nil)
		_, err := client.Generate(context.Background(), []Message{UserMessage("hi")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no response content")
	})
}

func TestNew_ProviderSelection(t *testing.T) {
	t.Run("OpenAI", func(t *testing.T) {
		client, err := New(context.Background(), Config{Provider: "openai", APIKey: "k", Model: "m"}, nil)
		require.NoError(t, err)
		assert.IsType(t, &OpenAIClient{}, client)
	})

	t.Run("Default provider", func(t *testing.T) {
		client, err := New(context.Background(), Config{APIKey: "k", Model: "m"}, nil)
		require.NoError(t, err)
		assert.IsType(t, &OpenAIClient{}, client)
	})

	t.Run("Case insensitive", func(t *testing.T) {
		client, err := New(context.Background(), Config{Provider: " OpenAI ", APIKey: "k", Model: "m"}, nil)
		require.NoError(t, err)
		assert.IsType(t, &OpenAIClient{}, client)
	})

	t.Run("Unknown provider", func(t *testing.T) {
		_, err := New(context.Background(), Config{Provider: "watson"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported llm provider")
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4", cfg.Model)
	assert.InDelta(t, 0.7, cfg.Temperature, 1e-9)
	assert.Equal(t, 2000, cfg.MaxTokens)
}
