package llm

import "context"

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one turn of a chat-style generation request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Client generates text from a chat-style message sequence. It is the only
// surface the wizard talks to a model through; swapping providers never
// touches the calling code.
type Client interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// Config selects the provider and tunes a generation client.
type Config struct {
	Provider    string  `json:"provider" yaml:"provider"`
	Model       string  `json:"model" yaml:"model"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	MaxTokens   int     `json:"max_tokens" yaml:"max_tokens"`
	APIKey      string  `json:"-" yaml:"api_key"`
	BaseURL     string  `json:"base_url,omitempty" yaml:"base_url"`
}

// DefaultConfig returns the stock generation settings.
func DefaultConfig() Config {
	return Config{
		Provider:    "openai",
		Model:       "gpt-4",
		Temperature: 0.7,
		MaxTokens:   2000,
	}
}
