package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AI struct {
		Provider    string  `yaml:"provider"`
		Model       string  `yaml:"model"`
		Temperature float64 `yaml:"temperature"`
		MaxTokens   int     `yaml:"max_tokens"`
		APIKey      string  `yaml:"api_key"`
		BaseURL     string  `yaml:"base_url"`
	} `yaml:"ai"`
	Wizard struct {
		MaxQuestions int    `yaml:"max_questions"`
		SessionFile  string `yaml:"session_file"`
		TemplateDir  string `yaml:"template_dir"`
	} `yaml:"wizard"`
	Storage struct {
		Path string `yaml:"path"`
	} `yaml:"storage"`
	Domains []string `yaml:"domains"`
}

// Default returns the stock configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	cfg.AI.Provider = "openai"
	cfg.AI.Model = "gpt-4"
	cfg.AI.Temperature = 0.7
	cfg.AI.MaxTokens = 2000
	cfg.Wizard.MaxQuestions = 10
	cfg.Wizard.SessionFile = "wizard_session.json"
	cfg.Domains = DefaultDomains()
	return &cfg
}

// Load reads the configuration from path. A missing file is not an error:
// the defaults are used. Values present in the file override defaults, and
// environment variables override both.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config over the defaults
	if path == "" {
		path = "config.yaml"
	}
	file, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// 3. Override with Environment Variables if present
	if provider := os.Getenv("PROJECTOR_AI_PROVIDER"); provider != "" {
		cfg.AI.Provider = provider
	}
	if apiKey := os.Getenv("PROJECTOR_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}

	// 4. Fall back to the provider's conventional key variable
	if cfg.AI.APIKey == "" {
		switch cfg.AI.Provider {
		case "gemini":
			cfg.AI.APIKey = os.Getenv("GEMINI_API_KEY")
		default:
			cfg.AI.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}

	return cfg, nil
}

// KnownDomain reports whether domain appears in the configured catalogue.
func (c *Config) KnownDomain(domain string) bool {
	for _, d := range c.Domains {
		if d == domain {
			return true
		}
	}
	return false
}
