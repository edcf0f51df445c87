package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
// Supports environment variables with sensible defaults
//
// Environment Variables:
// LLM Configuration:
// - LLM_API_KEY: API key for the LLM provider (required)
// - LLM_API_URL: API endpoint URL (default: https://api.openai.com/v1)
// - LLM_MODEL: Model name to use (default: gpt-4)
// - LLM_MAX_TOKENS: Maximum tokens for responses (default: 1000)
// - LLM_TEMPERATURE: Temperature for responses (default: 0.3)
// - LLM_TIMEOUT: Request timeout in seconds (default: 30)
//
// GitHub Configuration:
// - GITHUB_TOKEN: Personal access token (required)
// - GITHUB_REPO: Target repository as "owner/name" (required)
// - GITHUB_COMMIT_NAME: Commit author name (default: RingStone Bot)
// - GITHUB_COMMIT_EMAIL: Commit author email (default: bot@ringstone.ai)
//
// Translate Configuration:
// - TRANSLATE_LANGS: Comma-separated target language codes (default: es,fr,ja)
// - TRANSLATE_CRON: Cron expression for scheduled runs (empty: run once)
//
// Mail Configuration:
// - EMAIL_FROM: Sender address (also used as SMTP login)
// - EMAIL_TO: Comma-separated recipient list
// - EMAIL_PASSWORD: SMTP password
// - SMTP_SERVER: SMTP host (default: smtp.gmail.com)
// - SMTP_PORT: SMTP port (default: 587)
type Config struct {
	// LLM Configuration
	LLM LLMConfig `json:"llm"`

	// GitHub Configuration
	GitHub GitHubConfig `json:"github"`

	// Translate Configuration
	Translate TranslateConfig `json:"translate"`

	// Mail Configuration
	Mail MailConfig `json:"mail"`
}

// LLMConfig holds the configuration for LLM client
// Supports any OpenAI-compatible provider
type LLMConfig struct {
	APIKey      string  `json:"api_key"`
	APIURL      string  `json:"api_url"`
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	Timeout     int     `json:"timeout"`
}

// GitHubConfig holds the configuration for the target repository
type GitHubConfig struct {
	Token       string `json:"-"`
	Repo        string `json:"repo"`
	CommitName  string `json:"commit_name"`
	CommitEmail string `json:"commit_email"`
}

// Owner returns the owner part of the "owner/name" repository identifier
func (c GitHubConfig) Owner() string {
	owner, _, _ := strings.Cut(c.Repo, "/")
	return owner
}

// Name returns the name part of the "owner/name" repository identifier
func (c GitHubConfig) Name() string {
	_, name, _ := strings.Cut(c.Repo, "/")
	return name
}

// TranslateConfig holds the translation run configuration
type TranslateConfig struct {
	Languages []string `json:"languages"`
	CronExpr  string   `json:"cron_expr"`
}

// MailConfig holds the report mail configuration
type MailConfig struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Password string `json:"-"`
	SMTPHost string `json:"smtp_host"`
	SMTPPort int    `json:"smtp_port"`
}

// Recipients splits the configured recipient list on commas
func (c MailConfig) Recipients() []string {
	parts := strings.Split(c.To, ",")
	recipients := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			recipients = append(recipients, p)
		}
	}
	return recipients
}

// Option is a function type for configuring Config
type Option func(*Config)

// NewFromEnv creates a new Config instance with values from environment variables and options
func NewFromEnv(opts ...Option) (*Config, error) {
	config := &Config{
		LLM: LLMConfig{
			APIKey:      getEnvString("LLM_API_KEY", ""),
			APIURL:      getEnvString("LLM_API_URL", "https://api.openai.com/v1"),
			Model:       getEnvString("LLM_MODEL", "gpt-4"),
			MaxTokens:   getEnvInt("LLM_MAX_TOKENS", 1000),
			Temperature: getEnvFloat("LLM_TEMPERATURE", 0.3),
			Timeout:     getEnvInt("LLM_TIMEOUT", 30),
		},
		GitHub: GitHubConfig{
			Token:       getEnvString("GITHUB_TOKEN", ""),
			Repo:        getEnvString("GITHUB_REPO", ""),
			CommitName:  getEnvString("GITHUB_COMMIT_NAME", "RingStone Bot"),
			CommitEmail: getEnvString("GITHUB_COMMIT_EMAIL", "bot@ringstone.ai"),
		},
		Translate: TranslateConfig{
			Languages: splitList(getEnvString("TRANSLATE_LANGS", "es,fr,ja")),
			CronExpr:  getEnvString("TRANSLATE_CRON", ""),
		},
		Mail: MailConfig{
			From:     getEnvString("EMAIL_FROM", ""),
			To:       getEnvString("EMAIL_TO", ""),
			Password: getEnvString("EMAIL_PASSWORD", ""),
			SMTPHost: getEnvString("SMTP_SERVER", "smtp.gmail.com"),
			SMTPPort: getEnvInt("SMTP_PORT", 587),
		},
	}

	// Apply custom options
	for _, opt := range opts {
		opt(config)
	}

	// Validate required configuration
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks if all required configuration is properly set
func (c *Config) validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required")
	}
	if c.GitHub.Token == "" {
		return fmt.Errorf("GITHUB_TOKEN is required")
	}
	if c.GitHub.Repo == "" {
		return fmt.Errorf("GITHUB_REPO is required")
	}
	if !strings.Contains(c.GitHub.Repo, "/") {
		return fmt.Errorf("GITHUB_REPO must be in owner/name form, got %q", c.GitHub.Repo)
	}
	if len(c.Translate.Languages) == 0 {
		return fmt.Errorf("TRANSLATE_LANGS must name at least one language")
	}
	return nil
}

// splitList splits a comma-separated list, trimming whitespace and dropping empties
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat gets a float value from environment variables with default
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
