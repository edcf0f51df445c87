package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("GITHUB_REPO", "ringstone-ai/webapp")
}

func TestNewFromEnvDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.APIURL)
	assert.Equal(t, "gpt-4", cfg.LLM.Model)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, []string{"es", "fr", "ja"}, cfg.Translate.Languages)
	assert.Equal(t, "", cfg.Translate.CronExpr)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.SMTPHost)
	assert.Equal(t, 587, cfg.Mail.SMTPPort)
}

func TestNewFromEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LLM_MODEL", "gpt-4o-mini")
	t.Setenv("TRANSLATE_LANGS", "de, pt ,it")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, []string{"de", "pt", "it"}, cfg.Translate.Languages)
	assert.Equal(t, 2525, cfg.Mail.SMTPPort)
}

func TestNewFromEnvRequiredKeys(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("GITHUB_REPO", "ringstone-ai/webapp")

	_, err := NewFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_API_KEY")

	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("GITHUB_REPO", "not-a-repo")

	_, err = NewFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner/name")
}

func TestGitHubConfigOwnerName(t *testing.T) {
	cfg := GitHubConfig{Repo: "ringstone-ai/webapp"}
	assert.Equal(t, "ringstone-ai", cfg.Owner())
	assert.Equal(t, "webapp", cfg.Name())
}

func TestMailConfigRecipients(t *testing.T) {
	cfg := MailConfig{To: "a@example.com, b@example.com,,c@example.com "}
	assert.Equal(t,
		[]string{"a@example.com", "b@example.com", "c@example.com"},
		cfg.Recipients())

	assert.Empty(t, MailConfig{}.Recipients())
}
