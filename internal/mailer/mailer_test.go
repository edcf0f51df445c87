package mailer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringstone-ai/tms-translator/internal/config"
	"github.com/ringstone-ai/tms-translator/internal/report"
)

// Send against an unreachable SMTP endpoint must fail, but the CSV report
// is written to disk before the send attempt and must survive it.
func TestSendFailureLeavesCSVOnDisk(t *testing.T) {
	m := New(config.MailConfig{
		From:     "bot@ringstone.ai",
		To:       "ops@ringstone.ai",
		Password: "secret",
		SMTPHost: "127.0.0.1",
		SMTPPort: 1, // nothing listens here
	})
	m.csvPath = filepath.Join(t.TempDir(), "translation_report.csv")

	l := report.NewLog()
	l.Append("es", report.Entry{Key: "greeting", Original: "Hello", Translated: "Hola", CumulativeTokens: 2})

	err := m.Send(l, "gpt-4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send report email")

	data, err := os.ReadFile(m.csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Language,Key,Original Text,Translated Text")
	assert.Contains(t, string(data), "es,greeting,Hello,Hola")
}
