package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringstone-ai/tms-translator/internal/report"
)

func buildTestLog() *report.Log {
	l := report.NewLog()
	l.Append("es", report.Entry{Key: "greeting", Original: "Hello", Translated: "Hola", CumulativeTokens: 2})
	l.Append("es", report.Entry{Key: "farewell", Original: "Goodbye", Translated: "Adiós", CumulativeTokens: 4})
	l.Append("ja", report.Entry{Key: "greeting", Original: "Hello", Translated: "こんにちは", CumulativeTokens: 2})
	l.AddTokens(123456)
	return l
}

func TestRenderHTMLHeader(t *testing.T) {
	html, err := renderHTML(buildTestLog(), "gpt-4")
	require.NoError(t, err)

	assert.Contains(t, html, "Model used: <b>gpt-4</b>")
	assert.Contains(t, html, "Total tokens used: <b>123,456</b>")
	// 123456 tokens at $0.00001 each
	assert.Contains(t, html, "Estimated cost: <b>$1.2346 USD</b>")
}

func TestRenderHTMLPerLanguageSections(t *testing.T) {
	html, err := renderHTML(buildTestLog(), "gpt-4")
	require.NoError(t, err)

	assert.Contains(t, html, "ES (≈ 4 tokens | $0.0000)")
	assert.Contains(t, html, "JA (≈ 2 tokens | $0.0000)")
	assert.Contains(t, html, "<td>greeting</td><td>Hello</td><td>Hola</td>")
	assert.Contains(t, html, "こんにちは")
}

func TestRenderHTMLEscapesMarkup(t *testing.T) {
	l := report.NewLog()
	l.Append("es", report.Entry{Key: "warning", Original: "<b>danger</b>", Translated: "<b>peligro</b>"})

	html, err := renderHTML(l, "gpt-4")
	require.NoError(t, err)

	assert.NotContains(t, html, "<b>danger</b>")
	assert.Contains(t, html, "&lt;b&gt;danger&lt;/b&gt;")
}

func TestRenderHTMLEmptyLog(t *testing.T) {
	html, err := renderHTML(report.NewLog(), "gpt-4")
	require.NoError(t, err)

	assert.Contains(t, html, "Total tokens used: <b>0</b>")
	assert.Contains(t, html, "Estimated cost: <b>$0.0000 USD</b>")
	assert.NotContains(t, html, "<table")
}
