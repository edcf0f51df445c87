package translator

import (
	"context"
	"strings"

	"github.com/ringstone-ai/tms-translator/internal/llm"
	"github.com/ringstone-ai/tms-translator/internal/report"
)

// llmTranslator sends one chat-completion request per string and adds the
// token usage reported by the API to the run log. Single attempt, no retry;
// API errors are propagated to the caller unmodified.
type llmTranslator struct {
	client *llm.Client
	runLog *report.Log
}

// NewLLMTranslator creates a Translator backed by the chat-completions API.
func NewLLMTranslator(client *llm.Client, runLog *report.Log) Translator {
	return &llmTranslator{
		client: client,
		runLog: runLog,
	}
}

func (t *llmTranslator) Translate(ctx context.Context, text string, targetLang string) (string, error) {
	content, usage, err := t.client.SimpleChat(ctx, BuildPrompt(text, targetLang))
	if err != nil {
		return "", err
	}

	t.runLog.AddTokens(usage.TotalTokens)
	return strings.TrimSpace(content), nil
}
