package translator

import (
	"context"
	"fmt"
	"strings"

	"github.com/abadojack/whatlanggo"

	"github.com/ringstone-ai/tms-translator/internal/catalog"
	"github.com/ringstone-ai/tms-translator/internal/report"
	"github.com/ringstone-ai/tms-translator/pkg/log"
)

// LocaleTranslator translates a whole catalog into one target language,
// recording an entry per key in the run log. Keys are processed
// sequentially in catalog order, so log entries keep that order.
type LocaleTranslator struct {
	translator Translator
	runLog     *report.Log
}

// NewLocaleTranslator creates a LocaleTranslator writing into runLog.
func NewLocaleTranslator(t Translator, runLog *report.Log) *LocaleTranslator {
	return &LocaleTranslator{
		translator: t,
		runLog:     runLog,
	}
}

// Translate translates every catalog value into targetLang and returns the
// key→translated mapping. The per-language cumulative token count recorded
// on each entry is a word-count proxy: words(original) + words(translated),
// summed over the keys translated so far. A translation failure aborts the
// language immediately.
func (lt *LocaleTranslator) Translate(ctx context.Context, cat *catalog.Catalog, targetLang string) (map[string]string, error) {
	translations := make(map[string]string, cat.Len())
	langTokens := 0

	for _, key := range cat.Keys() {
		original, _ := cat.Get(key)

		translated, err := lt.translator.Translate(ctx, original, targetLang)
		if err != nil {
			return nil, fmt.Errorf("failed to translate key %q to %s: %w", key, targetLang, err)
		}

		translations[key] = translated
		langTokens += wordCount(original) + wordCount(translated)
		lt.runLog.Append(targetLang, report.Entry{
			Key:              key,
			Original:         original,
			Translated:       translated,
			CumulativeTokens: langTokens,
		})

		warnIfUntranslated(key, targetLang, translated)
	}

	return translations, nil
}

// wordCount counts whitespace-separated words, matching the token proxy
// used for the per-language totals.
func wordCount(s string) int {
	return len(strings.Fields(s))
}

// warnIfUntranslated flags translations that still detect as English for a
// non-English target. Warn-only; the returned text is kept either way.
func warnIfUntranslated(key string, targetLang string, translated string) {
	if strings.HasPrefix(targetLang, "en") || translated == "" {
		return
	}

	info := whatlanggo.Detect(translated)
	if info.Lang == whatlanggo.Eng && info.IsReliable() {
		log.Warn("Translation for key %q (%s) still looks like English: %q", key, targetLang, translated)
	}
}
