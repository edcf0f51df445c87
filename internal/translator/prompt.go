package translator

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// BuildPrompt builds the instruction sent to the model for one UI string.
// Deterministic for a given (text, targetLang) pair; the model is told to
// return the translated text only.
func BuildPrompt(text string, targetLang string) string {
	var prompt strings.Builder

	prompt.WriteString("Translate the following UI string from English to " + LanguageName(targetLang) + ".\n")
	prompt.WriteString("Keep it concise, clear, and maintain a friendly and modern tone.\n\n")
	prompt.WriteString("\"" + text + "\"\n\n")
	prompt.WriteString("Only return the translated text, no commentary.\n")

	return prompt.String()
}

// LanguageName resolves a BCP 47 language code to its English display name,
// e.g. "es" -> "Spanish". Codes that fail to parse are passed through as-is.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
