package translator

import "context"

// Translator translates a single piece of UI text into a target language.
type Translator interface {
	Translate(ctx context.Context, text string, targetLang string) (string, error)
}
