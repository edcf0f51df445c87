// Package report accumulates per-run translation results and token usage
// and serializes them for the operator report.
package report

// Entry is one translated string. CumulativeTokens is the per-language
// running word-count proxy at the time the entry was appended. Entries are
// never mutated after creation.
type Entry struct {
	Key              string
	Original         string
	Translated       string
	CumulativeTokens int
}

// Log collects translation entries per target language plus the total API
// token usage for one run. Lifecycle is a single run; it is built by the
// sequential pipeline and is not safe for concurrent use.
type Log struct {
	languages   []string
	entries     map[string][]Entry
	totalTokens int
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{entries: make(map[string][]Entry)}
}

// Append records an entry under the given language. Language order is
// first-append order; entry order is append order.
func (l *Log) Append(lang string, e Entry) {
	if _, ok := l.entries[lang]; !ok {
		l.languages = append(l.languages, lang)
	}
	l.entries[lang] = append(l.entries[lang], e)
}

// AddTokens adds the token cost of one API call to the run total.
func (l *Log) AddTokens(n int) {
	l.totalTokens += n
}

// TotalTokens returns the accumulated token usage across all API calls.
func (l *Log) TotalTokens() int {
	return l.totalTokens
}

// Languages returns the recorded languages in first-append order.
func (l *Log) Languages() []string {
	langs := make([]string, len(l.languages))
	copy(langs, l.languages)
	return langs
}

// Entries returns the entries recorded for a language, in append order.
func (l *Log) Entries(lang string) []Entry {
	return l.entries[lang]
}

// LanguageTokens returns the final cumulative token proxy for a language,
// i.e. the count carried by its last entry.
func (l *Log) LanguageTokens(lang string) int {
	entries := l.entries[lang]
	if len(entries) == 0 {
		return 0
	}
	return entries[len(entries)-1].CumulativeTokens
}
