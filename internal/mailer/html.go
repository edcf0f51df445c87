package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ringstone-ai/tms-translator/internal/report"
)

const reportTemplate = `<html><body style='font-family:Arial, sans-serif;'>
<h2 style='color:#2c3e50;'>🌐 RingStone TMS Translation Report</h2>
<p style='font-size:14px;'>Model used: <b>{{.Model}}</b><br>
Total tokens used: <b>{{.TotalTokens}}</b><br>
Estimated cost: <b>${{.TotalCost}} USD</b></p>
<hr>
{{range .Languages}}<h3 style='color:#1a73e8;'>{{.Code}} (≈ {{.Tokens}} tokens | ${{.Cost}})</h3>
<table border='1' cellspacing='0' cellpadding='6' style='border-collapse:collapse; font-size:13px;'>
<tr style='background:#f2f2f2;'><th>Key</th><th>Original</th><th>Translated</th></tr>
{{range .Entries}}<tr><td>{{.Key}}</td><td>{{.Original}}</td><td>{{.Translated}}</td></tr>
{{end}}</table><br>
{{end}}</body></html>`

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

type reportData struct {
	Model       string
	TotalTokens string
	TotalCost   string
	Languages   []languageSection
}

type languageSection struct {
	Code    string
	Tokens  string
	Cost    string
	Entries []report.Entry
}

// renderHTML renders the report email body: a totals header followed by one
// table per language in log order.
func renderHTML(runLog *report.Log, model string) (string, error) {
	printer := message.NewPrinter(language.English)

	data := reportData{
		Model:       model,
		TotalTokens: printer.Sprintf("%d", runLog.TotalTokens()),
		TotalCost:   fmt.Sprintf("%.4f", report.EstimateCostUSD(runLog.TotalTokens())),
	}

	for _, lang := range runLog.Languages() {
		langTokens := runLog.LanguageTokens(lang)
		data.Languages = append(data.Languages, languageSection{
			Code:    strings.ToUpper(lang),
			Tokens:  printer.Sprintf("%d", langTokens),
			Cost:    fmt.Sprintf("%.4f", report.EstimateCostUSD(langTokens)),
			Entries: runLog.Entries(lang),
		})
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}
