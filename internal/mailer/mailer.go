// Package mailer renders the run report as HTML and delivers it over SMTP
// with the CSV log attached.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/ringstone-ai/tms-translator/internal/config"
	"github.com/ringstone-ai/tms-translator/internal/report"
	"github.com/ringstone-ai/tms-translator/pkg/log"
)

const reportSubject = "🌐 RingStone TMS Translation Report"

// Mailer sends the translation report email. The dialer authenticates with
// the sender address and password and upgrades the session via STARTTLS.
type Mailer struct {
	cfg     config.MailConfig
	csvPath string
}

// New creates a Mailer writing the CSV attachment to the default path.
func New(cfg config.MailConfig) *Mailer {
	return &Mailer{
		cfg:     cfg,
		csvPath: report.DefaultCSVPath,
	}
}

// Send writes the CSV report to disk, then emails the HTML summary with the
// CSV attached. The CSV is written before the send attempt, so it survives
// on disk when delivery fails.
func (m *Mailer) Send(runLog *report.Log, model string) error {
	if err := runLog.WriteCSV(m.csvPath); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	body, err := renderHTML(runLog, model)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.Recipients()...)
	msg.SetHeader("Subject", reportSubject)
	msg.SetBody("text/html", body)
	msg.Attach(m.csvPath)

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.From, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}

	log.Info("Report email sent to %s", m.cfg.To)
	return nil
}
