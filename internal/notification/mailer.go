// Package notification sends operational alert emails.
package notification

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"fieldpulse/config"
	"fieldpulse/internal/logger"
)

// Mailer sends alert mail over SMTP. Disabled (nil-safe no-op) when no
// SMTP host is configured.
type Mailer struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	recipients []string
}

// NewMailer builds a Mailer from configuration. Returns nil when SMTP is
// not configured; callers treat a nil Mailer as disabled.
func NewMailer(cfg *config.Configuration) *Mailer {
	if cfg.SMTPHost == "" || cfg.AlertRecipients == "" {
		return nil
	}

	var recipients []string
	for _, r := range strings.Split(cfg.AlertRecipients, ",") {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	if len(recipients) == 0 {
		return nil
	}

	return &Mailer{
		host:       cfg.SMTPHost,
		port:       cfg.SMTPPort,
		username:   cfg.SMTPUsername,
		password:   cfg.SMTPPassword,
		from:       cfg.SMTPFrom,
		recipients: recipients,
	}
}

// SendSyncAlert mails a sync failure report to the alert recipients.
// Failures are logged, never propagated; alerting must not fail a sync.
func (m *Mailer) SendSyncAlert(runID, entity string, cause error) {
	if m == nil {
		return
	}

	log := logger.GetAppLogger()

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.recipients...)
	msg.SetHeader("Subject", fmt.Sprintf("[FieldPulse] Sync failure: %s", entity))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Sync run %s failed for entity %q.\n\nCause: %v\n", runID, entity, cause))

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.WithError(err).WithFields(map[string]interface{}{
			"runId":  runID,
			"entity": entity,
		}).Error("Failed to send sync alert email")
		return
	}

	log.WithField("runId", runID).Info("Sync alert email sent")
}
