package notify

import (
	"crypto/tls"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"timesheet-bot/internal/config"
)

var (
	ErrMailDisabled = errors.New("smtp is not configured")
	ErrNoRecipients = errors.New("no recipients")
)

// Dialer sends composed messages. *gomail.Dialer satisfies it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	dialer Dialer
	from   string
	logger *logrus.Logger
}

// NewMailer returns nil when SMTP is not configured.
func NewMailer(cfg config.SMTPConfig, logger *logrus.Logger) *Mailer {
	if !cfg.Enabled() {
		return nil
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host}
	return NewMailerWithDialer(d, cfg.From, logger)
}

func NewMailerWithDialer(d Dialer, from string, logger *logrus.Logger) *Mailer {
	if logger == nil {
		logger = logrus.New()
	}
	return &Mailer{dialer: d, from: from, logger: logger}
}

// Message composes a plain-text mail with optional file attachments.
func (m *Mailer) Message(to []string, subject, body string, attachments ...string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	for _, a := range attachments {
		msg.Attach(a)
	}
	return msg
}

func (m *Mailer) Send(to []string, subject, body string, attachments ...string) error {
	if m == nil || m.dialer == nil {
		return ErrMailDisabled
	}
	if len(to) == 0 {
		return ErrNoRecipients
	}

	if err := m.dialer.DialAndSend(m.Message(to, subject, body, attachments...)); err != nil {
		m.logger.WithError(err).WithField("to", to).Error("Failed to send mail")
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.WithFields(logrus.Fields{
		"to":          to,
		"subject":     subject,
		"attachments": len(attachments),
	}).Info("Mail sent")
	return nil
}
