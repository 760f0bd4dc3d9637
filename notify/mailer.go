package notify

import (
	"log"

	"github.com/Yogeshjindal/RestaurantApplication/config"

	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer delivers mail through an SMTP relay
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:   cfg.From,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// LogMailer stands in when no SMTP host is configured
type LogMailer struct{}

func (LogMailer) Send(to, subject, _ string) error {
	log.Printf("mail (not sent, SMTP unconfigured): to=%s subject=%q", to, subject)
	return nil
}

// MailerFromConfig picks the SMTP mailer when a host is configured and the
// log fallback otherwise.
func MailerFromConfig(cfg config.SMTPConfig) Mailer {
	if cfg.Host == "" {
		return LogMailer{}
	}
	return NewSMTPMailer(cfg)
}
