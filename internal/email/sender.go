package email

import (
	"fmt"

	"fixnow_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers mail through an SMTP relay via gomail.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
}

// NewProvider builds a Provider from configuration. When the relay is not
// fully configured it returns the disabled provider.
func NewProvider(cfg *config.Config) Provider {
	if cfg.Email.SMTPHost == "" || cfg.Email.SMTPUsername == "" || cfg.Email.SMTPPassword == "" {
		return &DisabledProvider{}
	}

	port := cfg.Email.SMTPPort
	if port == 0 {
		port = 587
	}

	return &SMTPSender{
		host:     cfg.Email.SMTPHost,
		port:     port,
		username: cfg.Email.SMTPUsername,
		password: cfg.Email.SMTPPassword,
		from:     cfg.Email.FromEmail,
		fromName: cfg.Email.FromName,
	}
}

func (s *SMTPSender) Enabled() bool { return true }

func (s *SMTPSender) SendVerification(to, link string) error {
	htmlBody, err := renderVerification(link)
	if err != nil {
		return fmt.Errorf("failed to render verification email: %w", err)
	}

	m := gomail.NewMessage()
	if s.fromName != "" {
		m.SetAddressHeader("From", s.from, s.fromName)
	} else {
		m.SetHeader("From", s.from)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", verificationSubject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}
