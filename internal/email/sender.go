package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type Config struct {
	SMTPHost string
	SMTPPort int
	Username string
	Password string
	From     string
	FromName string
}

func (c Config) Validate() error {
	if c.SMTPHost == "" || c.SMTPPort == 0 {
		return fmt.Errorf("smtp host and port are required")
	}
	if c.From == "" {
		return fmt.Errorf("from address is required")
	}
	return nil
}

// Sender delivers transactional notifications. All sends are
// best-effort: a failed delivery never fails the triggering operation.
type Sender interface {
	SendApplicationReceived(to, projectTitle, applicantName string) error
}

// SMTPSender delivers over SMTP via gomail.
type SMTPSender struct {
	config Config
	dialer *gomail.Dialer
}

func NewSMTPSender(config Config) (*SMTPSender, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	return &SMTPSender{
		config: config,
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
	}, nil
}

func (s *SMTPSender) SendApplicationReceived(to, projectTitle, applicantName string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.From, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("New application for %q", projectTitle))
	m.SetBody("text/html", renderApplicationReceived(projectTitle, applicantName))

	return s.dialer.DialAndSend(m)
}

// NoopSender is used when email is disabled in config.
type NoopSender struct{}

func (NoopSender) SendApplicationReceived(to, projectTitle, applicantName string) error {
	return nil
}
