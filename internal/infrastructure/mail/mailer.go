// Package mail delivers reminder emails over SMTP (go-mail) or the Resend
// HTTP API, and renders their content.
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
	gomail "github.com/wneessen/go-mail"

	"github.com/birthdaybook/birthday-api/internal/core/ports"
)

var (
	ErrNoTransport = errors.New("mail: neither EMAIL_HOST, a known EMAIL_SERVICE nor a Resend API key is configured")
	ErrNoSender    = errors.New("mail: sender address is empty")
)

// knownServices maps provider names to their SMTP submission host.
var knownServices = map[string]string{
	"gmail":     "smtp.gmail.com",
	"outlook":   "smtp-mail.outlook.com",
	"hotmail":   "smtp-mail.outlook.com",
	"office365": "smtp.office365.com",
	"yahoo":     "smtp.mail.yahoo.com",
	"icloud":    "smtp.mail.me.com",
	"zoho":      "smtp.zoho.com",
}

type Config struct {
	Service      string
	Host         string
	Port         int
	Username     string
	Password     string
	From         string
	ResendAPIKey string
}

// New picks the transport described by cfg.
func New(cfg Config) (ports.Mailer, error) {
	if strings.TrimSpace(cfg.From) == "" {
		return nil, ErrNoSender
	}
	if cfg.ResendAPIKey != "" {
		return NewResendMailer(cfg.ResendAPIKey, cfg.From), nil
	}
	return NewSMTPMailer(cfg)
}

// SMTPMailer sends each message over a fresh SMTP session.
type SMTPMailer struct {
	host string
	from string
	opts []gomail.Option
}

func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	host, err := resolveHost(cfg.Service, cfg.Host)
	if err != nil {
		return nil, err
	}

	port := cfg.Port
	if port <= 0 {
		port = 587
	}
	opts := []gomail.Option{gomail.WithPort(port)}
	if port == 465 {
		opts = append(opts, gomail.WithSSLPort(false))
	} else {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSMandatory))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	// Validate once up front so a bad host surfaces at startup.
	if _, err := gomail.NewClient(host, opts...); err != nil {
		return nil, fmt.Errorf("mail: smtp client: %w", err)
	}
	return &SMTPMailer{host: host, from: cfg.From, opts: opts}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, e ports.Email) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("mail: from %q: %w", m.from, err)
	}
	if err := msg.To(e.To); err != nil {
		return fmt.Errorf("mail: to %q: %w", e.To, err)
	}
	msg.Subject(e.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, e.Body)

	client, err := gomail.NewClient(m.host, m.opts...)
	if err != nil {
		return fmt.Errorf("mail: smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail: send to %s: %w", e.To, err)
	}
	return nil
}

// ResendMailer sends through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey), from: from}
}

func (m *ResendMailer) Send(ctx context.Context, e ports.Email) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{e.To},
		Subject: e.Subject,
		Text:    e.Body,
	})
	if err != nil {
		return fmt.Errorf("mail: resend to %s: %w", e.To, err)
	}
	return nil
}

func resolveHost(service, host string) (string, error) {
	if h := strings.TrimSpace(host); h != "" {
		return h, nil
	}
	if h, ok := knownServices[strings.ToLower(strings.TrimSpace(service))]; ok {
		return h, nil
	}
	return "", ErrNoTransport
}
