// Package mail is a thin SMTP sending layer on top of wneessen/go-mail. It
// knows nothing about bookings; callers hand it fully-formed messages.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"pskbooking/pkg/config"
)

// Message is one outbound email with an HTML body and a plain-text fallback.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Sender delivers a single message. Implementations must be safe for
// concurrent use across requests.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender sends through a configured SMTP relay.
type SMTPSender struct {
	client *gomail.Client
	from   string
}

// NewSenderFromConfig builds a Sender from the process configuration.
// Returns (nil, nil) when no transport is configured: the caller is expected
// to treat a nil Sender as "notifications disabled", not as an error.
func NewSenderFromConfig(cfg *config.Config) (Sender, error) {
	switch {
	case cfg.SMTPHost != "":
		return newSMTPSender(smtpSettings{
			host:     cfg.SMTPHost,
			port:     cfg.SMTPPort,
			secure:   cfg.SMTPSecure,
			username: cfg.SMTPUser,
			password: cfg.SMTPPass,
			from:     cfg.SMTPFrom,
		})
	case cfg.SendGridAPIKey != "":
		return newSMTPSender(smtpSettings{
			host:     config.SendGridSMTPHost,
			port:     config.DefaultSMTPPort,
			username: config.SendGridSMTPUser,
			password: cfg.SendGridAPIKey,
			from:     cfg.SMTPFrom,
		})
	default:
		return nil, nil
	}
}

type smtpSettings struct {
	host     string
	port     int
	secure   bool
	username string
	password string
	from     string
}

func newSMTPSender(s smtpSettings) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(s.port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if s.secure {
		opts = append(opts, gomail.WithSSLPort(false))
	}
	if s.username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.username),
			gomail.WithPassword(s.password),
		)
	}

	client, err := gomail.NewClient(s.host, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating SMTP client for %s: %w", s.host, err)
	}

	return &SMTPSender{client: client, from: s.from}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("setting sender %q: %w", s.from, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("setting recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.TextBody)
	m.AddAlternativeString(gomail.TypeTextHTML, msg.HTMLBody)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("sending mail to %q: %w", msg.To, err)
	}
	return nil
}
