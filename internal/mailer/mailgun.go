package mailer

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Sender delivers a single email. Satisfied by Mailgun; tests swap in
// a fake.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// Mailgun wraps Mailgun client configuration.
type Mailgun struct {
	Domain string
	APIKey string
	From   string
}

// NewMailgun creates a Mailgun sender.
func NewMailgun(domain, apiKey, from string) *Mailgun {
	return &Mailgun{Domain: domain, APIKey: apiKey, From: from}
}

// Send sends an email via Mailgun. html is optional; when provided it
// is attached as the HTML body.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.From, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := client.Send(c, msg)
	return err
}
