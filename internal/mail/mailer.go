// Package mail submits the digest to the configured recipient over
// authenticated SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// Delivery sends one report payload. Implementations must not retry; a
// failed send is logged by the caller and the run moves on.
type Delivery interface {
	Deliver(ctx context.Context, subject, htmlBody string) error
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
}

// SMTPDelivery submits over STARTTLS (port 587 style submission).
type SMTPDelivery struct {
	cfg SMTPConfig
}

func NewSMTP(cfg SMTPConfig) *SMTPDelivery {
	return &SMTPDelivery{cfg: cfg}
}

func (d *SMTPDelivery) Deliver(ctx context.Context, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(d.cfg.Username); err != nil {
		return fmt.Errorf("mail from %q: %w", d.cfg.Username, err)
	}
	if err := msg.To(d.cfg.Recipient); err != nil {
		return fmt.Errorf("mail to %q: %w", d.cfg.Recipient, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	client, err := gomail.NewClient(d.cfg.Host,
		gomail.WithPort(d.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(d.cfg.Username),
		gomail.WithPassword(d.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client %s:%d: %w", d.cfg.Host, d.cfg.Port, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	return nil
}
