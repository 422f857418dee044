package mailer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Message is a rendered confirmation email ready for dispatch.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer hands a rendered message to the delivery provider. Send blocks
// until the provider accepts or rejects the message.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// SendGridMailer delivers through SendGrid, blind-copying the operational
// sender address on every message.
type SendGridMailer struct {
	client *sendgrid.Client
	from   string
	log    zerolog.Logger
}

func NewSendGridMailer(apiKey, from string, log zerolog.Logger) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
		log:    log,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, msg *Message) error {
	message := sgmail.NewV3Mail()
	message.SetFrom(sgmail.NewEmail("", m.from))
	message.Subject = msg.Subject

	p := sgmail.NewPersonalization()
	p.AddTos(sgmail.NewEmail("", msg.To))
	p.AddBCCs(sgmail.NewEmail("", m.from))
	message.AddPersonalizations(p)

	message.AddContent(
		sgmail.NewContent("text/plain", msg.Text),
		sgmail.NewContent("text/html", msg.HTML),
	)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		m.log.Error().Int("status", resp.StatusCode).Str("body", resp.Body).Msg("sendgrid rejected message")
		return fmt.Errorf("send email: sendgrid returned status %d", resp.StatusCode)
	}

	return nil
}
