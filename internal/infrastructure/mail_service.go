package infrastructure

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// MailService sends transactional email through SendGrid. When no API key is
// configured the service is disabled and sends become no-ops.
type MailService struct {
	client *sendgrid.Client
	sender string
}

func NewMailService(apiKey, sender string) *MailService {
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY not set, transactional email disabled")
		return &MailService{client: nil, sender: sender}
	}

	return &MailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

func (m *MailService) SendWelcome(name, email string) error {
	subject := "Welcome to oceans"
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. Create your first site and publish it in minutes.", name)
	return m.send(name, email, subject, body)
}

func (m *MailService) SendPasswordChanged(name, email string) error {
	subject := "Your password was changed"
	body := fmt.Sprintf("Hi %s,\n\nYour password was just changed. If this wasn't you, reset it immediately.", name)
	return m.send(name, email, subject, body)
}

func (m *MailService) send(name, email, subject, body string) error {
	if m.client == nil {
		return nil // email disabled
	}

	from := mail.NewEmail("oceans", m.sender)
	to := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := m.client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
