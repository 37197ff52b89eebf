// File: /services/email_service.go
package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"tampa-blades-api/config"
)

// EmailService sends transactional mail. When SMTP is not configured every
// send is a logged no-op so mail never blocks a request path.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	service := &EmailService{config: cfg}
	if cfg.EmailEnabled() {
		service.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return service
}

func (es *EmailService) send(to, subject, htmlBody string) error {
	if es.dialer == nil {
		fmt.Printf("Email disabled, skipping %q to %s\n", subject, to)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return es.dialer.DialAndSend(m)
}

// SendWelcomeEmail greets a newly registered skater.
func (es *EmailService) SendWelcomeEmail(email, username string) error {
	body := fmt.Sprintf(`
		<h2>Welcome to Tampa Blades, %s!</h2>
		<p>Your account is ready. Find skate spots, join events, and share your sessions with the community.</p>
		<p>See you on the pavement!</p>
	`, username)

	return es.send(email, "Welcome to Tampa Blades", body)
}

// SendEventApprovedEmail notifies a submitter that their event went live.
func (es *EmailService) SendEventApprovedEmail(email, title, date string) error {
	body := fmt.Sprintf(`
		<h2>Your event is live!</h2>
		<p><strong>%s</strong> on %s has been approved and is now visible on the community calendar.</p>
	`, title, date)

	return es.send(email, "Your event has been approved", body)
}
