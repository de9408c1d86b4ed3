// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"html"
	"log"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWelcome(toEmail, name string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendWelcome(toEmail, name string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Welcome to MindWell")
	m.SetBody("text/html", welcomeBody(name))

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("[MAILER ERROR] Failed to send welcome email to %s: %v", toEmail, err)
		return err
	}

	log.Printf("[MAILER] Welcome email sent to %s", toEmail)
	return nil
}

func welcomeBody(name string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome, %s!</h2>
			<p>Your MindWell account is ready. Pick a conversation category and start a session whenever you need to talk.</p>
			<p>If you did not create this account, please ignore this email.</p>
		</div>
	`, html.EscapeString(name))
}

// noopEmailService is used when no SMTP host is configured.
type noopEmailService struct{}

func NewNoopEmailService() IEmailService {
	return noopEmailService{}
}

func (noopEmailService) SendWelcome(string, string) error {
	return nil
}
