// utils/email.go
package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService handles sending emails using SendGrid
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance.
// Returns nil when SENDGRID_API_KEY is unset; callers treat a nil service
// as "email disabled".
func NewEmailService() *EmailService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY is not set. Email notifications disabled.")
		return nil
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	from := mail.NewEmail("SingerX", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// SendWelcomeEmail greets a newly signed-up user
func (es *EmailService) SendWelcomeEmail(toEmail, name string) error {
	subject := "Welcome to SingerX"
	if name == "" {
		name = "there"
	}
	htmlContent := fmt.Sprintf(
		"<strong>Hi %s,</strong><br><br>Your account has been created. Browse our classes and start learning today!",
		name,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
