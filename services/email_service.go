package services

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"agricola-shop/models"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewEmailService wires the SMTP notifier for new contact submissions.
// Missing SMTP configuration is not an error for the site as a whole;
// callers treat a nil service as "notifications disabled".
func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	return &EmailService{
		dialer: gomail.NewDialer(smtpHost, port, smtpUser, smtpPass),
		from:   os.Getenv("SMTP_FROM"),
		to:     os.Getenv("CONTACT_NOTIFY_TO"),
	}, nil
}

// SendContactNotification forwards a persisted submission to the farm's
// mailbox. Failures are the caller's to log; the submission itself is
// already stored.
func (s *EmailService) SendContactNotification(sub *models.ContactSubmission) error {
	if s.to == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", fmt.Sprintf("Nuovo contatto dal sito: %s", sub.Subject))

	body := fmt.Sprintf(
		"Nome: %s\nEmail: %s\nTelefono: %s\nOggetto: %s\n\n%s\n",
		sub.Name, sub.Email, sub.Phone, sub.Subject, sub.Message,
	)
	m.SetBody("text/plain", body)

	return s.dialer.DialAndSend(m)
}
