package email

import (
	"fmt"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// Enabled reports whether an SMTP host is configured.
func (s *EmailService) Enabled() bool {
	return s.config.SMTPHost != ""
}

// SendDocument sends a rendered document as a plain-text email
func (s *EmailService) SendDocument(toEmail, toName, subject, body string) error {
	if !s.Enabled() {
		return fmt.Errorf("email dispatch is not configured")
	}

	message := s.buildPlainTextEmail(toEmail, toName, subject, body)
	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	var auth smtp.Auth
	if s.config.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildPlainTextEmail builds a plain-text email message
func (s *EmailService) buildPlainTextEmail(to, toName, subject, body string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s <%s>\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		toName,
		to,
		subject,
	)
	return []byte(headers + body)
}
