package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// Service sends transactional mail over SMTP. When the SMTP credentials are
// not configured, sends are silently skipped (notifications are best-effort).
type Service struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

type Config struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromEmail string
}

func NewService(cfg Config) *Service {
	return &Service{
		host:      cfg.Host,
		port:      cfg.Port,
		username:  cfg.Username,
		password:  cfg.Password,
		fromEmail: cfg.FromEmail,
	}
}

// IsConfigured reports whether SMTP credentials are present.
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// StatusUpdateData holds the data for application status notifications.
type StatusUpdateData struct {
	ApplicantName string
	JobTitle      string
	Status        string
}

const statusUpdateTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Application Update</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .status { display: inline-block; padding: 6px 12px; background: white; border-left: 4px solid #0066cc; font-weight: bold; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h2>Your application was updated</h2></div>
        <div class="content">
            <p>Hi {{.ApplicantName}},</p>
            <p>The status of your application for <strong>{{.JobTitle}}</strong> changed to:</p>
            <p><span class="status">{{.Status}}</span></p>
            <p>Log in to your dashboard to see the details.</p>
        </div>
        <div class="footer">This is an automated message. Please do not reply.</div>
    </div>
</body>
</html>`

var statusTmpl = template.Must(template.New("status_update").Parse(statusUpdateTemplate))

// SendStatusUpdate notifies an applicant that an employer moved their
// application to a new status.
func (s *Service) SendStatusUpdate(to string, data StatusUpdateData) error {
	if !s.IsConfigured() {
		return nil
	}

	var body bytes.Buffer
	if err := statusTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render status email: %w", err)
	}

	subject := fmt.Sprintf("Application update: %s", data.JobTitle)
	msg := []byte("From: " + s.fromEmail + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		body.String())

	addr := s.host + ":" + s.port
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	return smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg)
}
