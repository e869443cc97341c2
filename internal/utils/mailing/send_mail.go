package mailing

import (
	"strconv"

	"galeana-pepper/internal/utils"

	"gopkg.in/gomail.v2"
)

type (
	MailConfig struct {
		SMTPHost     string
		SMTPPort     string
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
	}

	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
	}

	smtpMailer struct {
		config MailConfig
	}
)

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// Configured reports whether enough SMTP settings are present to send mail.
func (c MailConfig) Configured() bool {
	return c.SMTPHost != "" && c.SMTPPort != "" && c.SMTPEmail != ""
}

func NewMailer(config MailConfig) Mailer {
	return &smtpMailer{config: config}
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(m.config.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		m.config.SMTPHost,
		port,
		m.config.SMTPEmail,
		m.config.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}
