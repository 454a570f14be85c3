package services

import (
	"strconv"

	"clinichr/config"

	"gopkg.in/gomail.v2"
)

// Mailer gửi email, kèm file đính kèm nếu có
type Mailer interface {
	Send(to, subject, htmlBody, attachmentPath string) error
}

// SMTPMailer implement Mailer qua gomail
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPMailer() *SMTPMailer {
	host := config.GetEnv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port, err := strconv.Atoi(config.GetEnv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	user := config.GetEnv("EMAIL_USER")
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: user,
		password: config.GetEnv("EMAIL_PASS"),
		from:     user,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody, attachmentPath string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	if attachmentPath != "" {
		msg.Attach(attachmentPath)
	}

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return d.DialAndSend(msg)
}
