package utils

import (
	"gopkg.in/gomail.v2"

	"github.com/dineopen/reservation-app/config"
)

func SendEmail(to, subject, body string) error {
	cfg := config.AppConfig

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.EmailUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)

	return d.DialAndSend(m)
}
