package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"path/filepath"

	"github.com/Kariqs/amana-storefront/models"
)

type OrderEmailData struct {
	Name        string
	OrderID     string
	Items       []models.OrderItem
	Amount      float64
	Currency    string
	TrackingURL string
}

// Mailer sends HTML mail through a plain-auth SMTP relay.
type Mailer struct {
	From         string
	Password     string
	Host         string
	Addr         string
	TemplatePath string

	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(from, password, host, addr, templatePath string) *Mailer {
	return &Mailer{
		From:         from,
		Password:     password,
		Host:         host,
		Addr:         addr,
		TemplatePath: templatePath,
		send:         smtp.SendMail,
	}
}

func (m *Mailer) SendOrderConfirmation(emailTo string, data OrderEmailData) error {
	return m.SendEmail(emailTo, "Your order "+data.OrderID+" is confirmed", data)
}

func (m *Mailer) SendEmail(emailTo string, emailSubject string, data any) error {
	tmpl, err := template.New(filepath.Base(m.TemplatePath)).Funcs(template.FuncMap{
		"lineTotal": func(it models.OrderItem) float64 { return it.Price * float64(it.Quantity) },
	}).ParseFiles(m.TemplatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	err = tmpl.Execute(&body, data)
	if err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.From,
		emailTo,
		emailSubject,
		body.String(),
	)

	auth := smtp.PlainAuth("", m.From, m.Password, m.Host)

	err = m.send(m.Addr, auth, m.From, []string{emailTo}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
