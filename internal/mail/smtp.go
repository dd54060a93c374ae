package mail

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"net/url"
	"strings"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	BaseURL  string
}

// SMTPMailer dispatches account emails synchronously over SMTP. It
// implements the services.Mailer interface.
type SMTPMailer struct {
	config SMTPConfig
}

func NewSMTPMailer(config SMTPConfig) *SMTPMailer {
	return &SMTPMailer{config: config}
}

func (mailer *SMTPMailer) SendVerification(email string, code string) error {
	link := fmt.Sprintf(
		"%s/verify-email?email=%s&token=%s",
		strings.TrimRight(mailer.config.BaseURL, "/"),
		url.QueryEscape(email),
		url.QueryEscape(code),
	)
	body := "Your Zenith verification code is: " + code + "\n\n" +
		"It expires in 10 minutes. You can also verify directly:\n" + link + "\n"
	return mailer.send(email, "Verify your Zenith account", body)
}

func (mailer *SMTPMailer) SendPasswordReset(email string, token string) error {
	link := fmt.Sprintf(
		"%s/reset-password?token=%s",
		strings.TrimRight(mailer.config.BaseURL, "/"),
		url.QueryEscape(token),
	)
	body := "A password reset was requested for your Zenith account.\n\n" +
		"Reset it within the next hour:\n" + link + "\n\n" +
		"If you did not request this, ignore this email.\n"
	return mailer.send(email, "Reset your Zenith password", body)
}

func (mailer *SMTPMailer) send(to string, subject string, body string) error {
	cfg := mailer.config
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	message := buildMessage(cfg.From, to, subject, body)

	client, err := smtpClient(addr, cfg.Host, cfg.Port)
	if err != nil {
		return fmt.Errorf("connect smtp: %w", err)
	}
	defer client.Close()

	if cfg.Username != "" {
		auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := client.Mail(parseAddress(cfg.From)); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := writer.Write([]byte(message)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	return writer.Close()
}

func smtpClient(addr string, host string, port int) (*smtp.Client, error) {
	// Port 465 expects implicit TLS; anything else upgrades via STARTTLS
	// when the server offers it.
	if port == 465 {
		conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
		if err != nil {
			return nil, err
		}
		return smtp.NewClient(conn, host)
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return nil, err
	}
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
			_ = client.Close()
			return nil, err
		}
	}
	return client, nil
}

func buildMessage(from string, to string, subject string, body string) string {
	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}
	return strings.Join(headers, "\r\n")
}

func parseAddress(from string) string {
	start := strings.Index(from, "<")
	end := strings.Index(from, ">")
	if start >= 0 && end > start {
		return strings.TrimSpace(from[start+1 : end])
	}
	return strings.TrimSpace(from)
}
