package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	gomail "gopkg.in/gomail.v2"
)

// SMTPConfig carries the outbound mail settings.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	To       []string
}

// NewSMTPConfigFromEnv reads SMTP_* and EMAIL_TO environment variables.
func NewSMTPConfigFromEnv() SMTPConfig {
	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}
	return SMTPConfig{
		Host:     getEnv("SMTP_SERVER", "smtp.gmail.com"),
		Port:     port,
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
		To:       splitRecipients(os.Getenv("EMAIL_TO")),
	}
}

// Sender delivers digests over SMTP with both HTML and plain-text parts.
type Sender struct {
	cfg SMTPConfig
}

func NewSender(cfg SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send renders and mails one digest to the configured recipients.
func (s *Sender) Send(digest Digest) error {
	if len(s.cfg.To) == 0 {
		return fmt.Errorf("no recipients configured for injuries report")
	}
	if s.cfg.User == "" {
		return fmt.Errorf("SMTP_USER is required to send the injuries report")
	}

	html, err := digest.RenderHTML()
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.User)
	m.SetHeader("To", s.cfg.To...)
	m.SetHeader("Subject", digest.Subject())
	m.SetBody("text/plain", digest.RenderText())
	m.AddAlternative("text/html", html)

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send injuries report: %w", err)
	}

	log.Info().
		Strs("to", s.cfg.To).
		Str("date", digest.DateStr).
		Int("players", digest.PlayerCount).
		Msg("injuries report sent")
	return nil
}

func splitRecipients(value string) []string {
	var out []string
	for _, addr := range strings.Split(value, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
