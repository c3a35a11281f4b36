// Package mailer delivers password-reset mail over SMTP. Configuration
// comes from FEEDGATE_SMTP_* environment variables.
package mailer

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail. It implements feedgate.ResetMailer.
type Mailer struct {
	config *smtpConfig
	dialer *gomail.Dialer
	logger zerolog.Logger
}

// smtpConfig holds SMTP settings, parsed from the environment.
type smtpConfig struct {
	Host     string `env:"FEEDGATE_SMTP_HOST"`
	Port     int    `env:"FEEDGATE_SMTP_PORT" envDefault:"587"`
	Username string `env:"FEEDGATE_SMTP_USERNAME"`
	Password string `env:"FEEDGATE_SMTP_PASSWORD"`
	From     string `env:"FEEDGATE_SMTP_FROM"`
	BaseURL  string `env:"FEEDGATE_RESET_BASE_URL" envDefault:"http://localhost:8080/reset-password"`
}

func (c *smtpConfig) validate() error {
	if c.Host == "" {
		return fmt.Errorf("missing FEEDGATE_SMTP_HOST environment variable")
	}
	if c.From == "" {
		return fmt.Errorf("missing FEEDGATE_SMTP_FROM environment variable")
	}
	return nil
}

// NewMailer parses SMTP configuration from the environment and returns a
// ready dialer. It fails when required settings are absent.
func NewMailer(logger zerolog.Logger) (*Mailer, error) {
	cfg, err := env.ParseAs[smtpConfig]()
	if err != nil {
		return nil, fmt.Errorf("parse mailer environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Mailer{
		config: &cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger,
	}, nil
}

// SendPasswordReset mails the reset link for token to email.
func (m *Mailer) SendPasswordReset(_ context.Context, email, token string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Reset your password")
	msg.SetBody("text/plain", fmt.Sprintf(
		"A password reset was requested for your account.\n\n"+
			"Open the link below to choose a new password. The link is valid for one hour.\n\n"+
			"%s?token=%s\n\n"+
			"If you did not request this, you can ignore this message.\n",
		m.config.BaseURL, token,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send password reset mail: %w", err)
	}

	m.logger.Debug().Str("to", email).Msg("password reset mail sent")
	return nil
}
