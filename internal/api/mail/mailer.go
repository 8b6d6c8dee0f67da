// Package mail dispatches account emails through Resend. In development, or
// when no API key is configured, it logs the links instead of sending.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/certmint/certmint/pkg/slogx"
	"github.com/resend/resend-go/v2"
)

type Mailer struct {
	client    *resend.Client
	fromEmail string
	appURL    string
	appName   string
	devMode   bool
}

// New builds a Mailer. With an empty API key or devMode set, the client is
// left nil and every send becomes a log line carrying the link.
func New(apiKey, fromEmail, appURL, appName string, devMode bool) *Mailer {
	var client *resend.Client
	if apiKey != "" && !devMode {
		client = resend.NewClient(apiKey)
	}

	return &Mailer{
		client:    client,
		fromEmail: fromEmail,
		appURL:    appURL,
		appName:   appName,
		devMode:   devMode,
	}
}

// SendVerificationEmail sends the post-registration verification link.
func (m *Mailer) SendVerificationEmail(ctx context.Context, to, name, token string) error {
	verifyURL := fmt.Sprintf("%s/api/auth/verify?token=%s", m.appURL, token)
	subject, body := verificationEmailTemplate(name, verifyURL, m.appName)
	return m.send(ctx, "verification", to, subject, body, verifyURL)
}

// SendPasswordResetEmail sends the password reset link.
func (m *Mailer) SendPasswordResetEmail(ctx context.Context, to, name, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", m.appURL, token)
	subject, body := passwordResetEmailTemplate(name, resetURL, m.appName)
	return m.send(ctx, "password_reset", to, subject, body, resetURL)
}

func (m *Mailer) send(ctx context.Context, kind, to, subject, body, link string) error {
	log := slogx.FromContext(ctx)

	if m.client == nil {
		log.Info("email sent (dev mode)",
			slog.String("type", kind),
			slog.String("to", to),
			slog.String("subject", subject),
			slog.String("url", link),
		)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    m.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("send %s email: %w", kind, err)
	}

	log.Info("email sent",
		slog.String("type", kind),
		slog.String("to", to),
	)
	return nil
}
