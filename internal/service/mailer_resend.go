package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

type ResendMailer struct {
	Client *resend.Client
	From   string
}

func NewResendMailer(apiKey string, from string) *ResendMailer {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return &ResendMailer{}
	}
	return &ResendMailer{
		Client: resend.NewClient(apiKey),
		From:   from,
	}
}

func (m *ResendMailer) Send(_ context.Context, to []string, subject string, html string) error {
	if m.Client == nil {
		return errors.New("mailer not configured")
	}
	_, err := m.Client.Emails.Send(&resend.SendEmailRequest{
		From:    m.From,
		To:      to,
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}
