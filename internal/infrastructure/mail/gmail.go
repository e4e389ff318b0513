// Package mail carries the stub Gmail transport. No real mail moves: the
// stub pretends the OAuth handshake and delivery succeed so the surfaces
// that reference mail keep working without credentials.
package mail

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"agentcrm/internal/bootstrap/logging"
	"agentcrm/internal/ports"
)

type Stub struct{}

func NewStub() *Stub {
	return &Stub{}
}

func (s *Stub) Connect(ctx context.Context) (bool, error) {
	if ctx == nil {
		return false, errors.New("context is required")
	}
	logging.Info(logging.WithAttrs(ctx, slog.String("component", "mail.stub")), "gmail connected")
	return true, nil
}

func (s *Stub) SendEmail(ctx context.Context, to, subject, body string) (bool, error) {
	if ctx == nil {
		return false, errors.New("context is required")
	}
	if to == "" {
		return false, errors.New("recipient is required")
	}
	logging.Info(logging.WithAttrs(ctx, slog.String("component", "mail.stub")),
		"email sent",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("body_bytes", len(body)),
	)
	return true, nil
}

// CheckEmails polls for inbound lead mail. The stub inbox is always empty;
// a real transport would return message headlines here.
func (s *Stub) CheckEmails(ctx context.Context) ([]ports.InboundSummary, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	return []ports.InboundSummary{}, nil
}

// NewInboundSummary builds one inbound-message headline record.
func NewInboundSummary(from, subject, snippet string) ports.InboundSummary {
	return ports.InboundSummary{
		ID:      "email-" + uuid.NewString(),
		From:    from,
		Subject: subject,
		Snippet: snippet,
	}
}

var _ ports.MailTransport = (*Stub)(nil)
