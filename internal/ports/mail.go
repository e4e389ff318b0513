package ports

import "context"

// InboundSummary is one polled inbound-message headline.
type InboundSummary struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Snippet string `json:"snippet"`
}

// MailTransport is the mail integration boundary. The core never depends on
// it; it exists for the surfaces that send or poll mail around promotions.
type MailTransport interface {
	Connect(ctx context.Context) (bool, error)
	SendEmail(ctx context.Context, to, subject, body string) (bool, error)
	CheckEmails(ctx context.Context) ([]InboundSummary, error)
}
