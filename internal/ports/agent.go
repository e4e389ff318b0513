package ports

import (
	"context"

	"agentcrm/internal/domain/crm"
)

// FunctionCall is a tool invocation requested by the model in a chat turn.
type FunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// ChatReply is one command-center turn: assistant text plus any tool calls
// the model asked the caller to execute.
type ChatReply struct {
	Text          string         `json:"text"`
	FunctionCalls []FunctionCall `json:"functionCalls,omitempty"`
}

// ChatAgent is the thin request/response proxy to the external model behind
// the command center. Like LeadGenerator, it degrades gracefully when no
// credential is configured instead of erroring.
type ChatAgent interface {
	Respond(ctx context.Context, history []crm.ChatMessage, userMessage string) (ChatReply, error)
	AnalyzeDeal(ctx context.Context, deal crm.Deal) (string, error)
	DraftOutreach(ctx context.Context, deal crm.Deal, contactName, companyName string, customer *crm.Customer) (string, error)
}
