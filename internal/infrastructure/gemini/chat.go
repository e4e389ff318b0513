package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"agentcrm/internal/bootstrap/logging"
	"agentcrm/internal/domain/crm"
	"agentcrm/internal/errs"
	"agentcrm/internal/ports"
)

const commandCenterInstruction = "You are an AI assistant for a CRM called 'Agentic CRM'. " +
	"You help solopreneurs manage leads and deals. You can list deals and draft emails."

const (
	replyNoKey      = "I'm sorry, but I'm not connected to the Gemini API. Please configure your API key."
	replyFallback   = "I've processed that."
	replyTurnFailed = "Sorry, I encountered an error processing your request."
)

func commandCenterTools() []*genai.Tool {
	return []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        "list_deals",
				Description: "List deals with optional filters, sort, and limit.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"limit": {Type: genai.TypeNumber, Description: "Max number of deals to return"},
						"stage": {Type: genai.TypeString, Description: "Filter by deal stage"},
					},
				},
			},
			{
				Name:        "draft_email",
				Description: "Generate an email draft for a specific deal.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"dealId":  {Type: genai.TypeString, Description: "The ID of the deal"},
						"context": {Type: genai.TypeString, Description: "Instructions for the email content"},
					},
					Required: []string{"dealId"},
				},
			},
		},
	}}
}

// Respond implements the command-center proxy: prior transcript plus one
// user message in, assistant text plus requested tool calls out. Faults are
// absorbed into apologetic canned replies, matching the rest of this
// boundary.
func (c *Client) Respond(ctx context.Context, history []crm.ChatMessage, userMessage string) (ports.ChatReply, error) {
	if ctx == nil {
		return ports.ChatReply{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.ChatReply{}, errs.Wrap(err, "check context")
	}
	if !c.Available() {
		return ports.ChatReply{Text: replyNoKey}, nil
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "gemini.chat"))

	// System entries live in the system instruction, not the turn list.
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		if msg.Role == crm.ChatRoleSystem {
			continue
		}
		role := genai.Role(genai.RoleUser)
		if msg.Role == crm.ChatRoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(userMessage, genai.RoleUser))

	resp, err := c.genai.Models.GenerateContent(ctx, c.currentModel(), contents,
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(commandCenterInstruction, genai.RoleUser),
			Tools:             commandCenterTools(),
		},
	)
	if err != nil {
		logging.Warn(logCtx, "chat turn failed", slog.Any("err", errs.Loggable(err)))
		return ports.ChatReply{Text: replyTurnFailed}, nil
	}

	reply := ports.ChatReply{Text: resp.Text()}
	if reply.Text == "" {
		reply.Text = replyFallback
	}
	for _, call := range resp.FunctionCalls() {
		reply.FunctionCalls = append(reply.FunctionCalls, ports.FunctionCall{
			Name: call.Name,
			Args: call.Args,
		})
	}
	return reply, nil
}

// AnalyzeDeal asks for the next best action on a deal, two sentences max.
func (c *Client) AnalyzeDeal(ctx context.Context, deal crm.Deal) (string, error) {
	if ctx == nil {
		return "", errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", errs.Wrap(err, "check context")
	}
	if !c.Available() {
		return "AI analysis unavailable (Missing Key).", nil
	}

	encoded, err := json.Marshal(deal)
	if err != nil {
		return "", errs.Wrap(err, "encode deal")
	}

	prompt := fmt.Sprintf(
		"Analyze this deal and suggest the next best action to move it forward.\nDeal: %s\n\nOutput a concise suggestion (max 2 sentences).",
		encoded)

	resp, err := c.genai.Models.GenerateContent(ctx, c.currentModel(), genai.Text(prompt), nil)
	if err != nil {
		logging.Warn(logging.WithAttrs(ctx, slog.String("component", "gemini.chat")),
			"deal analysis failed", slog.Any("err", errs.Loggable(err)))
		return "Could not analyze deal.", nil
	}
	return resp.Text(), nil
}

// DraftOutreach writes a short follow-up email for a deal, optionally
// enriched with customer intel from a prior promotion.
func (c *Client) DraftOutreach(ctx context.Context, deal crm.Deal, contactName, companyName string, customer *crm.Customer) (string, error) {
	if ctx == nil {
		return "", errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", errs.Wrap(err, "check context")
	}
	if !c.Available() {
		return "AI composition unavailable.", nil
	}

	contextStr := fmt.Sprintf(
		"Deal Name: %s\nCompany: %s\nContact: %s\nStage: %s\nValue: $%.0f\n",
		deal.Name, companyName, contactName, deal.Stage, deal.Value)
	if deal.LastTouchDate != nil {
		contextStr += fmt.Sprintf("Last Interaction: %s\n", deal.LastTouchDate.Format("2006-01-02"))
	}
	if customer != nil {
		contextStr += fmt.Sprintf(
			"Company Rating: %.1f stars\nPain Points: %s\nSales Opportunities: %s\n",
			customer.Rating,
			joinList(customer.PainPoints),
			joinList(customer.SalesOpportunities))
	}

	prompt := "You are a world-class sales copywriter. Write a personalized, short, and punchy follow-up email for a deal.\n\n" +
		"Context:\n" + contextStr + "\n" +
		"The email should be casual but professional, asking for a quick update or offering value based on the pain points.\n" +
		"Max 100 words. Do not include subject line in the body."

	resp, err := c.genai.Models.GenerateContent(ctx, c.currentModel(), genai.Text(prompt), nil)
	if err != nil {
		logging.Warn(logging.WithAttrs(ctx, slog.String("component", "gemini.chat")),
			"outreach draft failed", slog.Any("err", errs.Loggable(err)))
		return "Could not generate draft.", nil
	}
	return resp.Text(), nil
}

func joinList(items []string) string {
	if len(items) == 0 {
		return "none known"
	}
	out := items[0]
	for _, s := range items[1:] {
		out += ", " + s
	}
	return out
}
