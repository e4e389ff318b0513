package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"agentcrm/internal/bootstrap/logging"
	"agentcrm/internal/domain/crm"
	"agentcrm/internal/errs"
	"agentcrm/internal/ports"
)

const leadPromptTemplate = `Find 5 real businesses that match the profile: "%s in %s".

Use Google Maps to find the businesses.
CRITICAL: Use Google Search to find their actual WEBSITE URL and PHONE NUMBER if not immediately available in the Maps data.

Return a JSON array where each object has these exact fields:
- companyName: string
- category: string
- rating: number
- reviews: number
- address: string
- website: string | null (The actual business website URL. Look for it!)
- phone: string | null (The business phone number)
- qualificationSummary: string (Analyze why they fit the ICP: %s. Mention gaps like low reviews or no website if apparent)
- talkingPoints: string[] (3 specific sales talking points based on their public data)
- tier: "A" | "B" | "C" (A is high priority: e.g. good business but bad digital presence. C is already perfect or too small)
- matchScore: number (0-100)

IMPORTANT: Provide real data.`

// Generate implements ports.LeadGenerator: one grounded generation round
// trip, reply parsing, per-draft defaults, and citation reconciliation.
// Transport failures and unparsable replies both collapse into
// ports.ErrEmptyReply; the caller cannot and should not distinguish them.
func (c *Client) Generate(ctx context.Context, icp crm.ICPProfile) (ports.GenerationResult, error) {
	if ctx == nil {
		return ports.GenerationResult{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.GenerationResult{}, errs.Wrap(err, "check context")
	}
	if !c.Available() {
		return ports.GenerationResult{}, ports.ErrGeneratorUnavailable
	}

	logCtx := logging.WithAttrs(ctx,
		slog.String("component", "gemini.sdr"),
		slog.String("icp_profile_id", icp.ID),
	)

	prompt := fmt.Sprintf(leadPromptTemplate,
		strings.Join(icp.Categories, ", "), icp.Geography, icp.Name)

	resp, err := c.genai.Models.GenerateContent(ctx, c.currentModel(),
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleMaps: &genai.GoogleMaps{}},
				{GoogleSearch: &genai.GoogleSearch{}},
			},
		},
	)
	if err != nil {
		logging.Warn(logCtx, "generation round trip failed", slog.Any("err", errs.Loggable(err)))
		return ports.GenerationResult{}, ports.ErrEmptyReply
	}

	drafts, err := parseLeadArray(resp.Text())
	if err != nil {
		logging.Warn(logCtx, "unparsable generation reply", slog.Any("err", errs.Loggable(err)))
		return ports.GenerationResult{}, ports.ErrEmptyReply
	}

	citations := citationsFrom(resp)
	for i := range drafts {
		crm.ApplyDraftDefaults(&drafts[i])
		drafts[i].MapsURL = crm.ResolveLocator(
			drafts[i].CompanyName, drafts[i].Address, icp.Geography, citations)
	}

	logging.Info(logCtx, "generation succeeded",
		slog.Int("drafts", len(drafts)),
		slog.Int("citations", len(citations)),
	)
	return ports.GenerationResult{Drafts: drafts, Citations: citations}, nil
}

// parseLeadArray tolerates prose and code-fence wrapping around the array:
// fences are stripped, then only the span from the first '[' to the last
// ']' is parsed.
func parseLeadArray(text string) ([]crm.LeadDraft, error) {
	span, ok := extractArraySpan(text)
	if !ok {
		return nil, errors.New("reply contains no JSON array")
	}

	var drafts []crm.LeadDraft
	if err := json.Unmarshal([]byte(span), &drafts); err != nil {
		return nil, errs.Wrap(errs.WithStack(err), "decode lead array")
	}
	return drafts, nil
}

func extractArraySpan(text string) (string, bool) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return cleaned[start : end+1], true
}

// citationsFrom flattens the grounding chunks of the primary candidate into
// title/URI pairs. Both web and maps chunks count.
func citationsFrom(resp *genai.GenerateContentResponse) []crm.Citation {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}

	out := make([]crm.Citation, 0, len(meta.GroundingChunks))
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil {
			continue
		}
		if chunk.Web != nil {
			out = append(out, crm.Citation{Title: chunk.Web.Title, URI: chunk.Web.URI})
		}
		if chunk.Maps != nil {
			out = append(out, crm.Citation{Title: chunk.Maps.Title, URI: chunk.Maps.URI})
		}
	}
	return out
}
