package gemini

import (
	"context"
	"testing"

	"agentcrm/internal/bootstrap/config"
	"agentcrm/internal/domain/crm"
)

func icpFixture() crm.ICPProfile {
	return crm.ICPProfile{
		ID:         "icp-1",
		Name:       "NYC Plumbers",
		Geography:  "Brooklyn, NY",
		Categories: []string{"plumber"},
	}
}

func disabledClient(t *testing.T) *Client {
	t.Helper()

	c, err := New(context.Background(), config.GeminiConfig{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestRespondWithoutCredential(t *testing.T) {
	c := disabledClient(t)

	reply, err := c.Respond(context.Background(), nil, "list my deals")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if reply.Text != replyNoKey {
		t.Fatalf("Respond() = %q, want canned no-key reply", reply.Text)
	}
	if len(reply.FunctionCalls) != 0 {
		t.Fatalf("FunctionCalls = %d, want 0", len(reply.FunctionCalls))
	}
}

func TestAnalyzeDealWithoutCredential(t *testing.T) {
	c := disabledClient(t)

	got, err := c.AnalyzeDeal(context.Background(), crm.Deal{ID: "deal-1", Name: "Apex Website"})
	if err != nil {
		t.Fatalf("AnalyzeDeal() error = %v", err)
	}
	if got != "AI analysis unavailable (Missing Key)." {
		t.Fatalf("AnalyzeDeal() = %q", got)
	}
}

func TestDraftOutreachWithoutCredential(t *testing.T) {
	c := disabledClient(t)

	got, err := c.DraftOutreach(context.Background(), crm.Deal{ID: "deal-1"}, "Tony", "Apex Plumbing", nil)
	if err != nil {
		t.Fatalf("DraftOutreach() error = %v", err)
	}
	if got != "AI composition unavailable." {
		t.Fatalf("DraftOutreach() = %q", got)
	}
}

func TestJoinList(t *testing.T) {
	if got := joinList(nil); got != "none known" {
		t.Fatalf("joinList(nil) = %q", got)
	}
	if got := joinList([]string{"no website", "few reviews"}); got != "no website, few reviews" {
		t.Fatalf("joinList() = %q", got)
	}
}
