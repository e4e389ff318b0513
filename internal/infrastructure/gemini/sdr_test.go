package gemini

import (
	"context"
	"errors"
	"testing"

	"agentcrm/internal/bootstrap/config"
	"agentcrm/internal/ports"
)

func TestExtractArraySpan(t *testing.T) {
	text := "Here are the businesses I found:\n```json\n[{\"companyName\":\"Brooklyn Pipes\"}]\n```\nLet me know if you need more."
	span, ok := extractArraySpan(text)
	if !ok {
		t.Fatalf("extractArraySpan() ok = false")
	}
	if span != `[{"companyName":"Brooklyn Pipes"}]` {
		t.Fatalf("extractArraySpan() = %q", span)
	}
}

func TestExtractArraySpanBareArray(t *testing.T) {
	span, ok := extractArraySpan(`  [1, 2, 3]  `)
	if !ok || span != "[1, 2, 3]" {
		t.Fatalf("extractArraySpan() = %q, %v", span, ok)
	}
}

func TestExtractArraySpanNoArray(t *testing.T) {
	if _, ok := extractArraySpan("Sorry, I could not find any businesses."); ok {
		t.Fatalf("extractArraySpan() ok = true, want false")
	}
	if _, ok := extractArraySpan("mismatched ] before ["); ok {
		t.Fatalf("extractArraySpan() ok = true for reversed brackets")
	}
}

func TestParseLeadArray(t *testing.T) {
	text := "```json\n[{\"companyName\":\"Brooklyn Pipes\",\"category\":\"plumber\",\"rating\":4.1,\"reviews\":42,\"tier\":\"A\",\"matchScore\":88,\"talkingPoints\":[\"no website\"]}]\n```"
	drafts, err := parseLeadArray(text)
	if err != nil {
		t.Fatalf("parseLeadArray() error = %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("drafts = %d, want 1", len(drafts))
	}
	d := drafts[0]
	if d.CompanyName != "Brooklyn Pipes" || d.Rating != 4.1 || d.Reviews != 42 {
		t.Fatalf("draft = %+v", d)
	}
	if d.Tier != "A" || d.MatchScore != 88 {
		t.Fatalf("draft scoring = %+v", d)
	}
}

func TestParseLeadArrayMalformed(t *testing.T) {
	if _, err := parseLeadArray("[{\"companyName\": }]"); err == nil {
		t.Fatalf("parseLeadArray() error = nil, want decode failure")
	}
	if _, err := parseLeadArray("no array here"); err == nil {
		t.Fatalf("parseLeadArray() error = nil, want missing array")
	}
}

func TestGenerateWithoutCredential(t *testing.T) {
	c, err := New(context.Background(), config.GeminiConfig{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Available() {
		t.Fatalf("Available() = true without API key")
	}

	_, err = c.Generate(context.Background(), icpFixture())
	if !errors.Is(err, ports.ErrGeneratorUnavailable) {
		t.Fatalf("Generate() error = %v, want ErrGeneratorUnavailable", err)
	}
}

func TestSetModel(t *testing.T) {
	c, err := New(context.Background(), config.GeminiConfig{Model: "gemini-2.5-flash"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.SetModel("gemini-2.5-pro")
	if got := c.currentModel(); got != "gemini-2.5-pro" {
		t.Fatalf("currentModel() = %q", got)
	}

	c.SetModel("")
	if got := c.currentModel(); got != "gemini-2.5-pro" {
		t.Fatalf("empty SetModel changed model to %q", got)
	}
}
