package crm

import "testing"

func TestApplyDraftDefaults(t *testing.T) {
	d := LeadDraft{CompanyName: "Brooklyn Pipes"}
	ApplyDraftDefaults(&d)

	if d.Tier != "B" {
		t.Fatalf("Tier = %q, want B", d.Tier)
	}
	if d.MatchScore != 70 {
		t.Fatalf("MatchScore = %d, want 70", d.MatchScore)
	}
	if d.QualificationSummary != "AI Generated Lead" {
		t.Fatalf("QualificationSummary = %q", d.QualificationSummary)
	}
	if d.TalkingPoints == nil {
		t.Fatalf("TalkingPoints = nil, want empty slice")
	}
}

func TestApplyDraftDefaultsKeepsPopulatedFields(t *testing.T) {
	d := LeadDraft{
		CompanyName:          "Brooklyn Pipes",
		Tier:                 "a",
		MatchScore:           88,
		QualificationSummary: "Strong fit",
		TalkingPoints:        []string{"no website"},
	}
	ApplyDraftDefaults(&d)

	if d.Tier != "A" {
		t.Fatalf("Tier = %q, want A", d.Tier)
	}
	if d.MatchScore != 88 {
		t.Fatalf("MatchScore = %d, want 88", d.MatchScore)
	}
	if d.QualificationSummary != "Strong fit" {
		t.Fatalf("QualificationSummary = %q", d.QualificationSummary)
	}
	if len(d.TalkingPoints) != 1 || d.TalkingPoints[0] != "no website" {
		t.Fatalf("TalkingPoints = %#v", d.TalkingPoints)
	}
}

func TestNormalizeTier(t *testing.T) {
	if got := NormalizeTier(" a "); got != TierA {
		t.Fatalf("NormalizeTier() = %q, want A", got)
	}
	if got := NormalizeTier("platinum"); got != TierB {
		t.Fatalf("NormalizeTier() = %q, want B fallback", got)
	}
	if got := NormalizeTier(""); got != TierB {
		t.Fatalf("NormalizeTier() = %q, want B fallback", got)
	}
}

func TestTierTag(t *testing.T) {
	if got := TierA.Tag(); got != "tier_a" {
		t.Fatalf("Tag() = %q, want tier_a", got)
	}
	if got := TierC.Tag(); got != "tier_c" {
		t.Fatalf("Tag() = %q, want tier_c", got)
	}
}

func TestLeadStatusTerminal(t *testing.T) {
	if LeadCandidate.Terminal() {
		t.Fatalf("CANDIDATE should not be terminal")
	}
	if !LeadApproved.Terminal() || !LeadRejected.Terminal() {
		t.Fatalf("APPROVED and REJECTED should be terminal")
	}
}
