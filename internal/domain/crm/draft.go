package crm

// LeadDraft is one raw candidate row extracted from the generative service
// reply, before batch materialization. Field names mirror the JSON contract
// requested in the generation prompt.
type LeadDraft struct {
	CompanyName          string   `json:"companyName"`
	Category             string   `json:"category"`
	Rating               float64  `json:"rating"`
	Reviews              int      `json:"reviews"`
	Address              string   `json:"address"`
	Website              string   `json:"website"`
	Phone                string   `json:"phone"`
	QualificationSummary string   `json:"qualificationSummary"`
	TalkingPoints        []string `json:"talkingPoints"`
	Tier                 string   `json:"tier"`
	MatchScore           int      `json:"matchScore"`

	// MapsURL is attached after grounding reconciliation, not parsed from
	// the service reply.
	MapsURL string `json:"-"`
}

const (
	defaultMatchScore = 70
	defaultSummary    = "AI Generated Lead"
)

// ApplyDraftDefaults fills the fields the service is not contractually
// guaranteed to populate: tier B, match score 70, a placeholder summary and
// an empty talking-point list.
func ApplyDraftDefaults(d *LeadDraft) {
	d.Tier = string(NormalizeTier(d.Tier))
	if d.MatchScore == 0 {
		d.MatchScore = defaultMatchScore
	}
	if d.QualificationSummary == "" {
		d.QualificationSummary = defaultSummary
	}
	if d.TalkingPoints == nil {
		d.TalkingPoints = []string{}
	}
}
