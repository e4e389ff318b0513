package sdr

import (
	"fmt"
	"time"

	"agentcrm/internal/domain/crm"
)

// materialize turns generator drafts into a PENDING_REVIEW batch plus one
// CANDIDATE lead per draft. Callers guarantee drafts is non-empty; an empty
// run never reaches materialization.
func (s *Service) materialize(icp crm.ICPProfile, drafts []crm.LeadDraft, runTime time.Time) (crm.SDRBatch, []crm.SDRLead) {
	batch := crm.SDRBatch{
		ID:              s.newID("batch"),
		ICPProfileID:    icp.ID,
		Name:            fmt.Sprintf("%s Run %s", icp.Name, runTime.Format("2006-01-02")),
		Status:          crm.BatchPendingReview,
		RunDate:         runTime,
		TotalCandidates: len(drafts),
	}

	leads := make([]crm.SDRLead, 0, len(drafts))
	for _, d := range drafts {
		crm.ApplyDraftDefaults(&d)
		leads = append(leads, crm.SDRLead{
			ID:          s.newID("lead"),
			BatchID:     batch.ID,
			CompanyName: d.CompanyName,
			Category:    d.Category,
			Rating:      d.Rating,
			Reviews:     d.Reviews,
			Address:     d.Address,
			Website:     d.Website,
			Phone:       d.Phone,
			MapsURL:     d.MapsURL,

			Status:     crm.LeadCandidate,
			Tier:       crm.Tier(d.Tier),
			MatchScore: d.MatchScore,

			QualificationSummary: d.QualificationSummary,
			TalkingPoints:        d.TalkingPoints,
		})
	}
	return batch, leads
}

func promotionContent(lead crm.SDRLead) string {
	return fmt.Sprintf("Approved from batch %s with match score %d/100 (tier %s).",
		lead.BatchID, lead.MatchScore, lead.Tier)
}
