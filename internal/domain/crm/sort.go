package crm

import (
	"sort"
	"strings"
)

// LeadSortKey names an orderable SDRLead field for review listings.
type LeadSortKey string

const (
	SortByCompanyName LeadSortKey = "companyName"
	SortByRating      LeadSortKey = "rating"
	SortByReviews     LeadSortKey = "reviews"
	SortByMatchScore  LeadSortKey = "matchScore"
	SortByTier        LeadSortKey = "tier"
	SortByStatus      LeadSortKey = "status"
)

// AllBatches disables batch filtering in FilterLeadsByBatch.
const AllBatches = "all"

// FilterLeadsByBatch returns the leads belonging to batchID, preserving
// input order. The AllBatches sentinel returns every lead.
func FilterLeadsByBatch(leads []SDRLead, batchID string) []SDRLead {
	if batchID == "" || batchID == AllBatches {
		return leads
	}
	out := make([]SDRLead, 0, len(leads))
	for _, l := range leads {
		if l.BatchID == batchID {
			out = append(out, l)
		}
	}
	return out
}

// SortLeads orders a copy of leads by key. The sort is stable: ties keep
// their original insertion order, so re-sorting an unchanged list yields an
// identical ordering. The input slice is never modified.
func SortLeads(leads []SDRLead, key LeadSortKey, descending bool) []SDRLead {
	out := make([]SDRLead, len(leads))
	copy(out, leads)

	less := leadLess(key)
	if less == nil {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func leadLess(key LeadSortKey) func(a, b SDRLead) bool {
	switch key {
	case SortByCompanyName:
		return func(a, b SDRLead) bool {
			return strings.ToLower(a.CompanyName) < strings.ToLower(b.CompanyName)
		}
	case SortByRating:
		return func(a, b SDRLead) bool { return a.Rating < b.Rating }
	case SortByReviews:
		return func(a, b SDRLead) bool { return a.Reviews < b.Reviews }
	case SortByMatchScore:
		return func(a, b SDRLead) bool { return a.MatchScore < b.MatchScore }
	case SortByTier:
		return func(a, b SDRLead) bool { return a.Tier.rank() < b.Tier.rank() }
	case SortByStatus:
		return func(a, b SDRLead) bool { return a.Status < b.Status }
	default:
		return nil
	}
}
