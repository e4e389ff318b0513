// Package store holds the process-wide CRM state. It is the only shared
// mutable resource in the system: every mutation runs to completion under
// one lock and publishes a fresh snapshot, so callers holding a previously
// returned snapshot never observe it changing underneath them.
package store

import (
	"time"

	"agentcrm/internal/domain/crm"
)

// Snapshot is an immutable view of every collection. Slices inside a
// published snapshot are never mutated; mutations replace them wholesale.
type Snapshot struct {
	Customers      []crm.Customer
	Deals          []crm.Deal
	Tasks          []crm.Task
	ICPProfiles    []crm.ICPProfile
	SDRBatches     []crm.SDRBatch
	SDRLeads       []crm.SDRLead
	Activities     []crm.Activity
	EmailTemplates []crm.EmailTemplate
	ChatHistory    []crm.ChatMessage
}

// BatchStats are the review counters for one batch, recomputed from lead
// statuses at read time rather than maintained as stored counters.
type BatchStats struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}

// New returns an empty store.
func New() *Store {
	return &Store{snap: &Snapshot{}}
}

// Snapshot returns the current immutable view.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.snap
}

func (s *Store) AddCustomer(c crm.Customer) {
	s.mutate(func(n *Snapshot) {
		n.Customers = appended(n.Customers, c)
	})
}

// UpdateCustomer applies mutate to a copy of the matching customer. Returns
// false when the id is unknown.
func (s *Store) UpdateCustomer(id string, mutate func(*crm.Customer)) bool {
	return updateOne(s, id,
		func(c crm.Customer) string { return c.ID },
		func(n *Snapshot) []crm.Customer { return n.Customers },
		func(n *Snapshot, v []crm.Customer) { n.Customers = v },
		mutate)
}

func (s *Store) AddDeal(d crm.Deal) {
	s.mutate(func(n *Snapshot) {
		n.Deals = appended(n.Deals, d)
	})
}

func (s *Store) UpdateDeal(id string, mutate func(*crm.Deal)) bool {
	return updateOne(s, id,
		func(d crm.Deal) string { return d.ID },
		func(n *Snapshot) []crm.Deal { return n.Deals },
		func(n *Snapshot, v []crm.Deal) { n.Deals = v },
		mutate)
}

func (s *Store) AddTask(t crm.Task) {
	s.mutate(func(n *Snapshot) {
		n.Tasks = appended(n.Tasks, t)
	})
}

func (s *Store) UpdateTask(id string, mutate func(*crm.Task)) bool {
	return updateOne(s, id,
		func(t crm.Task) string { return t.ID },
		func(n *Snapshot) []crm.Task { return n.Tasks },
		func(n *Snapshot, v []crm.Task) { n.Tasks = v },
		mutate)
}

func (s *Store) AddICPProfile(p crm.ICPProfile) {
	s.mutate(func(n *Snapshot) {
		n.ICPProfiles = appended(n.ICPProfiles, p)
	})
}

func (s *Store) UpdateICPProfile(id string, mutate func(*crm.ICPProfile)) bool {
	return updateOne(s, id,
		func(p crm.ICPProfile) string { return p.ID },
		func(n *Snapshot) []crm.ICPProfile { return n.ICPProfiles },
		func(n *Snapshot, v []crm.ICPProfile) { n.ICPProfiles = v },
		mutate)
}

func (s *Store) AddEmailTemplate(t crm.EmailTemplate) {
	s.mutate(func(n *Snapshot) {
		n.EmailTemplates = appended(n.EmailTemplates, t)
	})
}

func (s *Store) UpdateEmailTemplate(id string, mutate func(*crm.EmailTemplate)) bool {
	return updateOne(s, id,
		func(t crm.EmailTemplate) string { return t.ID },
		func(n *Snapshot) []crm.EmailTemplate { return n.EmailTemplates },
		func(n *Snapshot, v []crm.EmailTemplate) { n.EmailTemplates = v },
		mutate)
}

func (s *Store) DeleteEmailTemplate(id string) bool {
	deleted := false
	s.mutate(func(n *Snapshot) {
		out := make([]crm.EmailTemplate, 0, len(n.EmailTemplates))
		for _, t := range n.EmailTemplates {
			if t.ID == id {
				deleted = true
				continue
			}
			out = append(out, t)
		}
		n.EmailTemplates = out
	})
	return deleted
}

// AppendActivity appends to the audit trail. Activities are append-only;
// the store exposes no update or delete for them.
func (s *Store) AppendActivity(a crm.Activity) {
	s.mutate(func(n *Snapshot) {
		n.Activities = appended(n.Activities, a)
	})
}

func (s *Store) AppendChatMessage(m crm.ChatMessage) {
	s.mutate(func(n *Snapshot) {
		n.ChatHistory = appended(n.ChatHistory, m)
	})
}

func (s *Store) ClearChat() {
	s.mutate(func(n *Snapshot) {
		n.ChatHistory = nil
	})
}

// InsertBatch applies one generation run as a single transition: the batch,
// its candidate leads, and the lastRun stamp on the originating ICP profile.
func (s *Store) InsertBatch(batch crm.SDRBatch, leads []crm.SDRLead, runTime time.Time) {
	s.mutate(func(n *Snapshot) {
		n.SDRBatches = prepended(n.SDRBatches, batch)
		n.SDRLeads = appendedAll(n.SDRLeads, leads)

		profiles := make([]crm.ICPProfile, len(n.ICPProfiles))
		copy(profiles, n.ICPProfiles)
		for i := range profiles {
			if profiles[i].ID == batch.ICPProfileID {
				t := runTime
				profiles[i].LastRun = &t
				break
			}
		}
		n.ICPProfiles = profiles
	})
}

// PromoteLead applies the approval composite mutation indivisibly: the new
// customer and the SDR_FIND activity are inserted and the lead is marked
// APPROVED with its customer back-reference in the same transition.
//
// The guard makes approval exactly-once: a missing lead or one that already
// left CANDIDATE is a no-op and creates nothing.
func (s *Store) PromoteLead(leadID string, customer crm.Customer, activity crm.Activity) bool {
	promoted := false
	s.mutate(func(n *Snapshot) {
		idx := -1
		for i, l := range n.SDRLeads {
			if l.ID == leadID {
				idx = i
				break
			}
		}
		if idx < 0 || n.SDRLeads[idx].Status != crm.LeadCandidate {
			return
		}

		leads := make([]crm.SDRLead, len(n.SDRLeads))
		copy(leads, n.SDRLeads)
		leads[idx].Status = crm.LeadApproved
		leads[idx].CustomerID = customer.ID

		n.SDRLeads = leads
		n.Customers = appended(n.Customers, customer)
		n.Activities = appended(n.Activities, activity)
		promoted = true
	})
	return promoted
}

// RejectLead marks a CANDIDATE lead REJECTED. Unknown ids and terminal
// leads are ignored, favoring idempotent review actions over strict
// validation.
func (s *Store) RejectLead(leadID string) bool {
	rejected := false
	s.mutate(func(n *Snapshot) {
		for i, l := range n.SDRLeads {
			if l.ID != leadID || l.Status != crm.LeadCandidate {
				continue
			}
			leads := make([]crm.SDRLead, len(n.SDRLeads))
			copy(leads, n.SDRLeads)
			leads[i].Status = crm.LeadRejected
			n.SDRLeads = leads
			rejected = true
			return
		}
	})
	return rejected
}

// BatchStats derives the review counters for one batch from current lead
// statuses.
func (s *Store) BatchStats(batchID string) BatchStats {
	snap := s.Snapshot()
	var stats BatchStats
	for _, l := range snap.SDRLeads {
		if l.BatchID != batchID {
			continue
		}
		stats.Total++
		switch l.Status {
		case crm.LeadApproved:
			stats.Approved++
		case crm.LeadRejected:
			stats.Rejected++
		default:
			stats.Pending++
		}
	}
	return stats
}
