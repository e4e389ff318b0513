package store

import (
	"testing"
	"time"

	"agentcrm/internal/domain/crm"
)

func seedBatch(t *testing.T, s *Store) (crm.SDRBatch, []crm.SDRLead) {
	t.Helper()

	s.AddICPProfile(crm.ICPProfile{ID: "icp-1", Name: "NYC Plumbers", Active: true})
	batch := crm.SDRBatch{
		ID:              "batch-1",
		ICPProfileID:    "icp-1",
		Name:            "NYC Plumbers Run 2026-08-21",
		Status:          crm.BatchPendingReview,
		TotalCandidates: 2,
	}
	leads := []crm.SDRLead{
		{ID: "lead-1", BatchID: "batch-1", CompanyName: "Brooklyn Pipes", Status: crm.LeadCandidate, Tier: crm.TierA, MatchScore: 88},
		{ID: "lead-2", BatchID: "batch-1", CompanyName: "Mario Bros Plumbing", Status: crm.LeadCandidate, Tier: crm.TierC, MatchScore: 45},
	}
	s.InsertBatch(batch, leads, time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC))
	return batch, leads
}

func TestSnapshotIsolation(t *testing.T) {
	s := New()
	s.AddCustomer(crm.Customer{ID: "cust-1", CompanyName: "Apex Plumbing"})

	before := s.Snapshot()
	s.AddCustomer(crm.Customer{ID: "cust-2", CompanyName: "Elite Chiropractic"})

	if len(before.Customers) != 1 {
		t.Fatalf("held snapshot changed: %d customers, want 1", len(before.Customers))
	}
	if after := s.Snapshot(); len(after.Customers) != 2 {
		t.Fatalf("new snapshot = %d customers, want 2", len(after.Customers))
	}
}

func TestUpdateCustomerCopiesOnWrite(t *testing.T) {
	s := New()
	s.AddCustomer(crm.Customer{ID: "cust-1", CompanyName: "Apex Plumbing", Status: crm.CustomerStatusLead})

	before := s.Snapshot()
	if !s.UpdateCustomer("cust-1", func(c *crm.Customer) {
		c.Status = crm.CustomerStatusCustomer
	}) {
		t.Fatalf("UpdateCustomer() = false, want true")
	}

	if before.Customers[0].Status != crm.CustomerStatusLead {
		t.Fatalf("held snapshot mutated: status = %s", before.Customers[0].Status)
	}
	if got := s.Snapshot().Customers[0].Status; got != crm.CustomerStatusCustomer {
		t.Fatalf("status = %s, want CUSTOMER", got)
	}

	if s.UpdateCustomer("missing", func(*crm.Customer) {}) {
		t.Fatalf("UpdateCustomer(missing) = true, want false")
	}
}

func TestInsertBatchStampsLastRun(t *testing.T) {
	s := New()
	seedBatch(t, s)

	snap := s.Snapshot()
	if len(snap.SDRBatches) != 1 || len(snap.SDRLeads) != 2 {
		t.Fatalf("batches = %d, leads = %d", len(snap.SDRBatches), len(snap.SDRLeads))
	}
	profile, ok := snap.ICPProfileByID("icp-1")
	if !ok {
		t.Fatalf("profile icp-1 missing")
	}
	if profile.LastRun == nil || !profile.LastRun.Equal(time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("LastRun = %v", profile.LastRun)
	}
}

func TestInsertBatchPrependsNewestFirst(t *testing.T) {
	s := New()
	seedBatch(t, s)
	s.InsertBatch(crm.SDRBatch{ID: "batch-2", ICPProfileID: "icp-1"}, nil, time.Now())

	snap := s.Snapshot()
	if snap.SDRBatches[0].ID != "batch-2" {
		t.Fatalf("first batch = %s, want batch-2", snap.SDRBatches[0].ID)
	}
}

func TestPromoteLeadExactlyOnce(t *testing.T) {
	s := New()
	seedBatch(t, s)

	customer := crm.Customer{ID: "cust-1", CompanyName: "Brooklyn Pipes"}
	activity := crm.Activity{ID: "act-1", CustomerID: "cust-1", Type: crm.ActivitySDRFind}

	if !s.PromoteLead("lead-1", customer, activity) {
		t.Fatalf("PromoteLead() = false, want true")
	}
	if s.PromoteLead("lead-1", crm.Customer{ID: "cust-dup"}, crm.Activity{ID: "act-dup"}) {
		t.Fatalf("second PromoteLead() = true, want no-op")
	}

	snap := s.Snapshot()
	if len(snap.Customers) != 1 {
		t.Fatalf("customers = %d, want 1", len(snap.Customers))
	}
	if len(snap.Activities) != 1 {
		t.Fatalf("activities = %d, want 1", len(snap.Activities))
	}
	lead, _ := snap.LeadByID("lead-1")
	if lead.Status != crm.LeadApproved || lead.CustomerID != "cust-1" {
		t.Fatalf("lead = %s customerID = %q", lead.Status, lead.CustomerID)
	}
}

func TestPromoteLeadUnknownID(t *testing.T) {
	s := New()
	seedBatch(t, s)

	if s.PromoteLead("missing", crm.Customer{ID: "cust-x"}, crm.Activity{ID: "act-x"}) {
		t.Fatalf("PromoteLead(missing) = true, want false")
	}
	if snap := s.Snapshot(); len(snap.Customers) != 0 || len(snap.Activities) != 0 {
		t.Fatalf("no-op promotion inserted rows")
	}
}

func TestRejectLeadTerminalStates(t *testing.T) {
	s := New()
	seedBatch(t, s)

	if !s.RejectLead("lead-2") {
		t.Fatalf("RejectLead() = false, want true")
	}
	if s.RejectLead("lead-2") {
		t.Fatalf("second RejectLead() = true, want no-op")
	}

	s.PromoteLead("lead-1", crm.Customer{ID: "cust-1"}, crm.Activity{ID: "act-1"})
	if s.RejectLead("lead-1") {
		t.Fatalf("RejectLead(approved) = true, want no-op")
	}

	lead, _ := s.Snapshot().LeadByID("lead-2")
	if lead.Status != crm.LeadRejected {
		t.Fatalf("lead-2 status = %s, want REJECTED", lead.Status)
	}
	if lead.CustomerID != "" {
		t.Fatalf("rejected lead has customerID = %q", lead.CustomerID)
	}
}

func TestBatchStatsDerived(t *testing.T) {
	s := New()
	seedBatch(t, s)

	stats := s.BatchStats("batch-1")
	if stats.Total != 2 || stats.Pending != 2 || stats.Approved != 0 || stats.Rejected != 0 {
		t.Fatalf("stats = %+v", stats)
	}

	s.PromoteLead("lead-1", crm.Customer{ID: "cust-1"}, crm.Activity{ID: "act-1"})
	s.RejectLead("lead-2")

	stats = s.BatchStats("batch-1")
	if stats.Pending != 0 || stats.Approved != 1 || stats.Rejected != 1 {
		t.Fatalf("stats after review = %+v", stats)
	}

	if empty := s.BatchStats("missing"); empty.Total != 0 {
		t.Fatalf("BatchStats(missing) = %+v", empty)
	}
}

func TestDeleteEmailTemplate(t *testing.T) {
	s := New()
	s.AddEmailTemplate(crm.EmailTemplate{ID: "tpl-1", Name: "Intro"})

	if !s.DeleteEmailTemplate("tpl-1") {
		t.Fatalf("DeleteEmailTemplate() = false, want true")
	}
	if s.DeleteEmailTemplate("tpl-1") {
		t.Fatalf("second DeleteEmailTemplate() = true, want false")
	}
	if got := len(s.Snapshot().EmailTemplates); got != 0 {
		t.Fatalf("templates = %d, want 0", got)
	}
}

func TestChatHistoryAppendAndClear(t *testing.T) {
	s := New()
	s.AppendChatMessage(crm.ChatMessage{ID: "msg-1", Role: crm.ChatRoleUser, Content: "hi"})
	s.AppendChatMessage(crm.ChatMessage{ID: "msg-2", Role: crm.ChatRoleModel, Content: "hello"})

	if got := len(s.Snapshot().ChatHistory); got != 2 {
		t.Fatalf("history = %d, want 2", got)
	}

	s.ClearChat()
	if got := len(s.Snapshot().ChatHistory); got != 0 {
		t.Fatalf("history after clear = %d, want 0", got)
	}
}
