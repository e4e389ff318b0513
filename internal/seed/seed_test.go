package seed

import (
	"context"
	"testing"

	"agentcrm/internal/domain/crm"
	"agentcrm/internal/store"
)

func TestLoad(t *testing.T) {
	ds, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(ds.Customers) != 2 {
		t.Fatalf("customers = %d, want 2", len(ds.Customers))
	}
	if len(ds.Deals) != 3 {
		t.Fatalf("deals = %d, want 3", len(ds.Deals))
	}
	if len(ds.ICPProfiles) != 1 || len(ds.SDRBatches) != 1 || len(ds.SDRLeads) != 2 {
		t.Fatalf("profiles = %d batches = %d leads = %d",
			len(ds.ICPProfiles), len(ds.SDRBatches), len(ds.SDRLeads))
	}

	for _, l := range ds.SDRLeads {
		if l.Status != crm.LeadCandidate {
			t.Fatalf("seed lead %s status = %s, want CANDIDATE", l.ID, l.Status)
		}
	}
	for _, d := range ds.Deals {
		found := false
		for _, c := range ds.Customers {
			if c.ID == d.CustomerID {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("deal %s references unknown customer %s", d.ID, d.CustomerID)
		}
	}
}

func TestApply(t *testing.T) {
	ds, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	st := store.New()
	if err := Apply(context.Background(), st, ds); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	snap := st.Snapshot()
	if len(snap.Customers) != 2 || len(snap.Deals) != 3 || len(snap.SDRLeads) != 2 {
		t.Fatalf("snapshot = %d customers, %d deals, %d leads",
			len(snap.Customers), len(snap.Deals), len(snap.SDRLeads))
	}

	profile, ok := snap.ICPProfileByID("icp-demo-1")
	if !ok {
		t.Fatalf("seed profile missing")
	}
	if profile.LastRun == nil {
		t.Fatalf("LastRun not stamped from seed batch")
	}

	stats := st.BatchStats("batch-demo-1")
	if stats.Total != 2 || stats.Pending != 2 {
		t.Fatalf("stats = %+v", stats)
	}
}
