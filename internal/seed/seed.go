// Package seed loads the embedded demo dataset into an empty store. The
// data mirrors a small local-services pipeline: two customers, three deals,
// one ICP profile and one reviewable SDR batch.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"

	"gopkg.in/yaml.v3"

	"agentcrm/internal/bootstrap/logging"
	"agentcrm/internal/domain/crm"
	"agentcrm/internal/errs"
	"agentcrm/internal/store"
)

//go:embed data.yaml
var demoData []byte

type Dataset struct {
	Customers      []crm.Customer      `yaml:"customers"`
	Deals          []crm.Deal          `yaml:"deals"`
	Tasks          []crm.Task          `yaml:"tasks"`
	ICPProfiles    []crm.ICPProfile    `yaml:"icpProfiles"`
	SDRBatches     []crm.SDRBatch      `yaml:"sdrBatches"`
	SDRLeads       []crm.SDRLead       `yaml:"sdrLeads"`
	EmailTemplates []crm.EmailTemplate `yaml:"emailTemplates"`
}

// Load decodes the embedded demo dataset.
func Load() (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(demoData, &ds); err != nil {
		return Dataset{}, errs.Wrap(err, "decode demo dataset")
	}
	return ds, nil
}

// Apply inserts the dataset through the store's named mutations. Batches
// and leads go in together so the insert stays one transition per batch.
func Apply(ctx context.Context, st *store.Store, ds Dataset) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if st == nil {
		return errors.New("store is required")
	}

	for _, c := range ds.Customers {
		st.AddCustomer(c)
	}
	for _, d := range ds.Deals {
		st.AddDeal(d)
	}
	for _, t := range ds.Tasks {
		st.AddTask(t)
	}
	for _, p := range ds.ICPProfiles {
		st.AddICPProfile(p)
	}
	for _, t := range ds.EmailTemplates {
		st.AddEmailTemplate(t)
	}
	for _, b := range ds.SDRBatches {
		leads := make([]crm.SDRLead, 0, len(ds.SDRLeads))
		for _, l := range ds.SDRLeads {
			if l.BatchID == b.ID {
				leads = append(leads, l)
			}
		}
		st.InsertBatch(b, leads, b.RunDate)
	}

	logging.Info(logging.WithAttrs(ctx, slog.String("component", "seed")),
		"demo dataset applied",
		slog.Int("customers", len(ds.Customers)),
		slog.Int("deals", len(ds.Deals)),
		slog.Int("batches", len(ds.SDRBatches)),
		slog.Int("leads", len(ds.SDRLeads)),
	)
	return nil
}
