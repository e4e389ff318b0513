// Package sdr implements the lead-qualification pipeline: an ICP profile is
// sent through the generator boundary, reconciled drafts are materialized
// into a reviewable batch, and human review promotes or rejects each lead.
package sdr

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"agentcrm/internal/bootstrap/logging"
	"agentcrm/internal/domain/crm"
	"agentcrm/internal/errs"
	"agentcrm/internal/ports"
	"agentcrm/internal/store"
)

// Promoted customers get a fixed midpoint digital-gap score; the generator
// does not supply one.
const defaultDigitalGapScore = 50

type Service struct {
	store     *store.Store
	generator ports.LeadGenerator

	now   func() time.Time
	newID func(prefix string) string
}

func NewService(st *store.Store, gen ports.LeadGenerator) *Service {
	return &Service{
		store:     st,
		generator: gen,
		now:       time.Now,
		newID:     prefixedID,
	}
}

func prefixedID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// RunStatus tells the caller how a generation run ended. Generator faults
// never escape as errors; they collapse into Disabled or NoLeads.
type RunStatus string

const (
	RunOK       RunStatus = "OK"
	RunDisabled RunStatus = "DISABLED"
	RunNoLeads  RunStatus = "NO_LEADS"
)

type RunResult struct {
	Status    RunStatus
	BatchID   string
	LeadCount int
}

// RunProfile executes one generation run for the given ICP profile. On
// success the batch and its CANDIDATE leads are stored and the profile's
// lastRun is stamped, all in one store transition. When the generator finds
// nothing, no batch is created at all.
func (s *Service) RunProfile(ctx context.Context, icpID string) (RunResult, error) {
	if ctx == nil {
		return RunResult{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return RunResult{}, errs.Wrap(err, "check context")
	}
	if s.generator == nil {
		return RunResult{}, errors.New("lead generator is required")
	}

	logCtx := logging.WithAttrs(ctx,
		slog.String("component", "usecase.sdr"),
		slog.String("icp_profile_id", icpID),
	)

	profile, ok := s.store.Snapshot().ICPProfileByID(icpID)
	if !ok {
		return RunResult{}, errs.Wrapf(crm.ErrProfileNotFound, "icp profile %q", icpID)
	}

	generated, err := s.generator.Generate(logCtx, profile)
	switch {
	case errors.Is(err, ports.ErrGeneratorUnavailable):
		logging.Warn(logCtx, "lead generation disabled, no credential configured")
		return RunResult{Status: RunDisabled}, nil
	case err != nil:
		logging.Warn(logCtx, "lead generation produced no result", slog.Any("err", errs.Loggable(err)))
		return RunResult{Status: RunNoLeads}, nil
	case len(generated.Drafts) == 0:
		logging.Info(logCtx, "lead generation returned zero drafts, skipping batch")
		return RunResult{Status: RunNoLeads}, nil
	}

	runTime := s.now()
	batch, leads := s.materialize(profile, generated.Drafts, runTime)
	s.store.InsertBatch(batch, leads, runTime)

	logging.Info(logCtx, "sdr batch created",
		slog.String("batch_id", batch.ID),
		slog.Int("lead_count", len(leads)),
	)
	return RunResult{Status: RunOK, BatchID: batch.ID, LeadCount: len(leads)}, nil
}

// Approve promotes a CANDIDATE lead into a Customer, appends the SDR_FIND
// audit activity, and links lead to customer, as one indivisible store
// transition. Unknown ids and leads already out of CANDIDATE are a no-op:
// re-approving never creates a duplicate customer.
func (s *Service) Approve(ctx context.Context, leadID string) (crm.Customer, bool, error) {
	if ctx == nil {
		return crm.Customer{}, false, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return crm.Customer{}, false, errs.Wrap(err, "check context")
	}

	logCtx := logging.WithAttrs(ctx,
		slog.String("component", "usecase.sdr"),
		slog.String("lead_id", leadID),
	)

	lead, ok := s.store.Snapshot().LeadByID(leadID)
	if !ok || lead.Status != crm.LeadCandidate {
		logging.Info(logCtx, "approve ignored, lead missing or already reviewed")
		return crm.Customer{}, false, nil
	}

	now := s.now()
	customer := s.customerFromLead(lead, now)
	activity := s.promotionActivity(lead, customer, now)

	// PromoteLead re-checks the CANDIDATE guard under the store lock, so a
	// duplicate approve between our snapshot read and here still creates
	// exactly one customer.
	if !s.store.PromoteLead(leadID, customer, activity) {
		logging.Info(logCtx, "approve lost race, lead already reviewed")
		return crm.Customer{}, false, nil
	}

	logging.Info(logCtx, "lead promoted",
		slog.String("customer_id", customer.ID),
		slog.Int("match_score", lead.MatchScore),
	)
	return customer, true, nil
}

// Reject marks a CANDIDATE lead REJECTED. No other entity is touched.
// Unknown ids and terminal leads are ignored.
func (s *Service) Reject(ctx context.Context, leadID string) (bool, error) {
	if ctx == nil {
		return false, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return false, errs.Wrap(err, "check context")
	}

	rejected := s.store.RejectLead(leadID)
	logging.Info(logging.WithAttrs(ctx, slog.String("component", "usecase.sdr")),
		"lead reject processed",
		slog.String("lead_id", leadID),
		slog.Bool("rejected", rejected),
	)
	return rejected, nil
}

type ListLeadsInput struct {
	BatchID    string
	SortKey    crm.LeadSortKey
	Descending bool
}

// ListLeads returns review-queue leads filtered by batch ("all" disables the
// filter) and stably sorted by the requested key.
func (s *Service) ListLeads(ctx context.Context, input ListLeadsInput) ([]crm.SDRLead, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	leads := crm.FilterLeadsByBatch(s.store.Snapshot().SDRLeads, input.BatchID)
	if input.SortKey == "" {
		out := make([]crm.SDRLead, len(leads))
		copy(out, leads)
		return out, nil
	}
	return crm.SortLeads(leads, input.SortKey, input.Descending), nil
}

// BatchSummary pairs a stored batch with counters derived from current lead
// statuses. The stored ApprovedLeads/RejectedLeads fields stay at their
// creation values; reads recompute.
type BatchSummary struct {
	crm.SDRBatch
	Stats store.BatchStats
}

func (s *Service) ListBatches(ctx context.Context) ([]BatchSummary, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	snap := s.store.Snapshot()
	out := make([]BatchSummary, 0, len(snap.SDRBatches))
	for _, b := range snap.SDRBatches {
		stats := s.store.BatchStats(b.ID)
		b.ApprovedLeads = stats.Approved
		b.RejectedLeads = stats.Rejected
		out = append(out, BatchSummary{SDRBatch: b, Stats: stats})
	}
	return out, nil
}

type CreateProfileInput struct {
	Name          string
	Geography     string
	Categories    []string
	TargetPackage crm.PackageTier
}

// CreateProfile registers a new ICP targeting spec.
func (s *Service) CreateProfile(ctx context.Context, input CreateProfileInput) (crm.ICPProfile, error) {
	if ctx == nil {
		return crm.ICPProfile{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return crm.ICPProfile{}, errs.Wrap(err, "check context")
	}
	if strings.TrimSpace(input.Name) == "" {
		return crm.ICPProfile{}, errors.New("profile name is required")
	}
	if len(input.Categories) == 0 {
		return crm.ICPProfile{}, errors.New("at least one category is required")
	}

	pkg := input.TargetPackage
	if pkg == "" {
		pkg = crm.PackageAny
	}
	profile := crm.ICPProfile{
		ID:            s.newID("icp"),
		Name:          strings.TrimSpace(input.Name),
		Geography:     strings.TrimSpace(input.Geography),
		Categories:    input.Categories,
		TargetPackage: pkg,
		Active:        true,
	}
	s.store.AddICPProfile(profile)
	return profile, nil
}

func (s *Service) customerFromLead(lead crm.SDRLead, now time.Time) crm.Customer {
	return crm.Customer{
		ID:          s.newID("cust"),
		CompanyName: lead.CompanyName,
		Category:    lead.Category,
		Rating:      lead.Rating,
		ReviewCount: lead.Reviews,
		Address:     lead.Address,
		Website:     lead.Website,
		Phone:       lead.Phone,
		Status:      crm.CustomerStatusLead,
		Tags:        []string{crm.TagSDRSourced, lead.Tier.Tag()},

		DigitalGapScore:      defaultDigitalGapScore,
		ICPFitScore:          lead.MatchScore,
		PainPoints:           lead.TalkingPoints,
		SalesOpportunities:   []string{},
		QualificationSummary: lead.QualificationSummary,

		CreatedAt: now,
	}
}

func (s *Service) promotionActivity(lead crm.SDRLead, customer crm.Customer, now time.Time) crm.Activity {
	return crm.Activity{
		ID:         s.newID("act"),
		CustomerID: customer.ID,
		Type:       crm.ActivitySDRFind,
		Title:      "SDR lead approved: " + lead.CompanyName,
		Content:    promotionContent(lead),
		Timestamp:  now,
	}
}
