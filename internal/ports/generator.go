package ports

import (
	"context"
	"errors"

	"agentcrm/internal/domain/crm"
)

// ErrGeneratorUnavailable means no service credential is configured. The
// feature is disabled rather than failed: callers present it as such and
// never retry.
var ErrGeneratorUnavailable = errors.New("lead generator unavailable: no API key configured")

// ErrEmptyReply means the service answered but nothing usable could be
// extracted. Malformed structure and transport failure collapse into this
// one error; callers present it as "no leads found".
var ErrEmptyReply = errors.New("lead generator returned no usable reply")

// GenerationResult is one successful generation run: qualified drafts plus
// the grounding citations the service attached to them.
type GenerationResult struct {
	Drafts    []crm.LeadDraft
	Citations []crm.Citation
}

// LeadGenerator is the boundary to the external generative/search service.
//
// Implementations absorb every upstream fault: the only errors that cross
// this boundary are ErrGeneratorUnavailable and ErrEmptyReply. The call
// blocks on a network round-trip; cancellation is by context abandonment.
type LeadGenerator interface {
	Generate(ctx context.Context, icp crm.ICPProfile) (GenerationResult, error)
}
