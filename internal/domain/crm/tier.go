package crm

import "strings"

// Tier is the coarse priority bucket assigned to a lead by the generating
// service. A is high priority (good business, weak digital presence), C is
// already well served or too small.
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// TagSDRSourced marks customers that were promoted out of an SDR batch.
const TagSDRSourced = "sdr_sourced"

// NormalizeTier maps arbitrary service output onto a known tier. Anything
// unrecognized falls back to B.
func NormalizeTier(raw string) Tier {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "A":
		return TierA
	case "B":
		return TierB
	case "C":
		return TierC
	default:
		return TierB
	}
}

// Tag returns the customer tag for this tier, e.g. "tier_a".
func (t Tier) Tag() string {
	return "tier_" + strings.ToLower(string(t))
}

// rank orders tiers for sorting, A before B before C.
func (t Tier) rank() int {
	switch t {
	case TierA:
		return 0
	case TierB:
		return 1
	case TierC:
		return 2
	default:
		return 3
	}
}
