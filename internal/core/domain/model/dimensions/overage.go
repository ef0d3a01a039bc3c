package dimensions

import "math"

// overageTier is one row of the volume-overage threshold table: shipments at
// or under MaxWeight may occupy up to Limit cubic units before they are
// flagged.
type overageTier struct {
	MaxWeight float64
	Limit     float64
}

// overageTiers is keyed by inclusive upper weight bound, ascending.
// Weights above heavyWeightCutoff are flagged regardless of cubic size.
func overageTiers() []overageTier {
	return []overageTier{
		{MaxWeight: 5, Limit: 172},
		{MaxWeight: 8, Limit: 345},
		{MaxWeight: 10, Limit: 518},
		{MaxWeight: 15, Limit: 691},
		{MaxWeight: 20, Limit: 864},
	}
}

// heavyWeightCutoff is the weight above which a package is always considered
// over the volume limit. Weights in (20, 20.01] fall between the last table
// row and this cutoff and are deliberately left unflagged, matching the
// billing table this engine reproduces.
const heavyWeightCutoff = 20.01

// OverageResult is the outcome of classifying a dimension tuple against the
// volume-overage table.
//
// A zero CubicSize means the classification was not applicable (missing
// dimensions), which is distinct from "within limit": callers gating UI
// warnings on OverLimit must check Applicable first before treating false
// as a clean bill.
type OverageResult struct {
	CubicSize float64
	OverLimit bool
}

// Applicable reports whether the classification was actually performed.
// False means the tuple had no computable cubic size.
func (r OverageResult) Applicable() bool {
	return r.CubicSize > 0
}

// Classify computes the cubic size of dims and flags it against the
// weight-tiered threshold table. Pure and deterministic, with no failure
// modes beyond "not applicable".
func Classify(dims DimensionSet) OverageResult {
	cubic := dims.CubicSize()
	if cubic <= 0 || math.IsNaN(cubic) || math.IsInf(cubic, 0) {
		return OverageResult{}
	}

	if dims.Weight > heavyWeightCutoff {
		return OverageResult{CubicSize: cubic, OverLimit: true}
	}

	for _, tier := range overageTiers() {
		if dims.Weight <= tier.MaxWeight {
			return OverageResult{CubicSize: cubic, OverLimit: cubic > tier.Limit}
		}
	}

	// Dead zone between the last tier and the heavy cutoff.
	return OverageResult{CubicSize: cubic, OverLimit: false}
}
