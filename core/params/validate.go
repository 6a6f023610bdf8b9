// Package params - Validation and clamping
package params

import (
	"stratocost/internal/errors"
)

// ValidateSubscription checks the fields the coverage model requires.
// Out-of-range-but-plausible fractions are not rejected here; they are
// clamped by Clamped.
func ValidateSubscription(p *ServiceParameters) error {
	if p == nil {
		return errors.New(errors.TypeInvalidParameter, "nil parameters")
	}
	if p.AreaKm2 <= 0 {
		return errors.InvalidParameter(FieldAreaKm2, "must be positive")
	}
	if p.RevisitMinutes <= 0 {
		return errors.InvalidParameter(FieldRevisitMinutes, "must be positive")
	}
	return nil
}

// ValidateTasking checks the fields the tasking model requires.
func ValidateTasking(p *ServiceParameters, missionCount int) error {
	if p == nil {
		return errors.New(errors.TypeInvalidParameter, "nil parameters")
	}
	if missionCount < 0 {
		return errors.InvalidParameter(FieldMissionCount, "must not be negative")
	}
	return nil
}

// Clamped returns a copy with fractional fields forced into their valid
// domains. The caller's record is never mutated.
func (p *ServiceParameters) Clamped() ServiceParameters {
	c := *p
	c.DutyFraction = clamp(c.DutyFraction, 0, 1)
	c.CoverageEfficiency = clamp(c.CoverageEfficiency, 0, 1)
	c.OverlapFraction = clamp(c.OverlapFraction, 0, 0.95)
	c.NavEfficiency = clamp(c.NavEfficiency, 0.01, 1)
	c.MaintenanceBufferFraction = clamp(c.MaintenanceBufferFraction, 0, 0.99)
	if c.SpareBufferFraction < 0 {
		c.SpareBufferFraction = 0
	}
	if c.TurnRadiusKm < 0 {
		c.TurnRadiusKm = 0
	}
	if c.MTBFHours < 0 {
		c.MTBFHours = 0
	}
	if c.MTTRHours < 0 {
		c.MTTRHours = 0
	}
	return c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
