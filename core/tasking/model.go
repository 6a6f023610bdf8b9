// Package tasking implements the discrete tasked-mission cost model: a
// fixed count of missions flown under a named operating profile, priced
// per mission and per batch. Unlike the subscription model it has no
// revisit constraint and no fleet-sizing step.
//
// Compute is a pure function of its inputs and the catalogs.
package tasking

import (
	"math"

	"stratocost/core/catalog"
	"stratocost/core/params"
	"stratocost/core/pricing"
)

// epsilon floors every divisor that could collapse to zero
const epsilon = 1e-6

// Result is the complete derived record for a tasking computation.
type Result struct {
	// Name echoes the scenario name
	Name string `json:"name"`

	// ProfileKey is the resolved operating profile
	ProfileKey string `json:"profile_key"`

	// MissionCount is the number of tasked missions
	MissionCount int `json:"mission_count"`

	// Relay reports whether the platform class flies discrete relay flights
	Relay bool `json:"relay"`

	// DurationDays is the profile-scaled mission duration
	DurationDays float64 `json:"duration_days"`

	// MissionHours is the profile-scaled flight hours per mission
	MissionHours float64 `json:"mission_hours"`

	// CoveragePerMissionKm2 is the area one mission can image, used only
	// for per-km² normalization
	CoveragePerMissionKm2 float64 `json:"coverage_per_mission_km2"`

	// PerMissionCost is the fully loaded cost of one mission
	PerMissionCost float64 `json:"per_mission_cost"`

	// BatchCost is mission count times per-mission cost
	BatchCost float64 `json:"batch_cost"`

	// TargetMissionPrice is the per-mission price at the target margin
	TargetMissionPrice float64 `json:"target_mission_price"`

	// ChosenMissionPrice is the caller-proposed per-mission price when
	// supplied, else the target-margin price
	ChosenMissionPrice float64 `json:"chosen_mission_price"`

	// BatchChosenPrice is mission count times the chosen per-mission price
	BatchChosenPrice float64 `json:"batch_chosen_price"`

	// RealizedMargin is the gross margin at the chosen per-mission price
	RealizedMargin float64 `json:"realized_margin"`

	// BatchRealizedMargin is the gross margin over the whole batch
	BatchRealizedMargin float64 `json:"batch_realized_margin"`

	// CostPerKm2 is per-mission cost per km² of mission coverage
	CostPerKm2 float64 `json:"cost_per_km2"`

	// ChosenPricePerKm2 is the chosen per-mission price per km² of coverage
	ChosenPricePerKm2 float64 `json:"chosen_price_per_km2"`

	// Warnings lists non-fatal degeneracies
	Warnings []string `json:"warnings,omitempty"`
}

// Compute runs the tasking cost model for missionCount missions under the
// named operating profile. Unknown profile keys resolve to the standard
// profile; a negative mission count is an invalid-parameter error.
func Compute(sp *params.ServiceParameters, missionCount int, profileKey string) (*Result, error) {
	if err := params.ValidateTasking(sp, missionCount); err != nil {
		return nil, err
	}
	p := sp.Clamped()
	profile := catalog.ProfileFor(profileKey)
	platform := catalog.PlatformFor(p.PlatformClass)

	r := &Result{
		Name:         p.Name,
		ProfileKey:   profile.Key.String(),
		MissionCount: missionCount,
		Relay:        platform.Relay,
	}

	// Baseline duration resolves exactly as in the subscription model,
	// then the profile scales it. Hours follow the scaled duration.
	var baseDays float64
	if platform.Relay {
		baseDays = math.Max(p.RelayFlightHours/24, 1.0/24)
	} else {
		baseDays = p.MissionDurationDays
	}
	r.DurationDays = baseDays * profile.DurationMultiplier
	r.MissionHours = r.DurationDays * 24

	// Per-mission cost. CAPEX amortization deliberately uses the platform
	// catalog's default capex and lifetime constants rather than the
	// caller's per-call fields; tasked missions are quoted against the
	// standard fleet, not a customer-specific airframe.
	r.PerMissionCost = p.FixedCostPerMission*profile.FixedCostMultiplier +
		p.HourlyCost*profile.HourlyCostMultiplier*r.MissionHours +
		platform.AmortizationPerDay()*r.DurationDays +
		p.ConsumablesPerMission*profile.ConsumablesMultiplier

	r.BatchCost = float64(missionCount) * r.PerMissionCost

	// Coverage per mission, for normalization only.
	covRate := p.SwathKm * p.GroundSpeedKmh * p.DutyFraction * p.CoverageEfficiency
	if covRate < epsilon {
		covRate = epsilon
		r.warn("coverage rate collapsed to its floor; per-km² figures are not physically meaningful")
	}
	r.CoveragePerMissionKm2 = covRate * r.MissionHours

	// Pricing.
	r.TargetMissionPrice = pricing.PriceFromCost(r.PerMissionCost, p.TargetGrossMargin)
	if p.ProposedMissionPrice > 0 {
		r.ChosenMissionPrice = p.ProposedMissionPrice
	} else {
		r.ChosenMissionPrice = r.TargetMissionPrice
	}
	r.BatchChosenPrice = r.ChosenMissionPrice * float64(missionCount)
	r.RealizedMargin = pricing.MarginFromPrice(r.ChosenMissionPrice, r.PerMissionCost)
	r.BatchRealizedMargin = pricing.MarginFromPrice(r.BatchChosenPrice, r.BatchCost)

	covPerMission := math.Max(r.CoveragePerMissionKm2, epsilon)
	r.CostPerKm2 = r.PerMissionCost / covPerMission
	r.ChosenPricePerKm2 = r.ChosenMissionPrice / covPerMission

	return r, nil
}

func (r *Result) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
