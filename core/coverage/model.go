// Package coverage implements the continuous-subscription cost model: pass
// geometry over the AOI, annual revisit demand, reliability-driven fleet
// sizing, amortized cost composition, and margin-based pricing.
//
// Compute is a pure function of its parameter record and the catalogs:
// identical inputs always produce identical outputs, and no state survives
// between calls.
package coverage

import (
	"math"

	"stratocost/core/params"
	"stratocost/core/pricing"
)

const (
	// minutesPerYear is 365 * 24 * 60
	minutesPerYear = 525600.0

	// epsilon floors every divisor that could collapse to zero
	epsilon = 1e-6
)

// Result is the complete derived record for a subscription computation.
// It is never partially populated: Compute returns either every field or
// an error.
type Result struct {
	// Name echoes the scenario name
	Name string `json:"name"`

	// Relay reports whether the platform class flies discrete relay flights
	Relay bool `json:"relay"`

	// EffectiveWidthKm is the AOI width used for strip planning
	EffectiveWidthKm float64 `json:"effective_width_km"`

	// DurationDays is the resolved mission duration
	DurationDays float64 `json:"duration_days"`

	// MissionHours is the flight hours per mission
	MissionHours float64 `json:"mission_hours"`

	// CoverageRateKm2h is the effective coverage rate in km² per hour
	CoverageRateKm2h float64 `json:"coverage_rate_km2h"`

	// StripCount is the number of imaging strips per pass
	StripCount int `json:"strip_count"`

	// SweepMinutes is the time to image the AOI once
	SweepMinutes float64 `json:"sweep_minutes"`

	// RepositionMinutes is the turn/transit time per pass
	RepositionMinutes float64 `json:"reposition_minutes"`

	// CycleMinutes is sweep plus reposition
	CycleMinutes float64 `json:"cycle_minutes"`

	// SlackMinutes is the revisit requirement minus the cycle time;
	// negative slack means a single platform cannot meet the revisit
	SlackMinutes float64 `json:"slack_minutes"`

	// RevisitsPerYear is the annual number of required passes
	RevisitsPerYear int `json:"revisits_per_year"`

	// AnnualCoverageDemandKm2 is AOI area times revisits per year
	AnnualCoverageDemandKm2 float64 `json:"annual_coverage_demand_km2"`

	// CoveragePerMissionKm2 is the area one mission can image
	CoveragePerMissionKm2 float64 `json:"coverage_per_mission_km2"`

	// MissionsPerYear is the annual mission demand
	MissionsPerYear int `json:"missions_per_year"`

	// Availability is the MTBF/MTTR-derived platform availability
	Availability float64 `json:"availability"`

	// UsableDaysPerYear is flight-day capacity net of maintenance buffer
	UsableDaysPerYear float64 `json:"usable_days_per_year"`

	// MissionsPerPlatformYear is yearly mission capacity of one platform
	// (zero in relay mode, which has no turnaround cycle)
	MissionsPerPlatformYear int `json:"missions_per_platform_year"`

	// MinPlatformsForRevisit is the fleet floor forced by cycle time
	MinPlatformsForRevisit int `json:"min_platforms_for_revisit"`

	// BaseFleetSize is the fleet before the spare buffer
	BaseFleetSize int `json:"base_fleet_size"`

	// FleetSize is the final fleet including spares
	FleetSize int `json:"fleet_size"`

	// PerMissionCost is the fully loaded cost of one mission
	PerMissionCost float64 `json:"per_mission_cost"`

	// AnnualCost is the yearly operating cost including overhead
	AnnualCost float64 `json:"annual_cost"`

	// CostPerKm2Revisit is annual cost per km² per revisit cycle
	CostPerKm2Revisit float64 `json:"cost_per_km2_revisit"`

	// CostPerKm2Year is annual cost per km² of AOI per year
	CostPerKm2Year float64 `json:"cost_per_km2_year"`

	// TargetAnnualPrice is the annual price at the target margin
	TargetAnnualPrice float64 `json:"target_annual_price"`

	// ChosenAnnualPrice is the caller-proposed price when supplied,
	// else the target-margin price
	ChosenAnnualPrice float64 `json:"chosen_annual_price"`

	// RealizedMargin is the gross margin at the chosen price
	RealizedMargin float64 `json:"realized_margin"`

	// ChosenPricePerKm2Revisit normalizes the chosen price per km² per revisit
	ChosenPricePerKm2Revisit float64 `json:"chosen_price_per_km2_revisit"`

	// ChosenPricePerKm2Year normalizes the chosen price per km² per year
	ChosenPricePerKm2Year float64 `json:"chosen_price_per_km2_year"`

	// TargetMissionPrice is the per-mission price at the target margin
	TargetMissionPrice float64 `json:"target_mission_price"`

	// Warnings lists non-fatal degeneracies (floored divisors, negative slack)
	Warnings []string `json:"warnings,omitempty"`
}

// Compute runs the subscription cost model. It returns the full result
// record, or an invalid-parameter error naming the offending field.
func Compute(sp *params.ServiceParameters) (*Result, error) {
	if err := params.ValidateSubscription(sp); err != nil {
		return nil, err
	}
	p := sp.Clamped()

	r := &Result{
		Name:  p.Name,
		Relay: sp.Relay(),
	}

	r.EffectiveWidthKm = p.EffectiveWidthKm()

	// Mission duration. Relay platforms fly a single discrete flight; the
	// duration floor of one hour keeps downstream day-based terms defined.
	if r.Relay {
		r.DurationDays = math.Max(p.RelayFlightHours/24, 1.0/24)
		r.MissionHours = p.RelayFlightHours
	} else {
		r.DurationDays = p.MissionDurationDays
		r.MissionHours = r.DurationDays * 24
	}

	// Coverage rate, floored before any use as a divisor.
	covRate := p.SwathKm * p.GroundSpeedKmh * p.DutyFraction * p.CoverageEfficiency
	if covRate < epsilon {
		covRate = epsilon
		r.warn("coverage rate collapsed to its floor; results are not physically meaningful")
	}
	r.CoverageRateKm2h = covRate

	// Strip count from swath spacing.
	spacing := p.SwathKm * (1 - p.OverlapFraction)
	if spacing < epsilon {
		spacing = epsilon
		r.warn("strip spacing collapsed to its floor")
	}
	if p.Shape == params.ShapeCorridor {
		n := int(math.Ceil(p.CorridorWidthKm / spacing))
		if n < 1 {
			n = 1
		}
		r.StripCount = n
	} else {
		r.StripCount = int(math.Ceil(r.EffectiveWidthKm / spacing))
	}

	// Pass timing.
	r.SweepMinutes = p.AreaKm2 / covRate * 60

	navSpeed := p.GroundSpeedKmh * p.NavEfficiency
	if navSpeed < epsilon {
		navSpeed = epsilon
		r.warn("reposition speed collapsed to its floor")
	}
	turnTime := math.Pi * p.TurnRadiusKm / navSpeed * 60
	if p.Shape == params.ShapeCorridor && r.StripCount == 1 {
		r.RepositionMinutes = turnTime
	} else {
		r.RepositionMinutes = turnTime * float64(r.StripCount)
	}

	r.CycleMinutes = r.SweepMinutes + r.RepositionMinutes
	r.SlackMinutes = p.RevisitMinutes - r.CycleMinutes
	if r.SlackMinutes < 0 {
		r.warn("cycle time exceeds the revisit requirement; a single platform cannot sustain this revisit")
	}

	// Annual demand.
	r.RevisitsPerYear = int(math.Ceil(minutesPerYear / p.RevisitMinutes))
	r.AnnualCoverageDemandKm2 = p.AreaKm2 * float64(r.RevisitsPerYear)
	r.CoveragePerMissionKm2 = covRate * r.MissionHours
	r.MissionsPerYear = int(math.Ceil(r.AnnualCoverageDemandKm2 / math.Max(r.CoveragePerMissionKm2, epsilon)))

	// Reliability-driven capacity.
	if p.MTBFHours+p.MTTRHours > 0 {
		r.Availability = p.MTBFHours / (p.MTBFHours + p.MTTRHours)
	}
	if r.Availability < 0.5 {
		r.Availability = 0.5
	} else if r.Availability > 0.999 {
		r.Availability = 0.999
	}

	r.UsableDaysPerYear = p.MaxFlightDaysPerYear * (1 - p.MaintenanceBufferFraction)
	if !r.Relay {
		cycleDays := math.Max(r.DurationDays+p.TurnaroundDays, 0.1)
		r.MissionsPerPlatformYear = int(math.Floor(r.UsableDaysPerYear * r.Availability / cycleDays))
	}

	// Fleet sizing. Relay platforms are flown one flight at a time.
	r.MinPlatformsForRevisit = int(math.Ceil(r.CycleMinutes / p.RevisitMinutes))
	if r.Relay {
		r.BaseFleetSize = 1
		r.FleetSize = 1
	} else {
		perPlatform := r.MissionsPerPlatformYear
		if perPlatform < 1 {
			perPlatform = 1
		}
		base := int(math.Ceil(float64(r.MissionsPerYear) / float64(perPlatform)))
		if base < r.MinPlatformsForRevisit {
			base = r.MinPlatformsForRevisit
		}
		if base < 1 {
			base = 1
		}
		r.BaseFleetSize = base
		r.FleetSize = int(math.Ceil(float64(base) * (1 + p.SpareBufferFraction)))
	}

	// Cost composition.
	platformLife := math.Max(p.PlatformLifeDays, epsilon)
	payloadLife := math.Max(p.PayloadLifeDays, epsilon)
	if p.PlatformLifeDays < epsilon || p.PayloadLifeDays < epsilon {
		r.warn("capex lifetime collapsed to its floor")
	}
	amortPerDay := p.PlatformCapex/platformLife + p.PayloadCapex/payloadLife
	r.PerMissionCost = p.FixedCostPerMission +
		p.HourlyCost*r.MissionHours +
		amortPerDay*r.DurationDays +
		p.ConsumablesPerMission

	r.AnnualCost = float64(r.MissionsPerYear)*r.PerMissionCost + p.AnnualFixedOverhead
	r.CostPerKm2Revisit = r.AnnualCost / math.Max(r.AnnualCoverageDemandKm2, 1)
	r.CostPerKm2Year = r.AnnualCost / math.Max(p.AreaKm2, 1)

	// Pricing.
	r.TargetAnnualPrice = pricing.PriceFromCost(r.AnnualCost, p.TargetGrossMargin)
	if p.ProposedAnnualPrice > 0 {
		r.ChosenAnnualPrice = p.ProposedAnnualPrice
	} else {
		r.ChosenAnnualPrice = r.TargetAnnualPrice
	}
	r.RealizedMargin = pricing.MarginFromPrice(r.ChosenAnnualPrice, r.AnnualCost)
	r.ChosenPricePerKm2Revisit = r.ChosenAnnualPrice / math.Max(r.AnnualCoverageDemandKm2, 1)
	r.ChosenPricePerKm2Year = r.ChosenAnnualPrice / math.Max(p.AreaKm2, 1)
	r.TargetMissionPrice = pricing.PriceFromCost(r.PerMissionCost, p.TargetGrossMargin)

	return r, nil
}

func (r *Result) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
