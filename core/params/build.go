// Package params - Construction boundary
package params

import (
	"math"
	"strings"

	"stratocost/core/catalog"
	"stratocost/internal/errors"
)

// Raw is an untyped parameter set as collected by a caller: form fields,
// scenario file attributes, CLI flags. Every value is a raw string prior
// to coercion.
type Raw map[string]string

// Build coerces a raw parameter set into a ServiceParameters record.
// Non-required fields fall back to their documented defaults; required
// fields for the selected mode yield an invalid-parameter error naming
// the field when missing, non-numeric, or out of domain.
func Build(raw Raw) (*ServiceParameters, error) {
	p := &ServiceParameters{
		Name:          strings.TrimSpace(raw[FieldName]),
		Mode:          normalizeMode(raw[FieldMode]),
		Shape:         normalizeShape(raw[FieldShape]),
		PlatformClass: catalog.PlatformFor(strings.TrimSpace(raw[FieldPlatformClass])).Key.String(),
		ProfileKey:    catalog.ProfileFor(strings.TrimSpace(raw[FieldProfileKey])).Key.String(),
	}

	// Optional numerics: documented defaults on empty or unparsable input.
	p.CorridorWidthKm = ParseDecimal(raw[FieldCorridorWidthKm], DefaultFor(FieldCorridorWidthKm))
	p.MissionDurationDays = ParseDecimal(raw[FieldMissionDurationDays], DefaultFor(FieldMissionDurationDays))
	p.RelayFlightHours = ParseDecimal(raw[FieldRelayFlightHours], DefaultFor(FieldRelayFlightHours))
	p.TurnaroundDays = ParseDecimal(raw[FieldTurnaroundDays], DefaultFor(FieldTurnaroundDays))
	p.SwathKm = ParseDecimal(raw[FieldSwathKm], DefaultFor(FieldSwathKm))
	p.GroundSpeedKmh = ParseDecimal(raw[FieldGroundSpeedKmh], DefaultFor(FieldGroundSpeedKmh))
	p.DutyFraction = ParseDecimal(raw[FieldDutyFraction], DefaultFor(FieldDutyFraction))
	p.CoverageEfficiency = ParseDecimal(raw[FieldCoverageEfficiency], DefaultFor(FieldCoverageEfficiency))
	p.OverlapFraction = ParseDecimal(raw[FieldOverlapFraction], DefaultFor(FieldOverlapFraction))
	p.TurnRadiusKm = ParseDecimal(raw[FieldTurnRadiusKm], DefaultFor(FieldTurnRadiusKm))
	p.NavEfficiency = ParseDecimal(raw[FieldNavEfficiency], DefaultFor(FieldNavEfficiency))
	p.MTBFHours = ParseDecimal(raw[FieldMTBFHours], DefaultFor(FieldMTBFHours))
	p.MTTRHours = ParseDecimal(raw[FieldMTTRHours], DefaultFor(FieldMTTRHours))
	p.MaxFlightDaysPerYear = ParseDecimal(raw[FieldMaxFlightDays], DefaultFor(FieldMaxFlightDays))
	p.MaintenanceBufferFraction = ParseDecimal(raw[FieldMaintenanceBuffer], DefaultFor(FieldMaintenanceBuffer))
	p.SpareBufferFraction = ParseDecimal(raw[FieldSpareBuffer], DefaultFor(FieldSpareBuffer))
	p.FixedCostPerMission = ParseDecimal(raw[FieldFixedCostPerMission], DefaultFor(FieldFixedCostPerMission))
	p.HourlyCost = ParseDecimal(raw[FieldHourlyCost], DefaultFor(FieldHourlyCost))
	p.PlatformCapex = ParseDecimal(raw[FieldPlatformCapex], DefaultFor(FieldPlatformCapex))
	p.PlatformLifeDays = ParseDecimal(raw[FieldPlatformLifeDays], DefaultFor(FieldPlatformLifeDays))
	p.PayloadCapex = ParseDecimal(raw[FieldPayloadCapex], DefaultFor(FieldPayloadCapex))
	p.PayloadLifeDays = ParseDecimal(raw[FieldPayloadLifeDays], DefaultFor(FieldPayloadLifeDays))
	p.ConsumablesPerMission = ParseDecimal(raw[FieldConsumables], DefaultFor(FieldConsumables))
	p.AnnualFixedOverhead = ParseDecimal(raw[FieldAnnualFixedOverhead], DefaultFor(FieldAnnualFixedOverhead))
	p.TargetGrossMargin = ParseDecimal(raw[FieldTargetGrossMargin], DefaultFor(FieldTargetGrossMargin))

	// Width has a derived default (sqrt of area); zero marks it unset.
	p.WidthKm = ParseDecimal(raw[FieldWidthKm], 0)

	// Proposed prices are optional; values <= 0 mean no proposal.
	p.ProposedAnnualPrice = ParseDecimal(raw[FieldProposedAnnualPrice], 0)
	p.ProposedMissionPrice = ParseDecimal(raw[FieldProposedMissionPrice], 0)

	// Mission count coerces leniently to 0 but rejects negatives.
	missions := ParseDecimal(raw[FieldMissionCount], 0)
	if missions < 0 {
		return nil, errors.InvalidParameter(FieldMissionCount, "must not be negative")
	}
	p.MissionCount = int(missions)

	switch p.Mode {
	case ModeSubscription:
		area, ok := parseRequired(raw[FieldAreaKm2])
		if !ok {
			return nil, errors.InvalidParameter(FieldAreaKm2, "missing or non-numeric")
		}
		if area <= 0 {
			return nil, errors.InvalidParameter(FieldAreaKm2, "must be positive")
		}
		p.AreaKm2 = area

		revisit, ok := parseRequired(raw[FieldRevisitMinutes])
		if !ok {
			return nil, errors.InvalidParameter(FieldRevisitMinutes, "missing or non-numeric")
		}
		if revisit <= 0 {
			return nil, errors.InvalidParameter(FieldRevisitMinutes, "must be positive")
		}
		p.RevisitMinutes = revisit

	case ModeTasking:
		// Area is only used for per-km² normalization in tasking mode and
		// is therefore optional there.
		p.AreaKm2 = ParseDecimal(raw[FieldAreaKm2], 0)
		p.RevisitMinutes = ParseDecimal(raw[FieldRevisitMinutes], 0)
	}

	return p, nil
}

func normalizeMode(raw string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeTasking:
		return ModeTasking
	default:
		return ModeSubscription
	}
}

func normalizeShape(raw string) AOIShape {
	switch AOIShape(strings.ToLower(strings.TrimSpace(raw))) {
	case ShapeCorridor:
		return ShapeCorridor
	default:
		return ShapeAreal
	}
}

// Relay reports whether the selected platform class flies discrete relay
// flights instead of a standing turnaround fleet.
func (p *ServiceParameters) Relay() bool {
	return catalog.PlatformFor(p.PlatformClass).Relay
}

// EffectiveWidthKm is the AOI width used for areal strip planning: the
// caller-supplied width when present, otherwise sqrt of the area.
func (p *ServiceParameters) EffectiveWidthKm() float64 {
	if p.WidthKm > 0 {
		return p.WidthKm
	}
	return math.Sqrt(p.AreaKm2)
}
