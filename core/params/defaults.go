// Package params - Documented field defaults
package params

// Field name constants. These are the canonical field identifiers used in
// raw input maps, scenario files, and invalid-parameter errors.
const (
	FieldName                 = "name"
	FieldMode                 = "mode"
	FieldShape                = "shape"
	FieldPlatformClass        = "platform_class"
	FieldAreaKm2              = "area_km2"
	FieldWidthKm              = "width_km"
	FieldCorridorWidthKm      = "corridor_width_km"
	FieldRevisitMinutes       = "revisit_minutes"
	FieldMissionDurationDays  = "mission_duration_days"
	FieldRelayFlightHours     = "relay_flight_hours"
	FieldTurnaroundDays       = "turnaround_days"
	FieldSwathKm              = "swath_km"
	FieldGroundSpeedKmh       = "ground_speed_kmh"
	FieldDutyFraction         = "duty_fraction"
	FieldCoverageEfficiency   = "coverage_efficiency"
	FieldOverlapFraction      = "overlap_fraction"
	FieldTurnRadiusKm         = "turn_radius_km"
	FieldNavEfficiency        = "nav_efficiency"
	FieldMTBFHours            = "mtbf_hours"
	FieldMTTRHours            = "mttr_hours"
	FieldMaxFlightDays        = "max_flight_days_per_year"
	FieldMaintenanceBuffer    = "maintenance_buffer_fraction"
	FieldSpareBuffer          = "spare_buffer_fraction"
	FieldFixedCostPerMission  = "fixed_cost_per_mission"
	FieldHourlyCost           = "hourly_cost"
	FieldPlatformCapex        = "platform_capex"
	FieldPlatformLifeDays     = "platform_life_days"
	FieldPayloadCapex         = "payload_capex"
	FieldPayloadLifeDays      = "payload_life_days"
	FieldConsumables          = "consumables_per_mission"
	FieldAnnualFixedOverhead  = "annual_fixed_overhead"
	FieldTargetGrossMargin    = "target_gross_margin"
	FieldProposedAnnualPrice  = "proposed_annual_price"
	FieldProposedMissionPrice = "proposed_mission_price"
	FieldMissionCount         = "missions"
	FieldProfileKey           = "profile"
)

// defaultValues is the documented default for every non-required numeric
// field. Defaults are applied only at the construction boundary; the models
// never substitute values themselves. The AOI width has no entry here
// because its default is derived (sqrt of the area).
var defaultValues = map[string]float64{
	FieldCorridorWidthKm:     5,
	FieldMissionDurationDays: 7,
	FieldRelayFlightHours:    48,
	FieldTurnaroundDays:      1,
	FieldSwathKm:             7,
	FieldGroundSpeedKmh:      40,
	FieldDutyFraction:        0.75,
	FieldCoverageEfficiency:  0.5,
	FieldOverlapFraction:     0.2,
	FieldTurnRadiusKm:        5,
	FieldNavEfficiency:       0.8,
	FieldMTBFHours:           500,
	FieldMTTRHours:           20,
	FieldMaxFlightDays:       200,
	FieldMaintenanceBuffer:   0.25,
	FieldSpareBuffer:         0.15,
	FieldFixedCostPerMission: 2500,
	FieldHourlyCost:          25,
	FieldPlatformCapex:       20000,
	FieldPlatformLifeDays:    800,
	FieldPayloadCapex:        90000,
	FieldPayloadLifeDays:     1200,
	FieldConsumables:         500,
	FieldAnnualFixedOverhead: 12000,
	FieldTargetGrossMargin:   0.5,
}

// DefaultFor returns the documented default for a field, or 0 when the
// field has none.
func DefaultFor(field string) float64 {
	return defaultValues[field]
}
