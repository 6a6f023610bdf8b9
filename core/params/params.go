// Package params defines the service parameter record and the coercion and
// validation boundary that sits between untyped caller input and the pure
// cost models.
package params

// AOIShape describes the geometry of an area of interest
type AOIShape string

const (
	// ShapeAreal is a compact two-dimensional region
	ShapeAreal AOIShape = "areal"

	// ShapeCorridor is a long narrow strip (pipeline, border, coastline)
	ShapeCorridor AOIShape = "corridor"
)

// Mode selects the service model
type Mode string

const (
	// ModeSubscription is continuous coverage against a revisit requirement
	ModeSubscription Mode = "subscription"

	// ModeTasking is a batch of discrete tasked missions
	ModeTasking Mode = "tasking"
)

// ServiceParameters is the immutable input record for both cost models.
// It is owned by the caller and never mutated by the core.
type ServiceParameters struct {
	// Name labels the scenario in rendered output
	Name string `json:"name"`

	// Mode selects subscription or tasking
	Mode Mode `json:"mode"`

	// Shape is the AOI geometry
	Shape AOIShape `json:"shape"`

	// PlatformClass is a platform catalog key; relay behavior follows the class
	PlatformClass string `json:"platform_class"`

	// AreaKm2 is the AOI area in square kilometers
	AreaKm2 float64 `json:"area_km2"`

	// WidthKm is the AOI width for areal shapes; zero or negative means
	// unset, in which case the effective width is sqrt(AreaKm2)
	WidthKm float64 `json:"width_km"`

	// CorridorWidthKm is the corridor width, used only for corridor shapes
	CorridorWidthKm float64 `json:"corridor_width_km"`

	// RevisitMinutes is the maximum time between passes (subscription mode)
	RevisitMinutes float64 `json:"revisit_minutes"`

	// MissionDurationDays is the baseline mission length for fleet platforms
	MissionDurationDays float64 `json:"mission_duration_days"`

	// RelayFlightHours is the single-flight duration for relay platforms
	RelayFlightHours float64 `json:"relay_flight_hours"`

	// TurnaroundDays is ground time between missions
	TurnaroundDays float64 `json:"turnaround_days"`

	// SwathKm is the imaged strip width on the ground
	SwathKm float64 `json:"swath_km"`

	// GroundSpeedKmh is the platform ground speed
	GroundSpeedKmh float64 `json:"ground_speed_kmh"`

	// DutyFraction is the fraction of flight time actively imaging, in [0,1]
	DutyFraction float64 `json:"duty_fraction"`

	// CoverageEfficiency derates for geometric and operational losses, in [0,1]
	CoverageEfficiency float64 `json:"coverage_efficiency"`

	// OverlapFraction is strip-to-strip overlap, in [0,1)
	OverlapFraction float64 `json:"overlap_fraction"`

	// TurnRadiusKm is the turn radius flown between strips
	TurnRadiusKm float64 `json:"turn_radius_km"`

	// NavEfficiency derates reposition speed, in (0,1]
	NavEfficiency float64 `json:"nav_efficiency"`

	// MTBFHours is mean time between failures
	MTBFHours float64 `json:"mtbf_hours"`

	// MTTRHours is mean time to repair
	MTTRHours float64 `json:"mttr_hours"`

	// MaxFlightDaysPerYear caps yearly utilization per platform
	MaxFlightDaysPerYear float64 `json:"max_flight_days_per_year"`

	// MaintenanceBufferFraction reserves flight days for maintenance, in [0,1)
	MaintenanceBufferFraction float64 `json:"maintenance_buffer_fraction"`

	// SpareBufferFraction adds spare airframes on top of the base fleet
	SpareBufferFraction float64 `json:"spare_buffer_fraction"`

	// FixedCostPerMission is launch/recovery/crew cost per mission
	FixedCostPerMission float64 `json:"fixed_cost_per_mission"`

	// HourlyCost is the operating cost per flight hour
	HourlyCost float64 `json:"hourly_cost"`

	// PlatformCapex is the airframe acquisition cost
	PlatformCapex float64 `json:"platform_capex"`

	// PlatformLifeDays is the airframe service life in flight days
	PlatformLifeDays float64 `json:"platform_life_days"`

	// PayloadCapex is the sensor payload acquisition cost
	PayloadCapex float64 `json:"payload_capex"`

	// PayloadLifeDays is the payload service life in flight days
	PayloadLifeDays float64 `json:"payload_life_days"`

	// ConsumablesPerMission is per-mission consumable cost
	ConsumablesPerMission float64 `json:"consumables_per_mission"`

	// AnnualFixedOverhead is yearly overhead independent of mission count
	AnnualFixedOverhead float64 `json:"annual_fixed_overhead"`

	// TargetGrossMargin is the pricing margin target, expected in [0,1)
	TargetGrossMargin float64 `json:"target_gross_margin"`

	// ProposedAnnualPrice is an optional caller-proposed annual price;
	// values <= 0 mean no proposal
	ProposedAnnualPrice float64 `json:"proposed_annual_price,omitempty"`

	// ProposedMissionPrice is an optional caller-proposed per-mission price;
	// values <= 0 mean no proposal
	ProposedMissionPrice float64 `json:"proposed_mission_price,omitempty"`

	// MissionCount is the number of tasked missions (tasking mode)
	MissionCount int `json:"mission_count"`

	// ProfileKey selects the operating profile (tasking mode)
	ProfileKey string `json:"profile_key"`
}
