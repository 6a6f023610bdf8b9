// Package coverage - Subscription model tests
package coverage

import (
	"math"
	"reflect"
	"testing"

	"stratocost/core/params"
	"stratocost/internal/errors"
)

// lakefront is the reference subscription scenario: a 181.8 km² AOI with a
// daily revisit flown by the default HALE fixed-wing configuration.
func lakefront() *params.ServiceParameters {
	return &params.ServiceParameters{
		Name:                      "lakefront",
		Mode:                      params.ModeSubscription,
		Shape:                     params.ShapeAreal,
		PlatformClass:             "hale-fw",
		AreaKm2:                   181.8,
		RevisitMinutes:            1440,
		MissionDurationDays:       7,
		TurnaroundDays:            1,
		SwathKm:                   7,
		GroundSpeedKmh:            40,
		DutyFraction:              0.75,
		CoverageEfficiency:        0.5,
		OverlapFraction:           0.2,
		TurnRadiusKm:              5,
		NavEfficiency:             0.8,
		MTBFHours:                 500,
		MTTRHours:                 20,
		MaxFlightDaysPerYear:      200,
		MaintenanceBufferFraction: 0.25,
		SpareBufferFraction:       0.15,
		FixedCostPerMission:       2500,
		HourlyCost:                25,
		PlatformCapex:             20000,
		PlatformLifeDays:          800,
		PayloadCapex:              90000,
		PayloadLifeDays:           1200,
		ConsumablesPerMission:     500,
		AnnualFixedOverhead:       12000,
		TargetGrossMargin:         0.5,
	}
}

func TestLakefrontEndToEnd(t *testing.T) {
	r, err := Compute(lakefront())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.CoverageRateKm2h != 105 {
		t.Errorf("coverage rate: expected 105 km²/h, got %g", r.CoverageRateKm2h)
	}
	if r.RevisitsPerYear != 365 {
		t.Errorf("revisits per year: expected 365, got %d", r.RevisitsPerYear)
	}
	wantSweep := 181.8 / 105 * 60
	if r.SweepMinutes != wantSweep {
		t.Errorf("sweep: expected %g min, got %g", wantSweep, r.SweepMinutes)
	}
	if math.Abs(r.SweepMinutes-103.9) > 0.02 {
		t.Errorf("sweep roughly 103.9 min, got %g", r.SweepMinutes)
	}

	// sqrt(181.8) ≈ 13.48 km over a 5.6 km strip spacing.
	if r.StripCount != 3 {
		t.Errorf("strip count: expected 3, got %d", r.StripCount)
	}
	if r.SlackMinutes <= 0 {
		t.Errorf("daily revisit over this AOI must have positive slack, got %g", r.SlackMinutes)
	}

	if r.CoveragePerMissionKm2 != 105*168 {
		t.Errorf("coverage per mission: expected 17640, got %g", r.CoveragePerMissionKm2)
	}
	if r.MissionsPerYear != 4 {
		t.Errorf("missions per year: expected 4, got %d", r.MissionsPerYear)
	}

	wantAvail := 500.0 / 520.0
	if r.Availability != wantAvail {
		t.Errorf("availability: expected %g, got %g", wantAvail, r.Availability)
	}
	if r.UsableDaysPerYear != 150 {
		t.Errorf("usable days: expected 150, got %g", r.UsableDaysPerYear)
	}
	if r.MissionsPerPlatformYear != 18 {
		t.Errorf("missions per platform-year: expected 18, got %d", r.MissionsPerPlatformYear)
	}
	if r.BaseFleetSize != 1 {
		t.Errorf("base fleet: expected 1, got %d", r.BaseFleetSize)
	}
	if r.FleetSize != 2 {
		t.Errorf("fleet with 15%% spares: expected 2, got %d", r.FleetSize)
	}

	if r.PerMissionCost != 7900 {
		t.Errorf("per-mission cost: expected 7900, got %g", r.PerMissionCost)
	}
	if r.AnnualCost != 43600 {
		t.Errorf("annual cost: expected 43600, got %g", r.AnnualCost)
	}
	if r.TargetAnnualPrice != 87200 {
		t.Errorf("target annual price: expected 87200, got %g", r.TargetAnnualPrice)
	}
	if r.ChosenAnnualPrice != r.TargetAnnualPrice {
		t.Errorf("without a proposal the chosen price is the target price")
	}
	if math.Abs(r.RealizedMargin-0.5) > 1e-12 {
		t.Errorf("realized margin: expected 0.5, got %g", r.RealizedMargin)
	}
	if r.TargetMissionPrice != 15800 {
		t.Errorf("target mission price: expected 15800, got %g", r.TargetMissionPrice)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("healthy scenario must not warn: %v", r.Warnings)
	}
}

func TestRevisitMonotonicity(t *testing.T) {
	// Tightening the revisit requirement never decreases mission demand
	// or annual cost.
	revisits := []float64{2880, 1440, 720, 360, 180, 60}

	lastMissions := -1
	lastCost := -1.0
	for _, revisit := range revisits {
		p := lakefront()
		p.RevisitMinutes = revisit
		r, err := Compute(p)
		if err != nil {
			t.Fatalf("revisit %g: %v", revisit, err)
		}
		if lastMissions >= 0 && r.MissionsPerYear < lastMissions {
			t.Errorf("revisit %g: missions per year decreased from %d to %d",
				revisit, lastMissions, r.MissionsPerYear)
		}
		if lastCost >= 0 && r.AnnualCost < lastCost {
			t.Errorf("revisit %g: annual cost decreased from %g to %g",
				revisit, lastCost, r.AnnualCost)
		}
		lastMissions = r.MissionsPerYear
		lastCost = r.AnnualCost
	}
}

func TestFleetFeasibilityFloor(t *testing.T) {
	cases := []func(*params.ServiceParameters){
		func(p *params.ServiceParameters) {},
		func(p *params.ServiceParameters) { p.RevisitMinutes = 60 },
		func(p *params.ServiceParameters) { p.RevisitMinutes = 30; p.AreaKm2 = 5000 },
		func(p *params.ServiceParameters) { p.SpareBufferFraction = 0 },
		func(p *params.ServiceParameters) { p.MaxFlightDaysPerYear = 10 },
	}

	for i, mutate := range cases {
		p := lakefront()
		mutate(p)
		r, err := Compute(p)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if r.FleetSize < r.MinPlatformsForRevisit {
			t.Errorf("case %d: fleet %d below revisit floor %d", i, r.FleetSize, r.MinPlatformsForRevisit)
		}
		if r.FleetSize < 1 {
			t.Errorf("case %d: fleet %d below 1", i, r.FleetSize)
		}
	}
}

func TestCorridorStripCount(t *testing.T) {
	p := lakefront()
	p.Shape = params.ShapeCorridor
	p.CorridorWidthKm = 1.6
	p.SwathKm = 1
	p.OverlapFraction = 0.2

	r, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.StripCount != 2 {
		t.Errorf("ceil(1.6/0.8): expected 2 strips, got %d", r.StripCount)
	}
}

func TestCorridorSingleStripReposition(t *testing.T) {
	p := lakefront()
	p.Shape = params.ShapeCorridor
	p.CorridorWidthKm = 4

	// 4 km corridor under a 5.6 km strip spacing is a single strip, so
	// the reposition term is one turnaround, not n of them.
	r, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.StripCount != 1 {
		t.Fatalf("expected single strip, got %d", r.StripCount)
	}
	wantTurn := math.Pi * 5 / (40 * 0.8) * 60
	if r.RepositionMinutes != wantTurn {
		t.Errorf("single-strip reposition: expected %g, got %g", wantTurn, r.RepositionMinutes)
	}
}

func TestRelayModeFleetIsAlwaysOne(t *testing.T) {
	p := lakefront()
	p.PlatformClass = "relay-balloon"
	p.RelayFlightHours = 36

	// Exaggerate every sizing pressure; relay fleets stay at 1.
	p.AreaKm2 = 25000
	p.RevisitMinutes = 30
	p.SpareBufferFraction = 3
	p.MTBFHours = 1
	p.MTTRHours = 1000

	r, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Relay {
		t.Fatal("relay-balloon must resolve as a relay class")
	}
	if r.FleetSize != 1 || r.BaseFleetSize != 1 {
		t.Errorf("relay fleet must be exactly 1, got base=%d final=%d", r.BaseFleetSize, r.FleetSize)
	}
	if r.DurationDays != 1.5 {
		t.Errorf("36 h relay flight: expected 1.5 days, got %g", r.DurationDays)
	}
	if r.MissionHours != 36 {
		t.Errorf("relay hours: expected 36, got %g", r.MissionHours)
	}
	if r.MissionsPerPlatformYear != 0 {
		t.Errorf("relay mode has no turnaround capacity figure, got %d", r.MissionsPerPlatformYear)
	}
}

func TestRelayDurationFloor(t *testing.T) {
	p := lakefront()
	p.PlatformClass = "relay-glider"
	p.RelayFlightHours = 0.5

	r, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.DurationDays != 1.0/24 {
		t.Errorf("duration floor: expected %g days, got %g", 1.0/24, r.DurationDays)
	}
}

func TestProposedAnnualPrice(t *testing.T) {
	p := lakefront()
	p.ProposedAnnualPrice = 50000

	r, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ChosenAnnualPrice != 50000 {
		t.Errorf("proposed price must win, got %g", r.ChosenAnnualPrice)
	}
	wantMargin := (50000 - 43600) / 50000.0
	if r.RealizedMargin != wantMargin {
		t.Errorf("realized margin: expected %g, got %g", wantMargin, r.RealizedMargin)
	}
	// The target price is still reported alongside.
	if r.TargetAnnualPrice != 87200 {
		t.Errorf("target price must be unaffected, got %g", r.TargetAnnualPrice)
	}
}

func TestDegenerateCoverageRateWarns(t *testing.T) {
	p := lakefront()
	p.DutyFraction = 0

	r, err := Compute(p)
	if err != nil {
		t.Fatalf("degenerate inputs are a warning, not an error: %v", err)
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a degenerate-result warning")
	}
	if math.IsInf(r.SweepMinutes, 0) || math.IsNaN(r.SweepMinutes) {
		t.Errorf("floored divisor must keep results finite, got %g", r.SweepMinutes)
	}
}

func TestNegativeSlackReportedNotFatal(t *testing.T) {
	p := lakefront()
	p.RevisitMinutes = 10

	r, err := Compute(p)
	if err != nil {
		t.Fatalf("infeasible revisit is reported, not fatal: %v", err)
	}
	if r.SlackMinutes >= 0 {
		t.Errorf("expected negative slack, got %g", r.SlackMinutes)
	}
	if len(r.Warnings) == 0 {
		t.Error("negative slack must warn")
	}
	if r.MinPlatformsForRevisit < 2 {
		t.Errorf("10 min revisit needs a multi-platform floor, got %d", r.MinPlatformsForRevisit)
	}
}

func TestValidation(t *testing.T) {
	p := lakefront()
	p.AreaKm2 = 0
	_, err := Compute(p)
	if err == nil {
		t.Fatal("zero area must fail")
	}
	if !errors.IsType(err, errors.TypeInvalidParameter) {
		t.Errorf("expected invalid-parameter error, got %v", err)
	}
	if errors.Field(err) != params.FieldAreaKm2 {
		t.Errorf("error must name area_km2, got %q", errors.Field(err))
	}

	p = lakefront()
	p.RevisitMinutes = -1
	if _, err := Compute(p); err == nil {
		t.Error("negative revisit must fail")
	}
}

func TestIdempotence(t *testing.T) {
	p := lakefront()
	first, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must produce identical outputs")
	}

	// The caller's record is untouched.
	if !reflect.DeepEqual(p, lakefront()) {
		t.Error("Compute must not mutate its input")
	}
}
