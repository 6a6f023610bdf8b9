// Package tasking - Tasked-mission model tests
package tasking

import (
	"math"
	"reflect"
	"testing"

	"stratocost/core/catalog"
	"stratocost/core/params"
	"stratocost/internal/errors"
)

// baseline is the reference tasking configuration on the default HALE
// fixed-wing class.
func baseline() *params.ServiceParameters {
	return &params.ServiceParameters{
		Name:                  "pipeline-survey",
		Mode:                  params.ModeTasking,
		PlatformClass:         "hale-fw",
		MissionDurationDays:   7,
		TurnaroundDays:        1,
		SwathKm:               7,
		GroundSpeedKmh:        40,
		DutyFraction:          0.75,
		CoverageEfficiency:    0.5,
		FixedCostPerMission:   2500,
		HourlyCost:            25,
		ConsumablesPerMission: 500,
		TargetGrossMargin:     0.5,
	}
}

func TestStandardProfileBaseline(t *testing.T) {
	r, err := Compute(baseline(), 1, "standard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.DurationDays != 7 {
		t.Errorf("duration: expected 7 days, got %g", r.DurationDays)
	}
	if r.MissionHours != 168 {
		t.Errorf("hours: expected 168, got %g", r.MissionHours)
	}

	// 2500 + 25*168 + (20000/800 + 90000/1200)*7 + 500
	if r.PerMissionCost != 7900 {
		t.Errorf("per-mission cost: expected 7900, got %g", r.PerMissionCost)
	}
	if r.BatchCost != 7900 {
		t.Errorf("single-mission batch: expected 7900, got %g", r.BatchCost)
	}
	if r.TargetMissionPrice != 15800 {
		t.Errorf("target price at 50%% margin: expected 15800, got %g", r.TargetMissionPrice)
	}
	if r.CoveragePerMissionKm2 != 105*168 {
		t.Errorf("coverage per mission: expected 17640, got %g", r.CoveragePerMissionKm2)
	}
}

func TestBatchScaling(t *testing.T) {
	single, err := Compute(baseline(), 1, "long")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, count := range []int{0, 1, 5, 12, 100} {
		batch, err := Compute(baseline(), count, "long")
		if err != nil {
			t.Fatalf("count %d: %v", count, err)
		}
		if batch.PerMissionCost != single.PerMissionCost {
			t.Errorf("count %d: per-mission cost changed with batch size", count)
		}
		wantCost := float64(count) * single.PerMissionCost
		if batch.BatchCost != wantCost {
			t.Errorf("count %d: batch cost expected %g, got %g", count, wantCost, batch.BatchCost)
		}
		wantPrice := float64(count) * single.TargetMissionPrice
		if batch.BatchChosenPrice != wantPrice {
			t.Errorf("count %d: batch price expected %g, got %g", count, wantPrice, batch.BatchChosenPrice)
		}
	}
}

func TestProfileMultipliersApply(t *testing.T) {
	p := baseline()
	express := catalog.ProfileFor("express")

	r, err := Compute(p, 1, "express")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDays := 7 * express.DurationMultiplier
	if r.DurationDays != wantDays {
		t.Errorf("duration: expected %g, got %g", wantDays, r.DurationDays)
	}
	wantHours := wantDays * 24
	if r.MissionHours != wantHours {
		t.Errorf("hours: expected %g, got %g", wantHours, r.MissionHours)
	}

	wantCost := p.FixedCostPerMission*express.FixedCostMultiplier +
		p.HourlyCost*express.HourlyCostMultiplier*wantHours +
		catalog.PlatformFor("hale-fw").AmortizationPerDay()*wantDays +
		p.ConsumablesPerMission*express.ConsumablesMultiplier
	if r.PerMissionCost != wantCost {
		t.Errorf("express cost: expected %g, got %g", wantCost, r.PerMissionCost)
	}
}

func TestUnknownProfileFallsBackToStandard(t *testing.T) {
	std, err := Compute(baseline(), 3, "standard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unknown, err := Compute(baseline(), 3, "retired-profile")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if unknown.ProfileKey != "standard" {
		t.Errorf("expected standard fallback, got %q", unknown.ProfileKey)
	}
	unknown.Name = std.Name
	if !reflect.DeepEqual(std, unknown) {
		t.Error("unknown profile must compute identically to standard")
	}
}

func TestAmortizationUsesCatalogDefaults(t *testing.T) {
	// Tasking amortizes CAPEX from the platform catalog, so per-call CAPEX
	// overrides must not move the per-mission cost.
	base, err := Compute(baseline(), 1, "standard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := baseline()
	p.PlatformCapex = 999999
	p.PlatformLifeDays = 3
	p.PayloadCapex = 777777
	overridden, err := Compute(p, 1, "standard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if overridden.PerMissionCost != base.PerMissionCost {
		t.Errorf("per-call CAPEX must not affect tasking amortization: %g vs %g",
			overridden.PerMissionCost, base.PerMissionCost)
	}
}

func TestRelayClassTasking(t *testing.T) {
	p := baseline()
	p.PlatformClass = "relay-balloon"
	p.RelayFlightHours = 36

	r, err := Compute(p, 2, "standard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Relay {
		t.Fatal("relay-balloon must resolve as a relay class")
	}
	if r.DurationDays != 1.5 {
		t.Errorf("36 h relay flight: expected 1.5 days, got %g", r.DurationDays)
	}
	// Hours follow the profile-scaled duration in tasking mode.
	if r.MissionHours != 36 {
		t.Errorf("hours: expected 36, got %g", r.MissionHours)
	}
}

func TestNegativeMissionCountFails(t *testing.T) {
	_, err := Compute(baseline(), -1, "standard")
	if err == nil {
		t.Fatal("negative mission count must fail")
	}
	if !errors.IsType(err, errors.TypeInvalidParameter) {
		t.Errorf("expected invalid-parameter error, got %v", err)
	}
}

func TestProposedMissionPrice(t *testing.T) {
	p := baseline()
	p.ProposedMissionPrice = 9000

	r, err := Compute(p, 4, "standard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ChosenMissionPrice != 9000 {
		t.Errorf("proposed price must win, got %g", r.ChosenMissionPrice)
	}
	if r.BatchChosenPrice != 36000 {
		t.Errorf("batch price: expected 36000, got %g", r.BatchChosenPrice)
	}
	wantMargin := (9000 - 7900) / 9000.0
	if math.Abs(r.RealizedMargin-wantMargin) > 1e-12 {
		t.Errorf("realized margin: expected %g, got %g", wantMargin, r.RealizedMargin)
	}
}

func TestPerKm2DivisorFloor(t *testing.T) {
	p := baseline()
	p.SwathKm = 0

	r, err := Compute(p, 1, "standard")
	if err != nil {
		t.Fatalf("degenerate inputs are a warning, not an error: %v", err)
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a degenerate-result warning")
	}
	if math.IsInf(r.CostPerKm2, 0) || math.IsNaN(r.CostPerKm2) {
		t.Errorf("floored divisor must keep per-km² cost finite, got %g", r.CostPerKm2)
	}
}
