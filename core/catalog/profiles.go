// Package catalog - Authoritative operating catalogs
// Defines the canonical operating profiles and platform classes.
// This is the source of truth for profile multipliers and amortization defaults.
package catalog

// ProfileKey identifies an operating profile
type ProfileKey string

const (
	// ProfileStandard is the baseline mission profile
	ProfileStandard ProfileKey = "standard"

	// ProfileLong is an extended-endurance profile
	ProfileLong ProfileKey = "long"

	// ProfileExpress is a short-notice, short-duration profile
	ProfileExpress ProfileKey = "express"
)

// String returns the string representation
func (k ProfileKey) String() string {
	return string(k)
}

// Profile is a named multiplier bundle applied uniformly to a baseline mission
type Profile struct {
	// Key is the profile identifier
	Key ProfileKey `json:"key"`

	// Label is a human-readable name
	Label string `json:"label"`

	// DurationMultiplier scales the baseline mission duration
	DurationMultiplier float64 `json:"duration_multiplier"`

	// FixedCostMultiplier scales the per-mission fixed cost
	FixedCostMultiplier float64 `json:"fixed_cost_multiplier"`

	// HourlyCostMultiplier scales the hourly operating cost
	HourlyCostMultiplier float64 `json:"hourly_cost_multiplier"`

	// ConsumablesMultiplier scales per-mission consumables
	ConsumablesMultiplier float64 `json:"consumables_multiplier"`
}

// profiles is the fixed profile catalog, in stable display order.
var profiles = []Profile{
	{
		Key:                   ProfileStandard,
		Label:                 "Standard",
		DurationMultiplier:    1,
		FixedCostMultiplier:   1,
		HourlyCostMultiplier:  1,
		ConsumablesMultiplier: 1,
	},
	{
		Key:                   ProfileLong,
		Label:                 "Long endurance",
		DurationMultiplier:    1.5,
		FixedCostMultiplier:   1.1,
		HourlyCostMultiplier:  1,
		ConsumablesMultiplier: 1.2,
	},
	{
		Key:                   ProfileExpress,
		Label:                 "Express",
		DurationMultiplier:    0.7,
		FixedCostMultiplier:   1.15,
		HourlyCostMultiplier:  1.15,
		ConsumablesMultiplier: 1,
	},
}

// ProfileFor returns the profile for a key. The lookup is total: unknown or
// empty keys resolve to the standard profile, matching the lenient behavior
// callers rely on when a stored preset references a retired profile.
func ProfileFor(key string) Profile {
	for _, p := range profiles {
		if p.Key == ProfileKey(key) {
			return p
		}
	}
	return profiles[0]
}

// Profiles returns the catalog in stable display order.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}
