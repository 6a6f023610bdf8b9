// Package catalog - Platform class catalog
package catalog

// PlatformKey identifies a platform class
type PlatformKey string

const (
	// PlatformHALE is a high-altitude long-endurance fixed-wing platform
	PlatformHALE PlatformKey = "hale-fw"

	// PlatformAirship is a station-keeping stratospheric airship
	PlatformAirship PlatformKey = "strato-airship"

	// PlatformRelayBalloon is a free-floating balloon flown as discrete
	// relay flights rather than a standing turnaround fleet
	PlatformRelayBalloon PlatformKey = "relay-balloon"

	// PlatformRelayGlider is a released glider flown as discrete relay flights
	PlatformRelayGlider PlatformKey = "relay-glider"
)

// String returns the string representation
func (k PlatformKey) String() string {
	return string(k)
}

// Platform is a catalog entry for a platform class
type Platform struct {
	// Key is the platform identifier
	Key PlatformKey `json:"key"`

	// Label is a human-readable name
	Label string `json:"label"`

	// Relay marks platforms flown as single discrete flights; relay
	// platforms have no turnaround cycle and size their fleet at 1
	Relay bool `json:"relay"`

	// PlatformCapex is the default airframe acquisition cost
	PlatformCapex float64 `json:"platform_capex"`

	// PlatformLifeDays is the default airframe service life in flight days
	PlatformLifeDays float64 `json:"platform_life_days"`

	// PayloadCapex is the default sensor payload acquisition cost
	PayloadCapex float64 `json:"payload_capex"`

	// PayloadLifeDays is the default payload service life in flight days
	PayloadLifeDays float64 `json:"payload_life_days"`
}

// AmortizationPerDay returns the combined platform and payload CAPEX
// amortization per flight day for this class's catalog defaults.
func (p Platform) AmortizationPerDay() float64 {
	return p.PlatformCapex/p.PlatformLifeDays + p.PayloadCapex/p.PayloadLifeDays
}

// platforms is the fixed platform catalog, in stable display order.
var platforms = []Platform{
	{
		Key:              PlatformHALE,
		Label:            "HALE fixed-wing",
		Relay:            false,
		PlatformCapex:    20000,
		PlatformLifeDays: 800,
		PayloadCapex:     90000,
		PayloadLifeDays:  1200,
	},
	{
		Key:              PlatformAirship,
		Label:            "Stratospheric airship",
		Relay:            false,
		PlatformCapex:    55000,
		PlatformLifeDays: 1100,
		PayloadCapex:     90000,
		PayloadLifeDays:  1200,
	},
	{
		Key:              PlatformRelayBalloon,
		Label:            "Relay balloon",
		Relay:            true,
		PlatformCapex:    4500,
		PlatformLifeDays: 60,
		PayloadCapex:     90000,
		PayloadLifeDays:  1200,
	},
	{
		Key:              PlatformRelayGlider,
		Label:            "Relay glider",
		Relay:            true,
		PlatformCapex:    8000,
		PlatformLifeDays: 150,
		PayloadCapex:     90000,
		PayloadLifeDays:  1200,
	},
}

// PlatformFor returns the platform class for a key. The lookup is total:
// unknown or empty keys resolve to the HALE fixed-wing class.
func PlatformFor(key string) Platform {
	for _, p := range platforms {
		if p.Key == PlatformKey(key) {
			return p
		}
	}
	return platforms[0]
}

// Platforms returns the catalog in stable display order.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}
