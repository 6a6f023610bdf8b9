// Package pricing implements the shared margin policy used by both cost
// models. Both functions are pure.
package pricing

// minMarginHeadroom keeps the price divisor away from zero when the target
// margin approaches or exceeds 1.
const minMarginHeadroom = 0.01

// minPrice floors a caller-proposed price before deriving a margin from it.
const minPrice = 0.01

// PriceFromCost returns the sale price that realizes targetMargin on cost.
// The margin is clamped so that a target at or above 1 prices at
// cost / 0.01 instead of dividing by zero or going negative.
func PriceFromCost(cost, targetMargin float64) float64 {
	headroom := 1 - targetMargin
	if headroom < minMarginHeadroom {
		headroom = minMarginHeadroom
	}
	return cost / headroom
}

// MarginFromPrice returns the gross margin realized when selling at price
// against cost. Non-positive prices are floored at 0.01 so the division is
// always defined; the resulting margin is then strongly negative, which is
// the signal the caller needs.
func MarginFromPrice(price, cost float64) float64 {
	if price < minPrice {
		price = minPrice
	}
	return (price - cost) / price
}
