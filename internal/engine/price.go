package engine

import (
	"math"

	"github.com/ggwellplayed/booking-service/internal/model"
)

// ComputeTotalPrice returns the total session price in whole rupees:
// ceil(hourly base price x duration multiplier).  The multiplier already
// folds the hour count and the bulk discount together, so nothing else
// enters the calculation.  Pure and deterministic.
func ComputeTotalPrice(tier model.Tier, duration model.DurationOption) int {
	return int(math.Ceil(float64(tier.BasePrice) * duration.Multiplier))
}
