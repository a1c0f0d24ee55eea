// internal/engine/features/demand.go

package features

import "math/rand/v2"

// MarketDemandFunc reports the current market demand for a skill in [0,1].
type MarketDemandFunc func(skill string) float64

// RandomMarketDemand is the placeholder demand source: every call draws
// uniformly from [0.5, 1.0). Identical inputs can produce different vectors.
func RandomMarketDemand() MarketDemandFunc {
	return func(string) float64 {
		return 0.5 + rand.Float64()*0.5
	}
}

// ConstantMarketDemand always reports v.
func ConstantMarketDemand(v float64) MarketDemandFunc {
	return func(string) float64 {
		return v
	}
}
