// Package visibility provides the position-to-CTR curve and the derived
// share-of-search, share-of-voice, and growth-gap metrics. Everything else
// in the engine builds on these pure functions.
package visibility

import "github.com/jonathan/keyword-insights/internal/types"

// fallbackCTR is applied to any position beyond the curve.
const fallbackCTR = 0.001

// ctrByPosition is an empirical click-through-rate curve for organic
// positions 1-20. Values are monotonically non-increasing.
var ctrByPosition = [21]float64{
	0,      // index 0 unused
	0.28,   // 1
	0.15,   // 2
	0.11,   // 3
	0.08,   // 4
	0.07,   // 5
	0.05,   // 6
	0.04,   // 7
	0.031,  // 8
	0.025,  // 9
	0.02,   // 10
	0.016,  // 11
	0.013,  // 12
	0.011,  // 13
	0.009,  // 14
	0.0075, // 15
	0.006,  // 16
	0.005,  // 17
	0.004,  // 18
	0.003,  // 19
	0.002,  // 20
}

// CTR returns the expected click-through rate for an organic position.
// Positions at or below zero yield 0; positions beyond 20 yield a flat
// fallback rate.
func CTR(position int) float64 {
	if position <= 0 {
		return 0
	}
	if position > 20 {
		return fallbackCTR
	}
	return ctrByPosition[position]
}

// VisibleVolume is the click-weighted search volume of a ranked keyword.
func VisibleVolume(kw types.RankedKeyword) float64 {
	return float64(kw.SearchVolume) * CTR(kw.Position)
}
