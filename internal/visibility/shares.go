package visibility

import (
	"math"

	"github.com/jonathan/keyword-insights/internal/types"
)

// Growth-gap classifications.
const (
	GapGrowthPotential    = "growth_potential"
	GapMissingOpportunity = "missing_opportunities"
	GapBalanced           = "balanced"
)

// growthGapThreshold is the band (in share points) treated as balanced.
const growthGapThreshold = 2.0

// ShareOfSearch is the brand's share of all brand-name search demand.
type ShareOfSearch struct {
	Share       float64 `json:"share"`
	BrandVolume int     `json:"brandVolume"`
	TotalVolume int     `json:"totalVolume"`
}

// ShareOfVoice is the click-weighted share of the market volume the brand
// ranks for.
type ShareOfVoice struct {
	Share         float64 `json:"share"`
	VisibleVolume float64 `json:"visibleVolume"`
	TotalVolume   int     `json:"totalVolume"`
}

// GrowthGap relates SOV to SOS and classifies the difference.
type GrowthGap struct {
	SOS            float64 `json:"sos"`
	SOV            float64 `json:"sov"`
	Gap            float64 `json:"gap"`
	Classification string  `json:"classification"`
}

// CalculateSOS computes the share of search over a brand-keyword set.
// An empty set yields zeroes, never NaN.
func CalculateSOS(brandKeywords []types.BrandKeyword) ShareOfSearch {
	var own, total int
	for _, kw := range brandKeywords {
		total += kw.SearchVolume
		if kw.IsOwnBrand {
			own += kw.SearchVolume
		}
	}
	if total == 0 {
		return ShareOfSearch{}
	}
	share := roundOneDecimal(float64(own) / float64(total) * 100)
	return ShareOfSearch{Share: share, BrandVolume: own, TotalVolume: total}
}

// CalculateSOV computes the click-weighted share of voice over a ranked
// keyword set. An empty set yields zeroes, never NaN.
func CalculateSOV(rankedKeywords []types.RankedKeyword) ShareOfVoice {
	var visible float64
	var total int
	for _, kw := range rankedKeywords {
		visible += VisibleVolume(kw)
		total += kw.SearchVolume
	}
	if total == 0 {
		return ShareOfVoice{}
	}
	share := roundOneDecimal(visible / float64(total) * 100)
	return ShareOfVoice{Share: share, VisibleVolume: visible, TotalVolume: total}
}

// CalculateGrowthGap classifies the difference between share of voice and
// share of search. Differences of exactly +-2 points are balanced.
func CalculateGrowthGap(sos, sov float64) GrowthGap {
	gap := roundOneDecimal(sov - sos)
	classification := GapBalanced
	switch {
	case gap > growthGapThreshold:
		classification = GapGrowthPotential
	case gap < -growthGapThreshold:
		classification = GapMissingOpportunity
	}
	return GrowthGap{SOS: sos, SOV: sov, Gap: gap, Classification: classification}
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
