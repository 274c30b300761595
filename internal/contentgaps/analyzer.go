// Package contentgaps finds categories whose aggregate ranking quality
// implies under-investment in content, and produces the per-category
// share-of-voice breakdown.
package contentgaps

import (
	"math"
	"sort"

	"github.com/jonathan/keyword-insights/internal/category"
	"github.com/jonathan/keyword-insights/internal/types"
	"github.com/jonathan/keyword-insights/internal/visibility"
)

const (
	minCategorySize   = 3
	weakPosition      = 10
	gapAvgPosition    = 8.0
	gapWeakShare      = 0.4
	gapPageTwoCount   = 5
	suggestionDivisor = 3
	maxSuggestions    = 10

	highPriorityVolume   = 50000
	mediumPriorityVolume = 10000

	// trafficGainRate is a deliberately conservative estimate of how much
	// of the weak volume new content can recover.
	trafficGainRate = 0.05
)

// contentTypesByCategory suggests content formats per topical category.
// Static configuration data shared by all analyses.
var contentTypesByCategory = map[string][]string{
	"Pricing & Offers":  {"pricing comparison page", "seasonal deals landing page", "price calculator"},
	"Comparisons":       {"head-to-head comparison article", "alternatives roundup", "comparison table"},
	"Reviews & Ratings": {"expert review", "customer story roundup", "rating explainer"},
	"How-To & Guides":   {"step-by-step guide", "video tutorial", "downloadable checklist"},
	"Buying":            {"buying guide", "product finder", "category landing page"},
	"Local Search":      {"local landing pages", "store locator content", "regional guide"},
	"Seasonal":          {"seasonal hub page", "preparation checklist", "seasonal FAQ"},
	"Sizing & Specs":    {"sizing guide", "specification explainer", "interactive size finder"},
}

// defaultContentTypes is used for categories without a dedicated entry.
var defaultContentTypes = []string{"pillar page", "supporting blog series", "FAQ section"}

type categoryGroup struct {
	name     string
	keywords []types.RankedKeyword
}

// Analyze inspects the relevant ranked keywords per category and returns
// the detected gaps, sorted by weak-keyword volume descending. Category
// "Other" and categories with fewer than three keywords are skipped.
func Analyze(rankedKeywords []types.RankedKeyword) []types.ContentGap {
	gaps := make([]types.ContentGap, 0)
	for _, group := range groupByCategory(rankedKeywords) {
		if group.name == category.DefaultCategory || len(group.keywords) < minCategorySize {
			continue
		}

		var positionSum, weakVolume, weakCount, pageTwoCount, suggestionSeeds int
		for _, kw := range group.keywords {
			positionSum += kw.Position
			if kw.Position > weakPosition {
				weakCount++
				weakVolume += kw.SearchVolume
				if kw.SearchVolume >= 500 {
					suggestionSeeds++
				}
			}
			if kw.Position >= 11 && kw.Position <= 20 {
				pageTwoCount++
			}
		}

		avgPosition := float64(positionSum) / float64(len(group.keywords))
		weakShare := float64(weakCount) / float64(len(group.keywords))
		if avgPosition <= gapAvgPosition && weakShare <= gapWeakShare && pageTwoCount < gapPageTwoCount {
			continue
		}

		suggested := int(math.Ceil(float64(suggestionSeeds) / suggestionDivisor))
		if suggested > maxSuggestions {
			suggested = maxSuggestions
		}

		gaps = append(gaps, types.ContentGap{
			Category:              group.name,
			KeywordCount:          len(group.keywords),
			WeakKeywordCount:      weakCount,
			AvgPosition:           avgPosition,
			WeakVolume:            weakVolume,
			SuggestedContentCount: suggested,
			SuggestedContentTypes: contentTypes(group.name),
			Priority:              priority(weakVolume),
			EstimatedTrafficGain:  int(float64(weakVolume) * trafficGainRate),
		})
	}

	sort.Slice(gaps, func(i, j int) bool {
		return gaps[i].WeakVolume > gaps[j].WeakVolume
	})

	return gaps
}

// Breakdown computes the share-of-voice standing of every category,
// including "Other", sorted by total volume descending.
func Breakdown(rankedKeywords []types.RankedKeyword) []types.CategorySOV {
	breakdown := make([]types.CategorySOV, 0)
	for _, group := range groupByCategory(rankedKeywords) {
		var totalVolume, positionSum int
		var visibleVolume float64
		var topKeyword string
		topVolume := -1
		for _, kw := range group.keywords {
			totalVolume += kw.SearchVolume
			positionSum += kw.Position
			visibleVolume += visibility.VisibleVolume(kw)
			if kw.SearchVolume > topVolume {
				topVolume = kw.SearchVolume
				topKeyword = kw.Keyword
			}
		}

		share := 0.0
		if totalVolume > 0 {
			share = math.Round(visibleVolume/float64(totalVolume)*1000) / 10
		}
		avgPosition := float64(positionSum) / float64(len(group.keywords))

		breakdown = append(breakdown, types.CategorySOV{
			Category:      group.name,
			KeywordCount:  len(group.keywords),
			TotalVolume:   totalVolume,
			VisibleVolume: visibleVolume,
			Share:         share,
			AvgPosition:   avgPosition,
			Status:        status(share, avgPosition),
			TopKeyword:    topKeyword,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].TotalVolume > breakdown[j].TotalVolume
	})

	return breakdown
}

// status grades a category's standing from its click-weighted share and
// average position.
func status(share, avgPosition float64) string {
	switch {
	case share >= 12 && avgPosition <= 10:
		return types.CategoryLeading
	case share < 4 || avgPosition > 15:
		return types.CategoryWeak
	default:
		return types.CategoryCompetitive
	}
}

func priority(weakVolume int) string {
	switch {
	case weakVolume > highPriorityVolume:
		return types.PriorityHigh
	case weakVolume > mediumPriorityVolume:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

func contentTypes(name string) []string {
	if found, ok := contentTypesByCategory[name]; ok {
		out := make([]string, len(found))
		copy(out, found)
		return out
	}
	out := make([]string, len(defaultContentTypes))
	copy(out, defaultContentTypes)
	return out
}

// groupByCategory buckets keywords by their resolved category, preserving
// first-seen order for deterministic output.
func groupByCategory(rankedKeywords []types.RankedKeyword) []categoryGroup {
	index := make(map[string]int)
	groups := make([]categoryGroup, 0)
	for _, kw := range rankedKeywords {
		name := category.Resolve(kw)
		i, seen := index[name]
		if !seen {
			i = len(groups)
			index[name] = i
			groups = append(groups, categoryGroup{name: name})
		}
		groups[i].keywords = append(groups[i].keywords, kw)
	}
	return groups
}
