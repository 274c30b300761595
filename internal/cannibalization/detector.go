// Package cannibalization finds the brand's own pages competing against
// each other for the same keyword and recommends a resolution.
package cannibalization

import (
	"sort"
	"strings"

	"github.com/jonathan/keyword-insights/internal/types"
	"github.com/jonathan/keyword-insights/internal/visibility"
)

const (
	consolidateURLCount = 3
	differentiateSpread = 5
)

// Detect groups URL-bearing keywords by normalized keyword text and flags
// every group where two or more distinct URLs rank. Results are sorted
// descending by impact score.
func Detect(rankedKeywords []types.RankedKeyword) []types.CannibalizationIssue {
	groups := make(map[string][]types.RankedKeyword)
	order := make([]string, 0)
	for _, kw := range rankedKeywords {
		if kw.URL == "" {
			continue
		}
		key := normalizeKeyword(kw.Keyword)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], kw)
	}

	issues := make([]types.CannibalizationIssue, 0)
	for _, key := range order {
		group := groups[key]
		urls := distinctURLs(group)
		if len(urls) < 2 {
			continue
		}

		sort.Slice(group, func(i, j int) bool {
			return group[i].Position < group[j].Position
		})
		best, worst := group[0], group[len(group)-1]

		issue := types.CannibalizationIssue{
			Keyword:        key,
			SearchVolume:   best.SearchVolume,
			CompetingURLs:  competingURLs(group),
			Recommendation: recommend(len(urls), worst.Position-best.Position),
			ImpactScore:    impactScore(group),
		}
		issues = append(issues, issue)
	}

	sort.Slice(issues, func(i, j int) bool {
		return issues[i].ImpactScore > issues[j].ImpactScore
	})

	return issues
}

func normalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

func distinctURLs(group []types.RankedKeyword) []string {
	seen := make(map[string]bool)
	urls := make([]string, 0, len(group))
	for _, kw := range group {
		if !seen[kw.URL] {
			seen[kw.URL] = true
			urls = append(urls, kw.URL)
		}
	}
	return urls
}

func competingURLs(group []types.RankedKeyword) []types.CompetingURL {
	seen := make(map[string]bool)
	urls := make([]types.CompetingURL, 0, len(group))
	for _, kw := range group {
		if seen[kw.URL] {
			continue
		}
		seen[kw.URL] = true
		urls = append(urls, types.CompetingURL{
			URL:           kw.URL,
			Position:      kw.Position,
			VisibleVolume: visibility.VisibleVolume(kw),
		})
	}
	return urls
}

// recommend picks the resolution strategy: consolidate sprawl, redirect a
// clearly weaker page, or differentiate pages ranking close together.
func recommend(urlCount, spread int) string {
	if urlCount > consolidateURLCount {
		return types.RecommendConsolidate
	}
	if spread < differentiateSpread {
		return types.RecommendDifferentiate
	}
	return types.RecommendRedirect
}

// impactScore is the visibility lost to internal competition versus a
// hypothetical single page ranking first, floored at zero.
func impactScore(group []types.RankedKeyword) float64 {
	best := group[0]
	ideal := float64(best.SearchVolume) * visibility.CTR(1)

	var actual float64
	seen := make(map[string]bool)
	for _, kw := range group {
		if seen[kw.URL] {
			continue
		}
		seen[kw.URL] = true
		actual += visibility.VisibleVolume(kw)
	}

	impact := ideal - actual
	if impact < 0 {
		return 0
	}
	return impact
}
