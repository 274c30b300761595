// Package competitors derives approximate competitor strength from
// first-party ranking data plus competitor brand-search volume as a proxy.
//
// No real competitor rankings are available: every figure here, including
// the per-keyword "their position" values, is a modeled estimate for
// narrative purposes and is marked as such on the output.
package competitors

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/keyword-insights/internal/types"
)

const sampleSize = 3

// Estimate builds a strength profile for every detected competitor brand.
// Competitors are the distinct first words of non-own-brand keywords.
// Results are sorted descending by estimated share of voice.
func Estimate(brandKeywords []types.BrandKeyword, rankedKeywords []types.RankedKeyword) []types.CompetitorStrength {
	totalVolume := 0
	for _, kw := range brandKeywords {
		totalVolume += kw.SearchVolume
	}

	volumes := make(map[string]int)
	order := make([]string, 0)
	for _, kw := range brandKeywords {
		if kw.IsOwnBrand {
			continue
		}
		name := competitorName(kw.Keyword)
		if name == "" {
			continue
		}
		if _, seen := volumes[name]; !seen {
			order = append(order, name)
		}
		volumes[name] += kw.SearchVolume
	}

	generic := genericKeywords(rankedKeywords, brandKeywords)
	youWin, theyWin, ties := headToHeadCounts(generic)

	winnersPool := positionSlice(generic, func(p int) bool { return p <= 5 })
	losersPool := positionSlice(generic, func(p int) bool { return p >= 11 && p <= 20 })

	strengths := make([]types.CompetitorStrength, 0, len(order))
	for i, name := range order {
		sov := 0.0
		if totalVolume > 0 {
			sov = math.Round(float64(volumes[name])/float64(totalVolume)*1000) / 10
		}

		strengths = append(strengths, types.CompetitorStrength{
			Competitor:      name,
			BrandVolume:     volumes[name],
			EstimatedSOV:    sov,
			YouWin:          youWin,
			TheyWin:         theyWin,
			Ties:            ties,
			WinningKeywords: sampleBattles(winnersPool, i, sov, false),
			LosingKeywords:  sampleBattles(losersPool, i, sov, true),
			Estimated:       true,
		})
	}

	sort.SliceStable(strengths, func(i, j int) bool {
		return strengths[i].EstimatedSOV > strengths[j].EstimatedSOV
	})

	return strengths
}

// competitorName is the first word of a brand keyword, lower-cased. An
// explicit design simplification: multi-word competitor brands collapse to
// their leading word.
func competitorName(keyword string) string {
	fields := strings.Fields(strings.ToLower(keyword))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// genericKeywords drops every ranked keyword that mentions a brand term,
// own or competitor, so head-to-head proxies are computed on non-branded
// demand only.
func genericKeywords(rankedKeywords []types.RankedKeyword, brandKeywords []types.BrandKeyword) []types.RankedKeyword {
	brandTerms := make([]string, 0, len(brandKeywords))
	seen := make(map[string]bool)
	for _, kw := range brandKeywords {
		name := competitorName(kw.Keyword)
		if name != "" && !seen[name] {
			seen[name] = true
			brandTerms = append(brandTerms, name)
		}
	}

	generic := make([]types.RankedKeyword, 0, len(rankedKeywords))
	for _, kw := range rankedKeywords {
		words := strings.Fields(strings.ToLower(kw.Keyword))
		branded := false
		for _, term := range brandTerms {
			if containsWord(words, term) {
				branded = true
				break
			}
		}
		if !branded {
			generic = append(generic, kw)
		}
	}
	return generic
}

// containsWord reports whether term appears as a whole word. Substring
// matches are not enough: a short brand token like "dr" must not swallow
// generic keywords such as "all wheel drive".
func containsWord(words []string, term string) bool {
	for _, word := range words {
		if word == term {
			return true
		}
	}
	return false
}

// headToHeadCounts are proxies over generic keywords: own rankings at the
// top count as wins, page-two rankings as losses, the middle as ties.
func headToHeadCounts(generic []types.RankedKeyword) (youWin, theyWin, ties int) {
	for _, kw := range generic {
		switch {
		case kw.Position <= 5:
			youWin++
		case kw.Position >= 11 && kw.Position <= 20:
			theyWin++
		case kw.Position >= 6 && kw.Position <= 10:
			ties++
		}
	}
	return youWin, theyWin, ties
}

func positionSlice(generic []types.RankedKeyword, keep func(int) bool) []types.RankedKeyword {
	out := make([]types.RankedKeyword, 0)
	for _, kw := range generic {
		if keep(kw.Position) {
			out = append(out, kw)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SearchVolume > out[j].SearchVolume
	})
	return out
}

// sampleBattles selects up to sampleSize keywords from the pool, rotated by
// competitor index so each competitor surfaces a different subset. The
// rotation is a pure function of the competitor's position in the input
// ordering, never of wall-clock time or randomness.
func sampleBattles(pool []types.RankedKeyword, competitorIndex int, sov float64, losing bool) []types.KeywordBattle {
	if len(pool) == 0 {
		return nil
	}

	offset := (competitorIndex * sampleSize) % len(pool)
	battles := make([]types.KeywordBattle, 0, sampleSize)
	for n := 0; n < sampleSize && n < len(pool); n++ {
		kw := pool[(offset+n)%len(pool)]
		battles = append(battles, types.KeywordBattle{
			Keyword:       kw.Keyword,
			SearchVolume:  kw.SearchVolume,
			YourPosition:  kw.Position,
			TheirPosition: estimatedOpposingPosition(kw.Position, sov, losing),
		})
	}
	return battles
}

// estimatedOpposingPosition offsets the own position by a function of the
// competitor's estimated share of voice. Stronger competitors are modeled
// as ranking closer when winning and further ahead when the brand loses.
func estimatedOpposingPosition(ownPosition int, sov float64, losing bool) int {
	step := int(sov/10) + 2
	if losing {
		position := ownPosition - step
		if position < 1 {
			return 1
		}
		return position
	}
	return ownPosition + step
}
