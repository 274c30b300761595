// Package hiddengems finds low-competition, high-volume keywords the brand
// has not yet fully captured, ranked by a value/difficulty ratio.
package hiddengems

import (
	"fmt"
	"sort"

	"github.com/jonathan/keyword-insights/internal/relevance"
	"github.com/jonathan/keyword-insights/internal/types"
	"github.com/jonathan/keyword-insights/internal/visibility"
)

// Default thresholds. Downstream reasoning text assumes these exact values;
// do not tune them without product sign-off.
const (
	DefaultMinVolume     = 200
	DefaultMaxDifficulty = 40

	maxResults     = 20
	capturedAtRank = 3
	trendThreshold = 20.0
)

// Report carries the detected gems plus a flag telling the caller whether
// any input record had real difficulty data. When it is false, every
// difficulty figure is inferred from position alone and should be treated
// as an approximation.
type Report struct {
	Gems                    []types.HiddenGem `json:"gems"`
	DifficultyDataAvailable bool              `json:"difficultyDataAvailable"`
}

// Detect finds hidden gems among the relevant ranked keywords. Keywords
// already captured (rank <= 3) are excluded; results are capped at 20.
// Pass minVolume/maxDifficulty <= 0 to use the defaults.
func Detect(rankedKeywords []types.RankedKeyword, brandCtx *types.BrandContext, minVolume int, maxDifficulty float64) Report {
	if minVolume <= 0 {
		minVolume = DefaultMinVolume
	}
	if maxDifficulty <= 0 {
		maxDifficulty = DefaultMaxDifficulty
	}

	report := Report{Gems: make([]types.HiddenGem, 0)}
	for _, kw := range rankedKeywords {
		if kw.KeywordDifficulty != nil {
			report.DifficultyDataAvailable = true
			break
		}
	}

	for _, kw := range rankedKeywords {
		if kw.Position <= capturedAtRank {
			continue
		}
		if kw.SearchVolume < minVolume {
			continue
		}

		difficulty, estimated := resolveDifficulty(kw)
		if difficulty > maxDifficulty {
			continue
		}

		target := targetForDifficulty(difficulty)
		gem := types.HiddenGem{
			Keyword:             kw.Keyword,
			SearchVolume:        kw.SearchVolume,
			Position:            kw.Position,
			Difficulty:          difficulty,
			DifficultyEstimated: estimated,
			OpportunityType:     opportunityType(kw),
			TargetPosition:      target,
			PotentialClicks:     int(float64(kw.SearchVolume) * visibility.CTR(target)),
			MatchesBrandContext: relevance.MatchesContext(kw.Keyword, brandCtx),
		}
		gem.Reasoning = reasoning(gem)
		report.Gems = append(report.Gems, gem)
	}

	// Brand-context matches first, then by value/difficulty ratio.
	sort.SliceStable(report.Gems, func(i, j int) bool {
		a, b := report.Gems[i], report.Gems[j]
		if a.MatchesBrandContext != b.MatchesBrandContext {
			return a.MatchesBrandContext
		}
		return valueRatio(a) > valueRatio(b)
	})

	if len(report.Gems) > maxResults {
		report.Gems = report.Gems[:maxResults]
	}
	return report
}

func valueRatio(gem types.HiddenGem) float64 {
	return float64(gem.SearchVolume) / (gem.Difficulty + 1)
}

// resolveDifficulty prefers the provider's difficulty score and falls back
// to a position-based approximation when it is absent.
func resolveDifficulty(kw types.RankedKeyword) (difficulty float64, estimated bool) {
	if kw.KeywordDifficulty != nil {
		return *kw.KeywordDifficulty, false
	}
	switch {
	case kw.Position <= 5:
		return 25, true
	case kw.Position <= 10:
		return 30, true
	case kw.Position <= 15:
		return 35, true
	default:
		return 40, true
	}
}

func opportunityType(kw types.RankedKeyword) string {
	if kw.Trend != nil && *kw.Trend > trendThreshold {
		return types.GemRisingTrend
	}
	if kw.Position > 50 {
		return types.GemFirstMover
	}
	return types.GemEasyWin
}

func targetForDifficulty(difficulty float64) int {
	switch {
	case difficulty <= 20:
		return 1
	case difficulty <= 30:
		return 3
	default:
		return 5
	}
}

func reasoning(gem types.HiddenGem) string {
	difficultyNote := fmt.Sprintf("difficulty %.0f", gem.Difficulty)
	if gem.DifficultyEstimated {
		difficultyNote += " (estimated from position)"
	}

	switch gem.OpportunityType {
	case types.GemRisingTrend:
		return fmt.Sprintf("Search interest is growing fast and competition is still low (%s). Ranking now locks in the trend before it peaks.", difficultyNote)
	case types.GemFirstMover:
		return fmt.Sprintf("Barely ranking today (position %d) despite %d monthly searches and low competition (%s). A dedicated page could capture this almost uncontested.", gem.Position, gem.SearchVolume, difficultyNote)
	default:
		return fmt.Sprintf("%d monthly searches with low competition (%s) and a current position of %d. Reaching position %d is realistic with targeted optimization.", gem.SearchVolume, difficultyNote, gem.Position, gem.TargetPosition)
	}
}
