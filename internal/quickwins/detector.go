// Package quickwins finds keywords ranked 4-20 with enough volume that a
// realistic position improvement yields meaningful extra clicks.
package quickwins

import (
	"fmt"
	"sort"

	"github.com/jonathan/keyword-insights/internal/category"
	"github.com/jonathan/keyword-insights/internal/types"
	"github.com/jonathan/keyword-insights/internal/visibility"
)

const (
	// DefaultMinVolume is the minimum monthly search volume considered.
	DefaultMinVolume = 100
	// minUplift is the click uplift below which a win is not worth listing.
	minUplift = 50

	minPosition = 4
	maxPosition = 20
)

// Detect scans the relevant ranked keywords for quick-win opportunities,
// sorted descending by click uplift. Keywords outside positions 4-20 or
// below minVolume are ignored; pass minVolume <= 0 to use the default.
func Detect(rankedKeywords []types.RankedKeyword, minVolume int) []types.QuickWinOpportunity {
	if minVolume <= 0 {
		minVolume = DefaultMinVolume
	}

	wins := make([]types.QuickWinOpportunity, 0)
	for _, kw := range rankedKeywords {
		if kw.Position < minPosition || kw.Position > maxPosition {
			continue
		}
		if kw.SearchVolume < minVolume {
			continue
		}

		target := targetPosition(kw.Position)
		currentClicks := int(visibility.VisibleVolume(kw))
		potentialClicks := int(float64(kw.SearchVolume) * visibility.CTR(target))
		uplift := potentialClicks - currentClicks
		if uplift < minUplift {
			continue
		}

		wins = append(wins, types.QuickWinOpportunity{
			Keyword:         kw.Keyword,
			SearchVolume:    kw.SearchVolume,
			CurrentPosition: kw.Position,
			TargetPosition:  target,
			CurrentClicks:   currentClicks,
			PotentialClicks: potentialClicks,
			ClickUplift:     uplift,
			Effort:          effort(kw.Position, target),
			URL:             kw.URL,
			Category:        category.Resolve(kw),
			Reasoning:       reasoning(kw, target, uplift),
		})
	}

	sort.Slice(wins, func(i, j int) bool {
		return wins[i].ClickUplift > wins[j].ClickUplift
	})

	return wins
}

// targetPosition picks a realistic improvement target for a current
// position. The ladder is fixed; downstream reasoning text assumes it.
func targetPosition(position int) int {
	switch {
	case position <= 3:
		return 1
	case position <= 5:
		return 3
	case position <= 10:
		return 5
	case position <= 15:
		return 8
	default:
		return 10
	}
}

// effort grades the size of the jump from current to target position.
func effort(position, target int) string {
	distance := position - target
	switch {
	case distance <= 3:
		return types.EffortLow
	case distance <= 7:
		return types.EffortMedium
	default:
		return types.EffortHigh
	}
}

// reasoning builds a short natural-language explanation from the position
// band, volume band, and required effort.
func reasoning(kw types.RankedKeyword, target, uplift int) string {
	positionBand := "on page two"
	if kw.Position <= 10 {
		positionBand = "on the lower half of page one"
	}
	if kw.Position <= 5 {
		positionBand = "just below the top results"
	}

	volumeBand := "moderate"
	if kw.SearchVolume >= 10000 {
		volumeBand = "very high"
	} else if kw.SearchVolume >= 1000 {
		volumeBand = "high"
	}

	return fmt.Sprintf("Currently %s (position %d) with %s search volume (%d/month). Moving to position %d is a %s-effort change worth roughly %d extra clicks per month.",
		positionBand, kw.Position, volumeBand, kw.SearchVolume, target, effort(kw.Position, target), uplift)
}
