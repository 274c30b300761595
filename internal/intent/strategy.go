package intent

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/keyword-insights/internal/types"
)

// Strategic value labels.
const (
	ValueHigh   = "high"
	ValueMedium = "medium"
	ValueLow    = "low"
)

const mediumValueVolume = 500

var (
	workforceTerms  = regexp.MustCompile(`(?i)\b(career|careers|job|jobs|work at|working at|employer|team|hiring)\b`)
	comparisonTerms = regexp.MustCompile(`(?i)\b(vs|versus|compare|comparison|review|reviews)\b`)
	careersURLHint  = regexp.MustCompile(`(?i)(career|jobs|join|work-with-us|about/team)`)
)

// StrategicValue grades a keyword's value to the brand. Decision-stage
// keywords are always high; a narrow employer-branding signal (workforce
// query landing on a careers page) and consideration-stage comparisons are
// high too; the rest falls to medium or low by volume.
func StrategicValue(kw types.RankedKeyword, info types.SearchIntentInfo) string {
	switch info.FunnelStage {
	case types.StageDecision:
		return ValueHigh
	case types.StageAwareness:
		if workforceTerms.MatchString(kw.Keyword) && careersURLHint.MatchString(kw.URL) {
			return ValueHigh
		}
	case types.StageConsideration:
		if comparisonTerms.MatchString(kw.Keyword) {
			return ValueHigh
		}
	}
	if kw.SearchVolume >= mediumValueVolume {
		return ValueMedium
	}
	return ValueLow
}

// AnalyzeFunnel aggregates keyword coverage per funnel stage. Every stage
// is reported, including empty ones, in funnel order.
func AnalyzeFunnel(rankedKeywords []types.RankedKeyword) []types.FunnelStageAnalysis {
	stages := []string{types.StageAwareness, types.StageConsideration, types.StageDecision, types.StageRetention}

	counts := make(map[string]int)
	volumes := make(map[string]int)
	positionSums := make(map[string]int)
	totalVolume := 0
	for _, kw := range rankedKeywords {
		stage := Resolve(kw).FunnelStage
		counts[stage]++
		volumes[stage] += kw.SearchVolume
		positionSums[stage] += kw.Position
		totalVolume += kw.SearchVolume
	}

	analysis := make([]types.FunnelStageAnalysis, 0, len(stages))
	for _, stage := range stages {
		entry := types.FunnelStageAnalysis{
			Stage:        stage,
			KeywordCount: counts[stage],
			TotalVolume:  volumes[stage],
		}
		if counts[stage] > 0 {
			entry.AvgPosition = float64(positionSums[stage]) / float64(counts[stage])
		}
		if totalVolume > 0 {
			entry.VolumeShare = math.Round(float64(volumes[stage])/float64(totalVolume)*1000) / 10
		}
		analysis = append(analysis, entry)
	}
	return analysis
}

// Opportunities lists high-value keywords with headroom left in their
// current position, sorted by volume descending.
func Opportunities(rankedKeywords []types.RankedKeyword) []types.IntentOpportunity {
	opportunities := make([]types.IntentOpportunity, 0)
	for _, kw := range rankedKeywords {
		info := Resolve(kw)
		value := StrategicValue(kw, info)
		if value != ValueHigh || kw.Position <= 5 {
			continue
		}
		opportunities = append(opportunities, types.IntentOpportunity{
			Keyword:           kw.Keyword,
			SearchVolume:      kw.SearchVolume,
			Position:          kw.Position,
			Intent:            info.MainIntent,
			FunnelStage:       info.FunnelStage,
			StrategicValue:    value,
			RecommendedAction: recommendedAction(kw, info),
		})
	}

	sort.Slice(opportunities, func(i, j int) bool {
		return opportunities[i].SearchVolume > opportunities[j].SearchVolume
	})

	return opportunities
}

func recommendedAction(kw types.RankedKeyword, info types.SearchIntentInfo) string {
	switch info.FunnelStage {
	case types.StageDecision:
		return fmt.Sprintf("Strengthen the landing page for %q: buyers searching this are ready to convert and position %d leaves most of them to competitors.", kw.Keyword, kw.Position)
	case types.StageConsideration:
		return fmt.Sprintf("Publish comparison content for %q to own the shortlist moment.", kw.Keyword)
	case types.StageRetention:
		return fmt.Sprintf("Make sure %q resolves to the expected destination to protect existing customers.", kw.Keyword)
	default:
		action := fmt.Sprintf("Build awareness content around %q to enter the journey early.", kw.Keyword)
		if strings.Contains(strings.ToLower(kw.URL), "career") {
			action = fmt.Sprintf("Extend the careers content behind %q: it carries employer-branding value beyond traffic.", kw.Keyword)
		}
		return action
	}
}
