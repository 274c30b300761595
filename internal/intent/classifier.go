// Package intent classifies search intent and funnel stage for keywords
// and assesses their strategic value given brand context.
package intent

import (
	"regexp"
	"strings"

	"github.com/jonathan/keyword-insights/internal/types"
)

// rule pairs an intent label with a pattern and the confidence assigned on
// a match.
type rule struct {
	intent      string
	pattern     *regexp.Regexp
	probability float64
}

// cascade is evaluated in order, most specific intent first. The first
// matching rule wins.
var cascade = []rule{
	{types.IntentTransactional, regexp.MustCompile(`(?i)\b(buy|order|purchase|price|prices|cheap|cheapest|coupon|discount|for sale|near me|delivery|shipping|book now)\b`), 0.9},
	{types.IntentCommercial, regexp.MustCompile(`(?i)\b(best|top|compare|comparison|vs|versus|review|reviews|rating|ratings|alternative|alternatives|recommended)\b`), 0.85},
	{types.IntentNavigational, regexp.MustCompile(`(?i)\b(login|log in|sign in|official|website|homepage|contact|app|portal|my account|customer service)\b`), 0.9},
	{types.IntentInformational, regexp.MustCompile(`(?i)\b(how|what|why|when|where|who|guide|tutorial|tips|meaning|definition|examples|ideas|learn)\b`), 0.8},
}

// productNouns push otherwise unmatched keywords toward commercial intent:
// someone naming a product type is usually weighing options.
var productNouns = regexp.MustCompile(`(?i)\b(software|tool|tools|service|services|app|apps|platform|system|device|kit|product|products|equipment|solution|solutions)\b`)

// funnelByIntent is a fixed 1:1 mapping from intent to funnel stage.
var funnelByIntent = map[string]string{
	types.IntentInformational: types.StageAwareness,
	types.IntentCommercial:    types.StageConsideration,
	types.IntentTransactional: types.StageDecision,
	types.IntentNavigational:  types.StageRetention,
}

// Classify assigns search intent and funnel stage to a keyword. It is
// total and deterministic; unmatched keywords default to informational
// unless a product-type noun suggests commercial research.
func Classify(keyword string) types.SearchIntentInfo {
	text := strings.TrimSpace(keyword)
	for _, r := range cascade {
		if r.pattern.MatchString(text) {
			return types.SearchIntentInfo{
				MainIntent:  r.intent,
				Probability: r.probability,
				FunnelStage: funnelByIntent[r.intent],
			}
		}
	}
	if productNouns.MatchString(text) {
		return types.SearchIntentInfo{
			MainIntent:  types.IntentCommercial,
			Probability: 0.6,
			FunnelStage: types.StageConsideration,
		}
	}
	return types.SearchIntentInfo{
		MainIntent:  types.IntentInformational,
		Probability: 0.5,
		FunnelStage: types.StageAwareness,
	}
}

// Resolve returns the record's own intent classification when present,
// otherwise a fresh one.
func Resolve(kw types.RankedKeyword) types.SearchIntentInfo {
	if kw.SearchIntent != nil {
		return *kw.SearchIntent
	}
	return Classify(kw.Keyword)
}

// FunnelStage maps an intent label to its funnel stage, defaulting to
// awareness for unknown labels.
func FunnelStage(intent string) string {
	if stage, ok := funnelByIntent[intent]; ok {
		return stage
	}
	return types.StageAwareness
}
