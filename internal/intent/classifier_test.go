package intent

import (
	"testing"

	"github.com/jonathan/keyword-insights/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClassify_IntentFamilies(t *testing.T) {
	cases := map[string]string{
		"buy winter tires":        types.IntentTransactional,
		"tire shop near me":       types.IntentTransactional,
		"winter tire prices":      types.IntentTransactional,
		"best winter tires":       types.IntentCommercial,
		"michelin vs continental": types.IntentCommercial,
		"treadco login":           types.IntentNavigational,
		"treadco contact":         types.IntentNavigational,
		"how to store tires":      types.IntentInformational,
		"what is tire rotation":   types.IntentInformational,
		"tire pressure guide":     types.IntentInformational,
	}

	for keyword, want := range cases {
		assert.Equal(t, want, Classify(keyword).MainIntent, "keyword: %s", keyword)
	}
}

func TestClassify_MostSpecificWins(t *testing.T) {
	// Transactional terms outrank the commercial "best".
	assert.Equal(t, types.IntentTransactional, Classify("best price winter tires").MainIntent)
}

func TestClassify_DefaultInformational(t *testing.T) {
	info := Classify("zirconium widgets")

	assert.Equal(t, types.IntentInformational, info.MainIntent)
	assert.Equal(t, types.StageAwareness, info.FunnelStage)
}

func TestClassify_ProductNounDefaultsCommercial(t *testing.T) {
	info := Classify("accounting software")

	assert.Equal(t, types.IntentCommercial, info.MainIntent)
	assert.Equal(t, types.StageConsideration, info.FunnelStage)
}

func TestClassify_FunnelMapping(t *testing.T) {
	assert.Equal(t, types.StageDecision, Classify("buy tires").FunnelStage)
	assert.Equal(t, types.StageConsideration, Classify("best tires").FunnelStage)
	assert.Equal(t, types.StageRetention, Classify("treadco login").FunnelStage)
	assert.Equal(t, types.StageAwareness, Classify("how to change tires").FunnelStage)
}

func TestResolve_KeepsSuppliedIntent(t *testing.T) {
	supplied := &types.SearchIntentInfo{
		MainIntent:  types.IntentNavigational,
		Probability: 0.99,
		FunnelStage: types.StageRetention,
	}
	kw := types.RankedKeyword{Keyword: "buy tires", SearchIntent: supplied}

	assert.Equal(t, *supplied, Resolve(kw))
}

func TestFunnelStage_UnknownDefaultsAwareness(t *testing.T) {
	assert.Equal(t, types.StageAwareness, FunnelStage("mystery"))
}
