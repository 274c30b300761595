package insights

import (
	"context"
	"fmt"
	"testing"

	"github.com/jonathan/keyword-insights/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRanked() []types.RankedKeyword {
	return []types.RankedKeyword{
		{Keyword: "winter tires", SearchVolume: 10000, Position: 5, URL: "/winter-tires"},
		{Keyword: "winter tires", SearchVolume: 10000, Position: 12, URL: "/seasonal-tires"},
		{Keyword: "buy winter tires", SearchVolume: 6000, Position: 9, URL: "/shop"},
		{Keyword: "best all season tires", SearchVolume: 8000, Position: 14, URL: "/all-season"},
		{Keyword: "how to store tires", SearchVolume: 2500, Position: 18, URL: "/blog/storage"},
		{Keyword: "tire pressure guide", SearchVolume: 1500, Position: 7, URL: "/blog/pressure"},
		{Keyword: "tire rotation cost", SearchVolume: 3000, Position: 4, URL: "/services"},
	}
}

func sampleBrand() []types.BrandKeyword {
	return []types.BrandKeyword{
		{Keyword: "treadco", SearchVolume: 9000, IsOwnBrand: true},
		{Keyword: "gripmax", SearchVolume: 12000, IsOwnBrand: false},
		{Keyword: "rollfast", SearchVolume: 4000, IsOwnBrand: false},
	}
}

func TestGenerateInsights_FullPipeline(t *testing.T) {
	result, err := GenerateInsights(context.Background(), sampleRanked(), sampleBrand(), nil, Options{})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.QuickWins)
	assert.NotEmpty(t, result.CategoryBreakdown)
	assert.NotEmpty(t, result.CompetitorStrengths)
	assert.Len(t, result.FunnelAnalysis, 4)
	assert.NotEmpty(t, result.ActionList)
}

func TestGenerateInsights_Deterministic(t *testing.T) {
	first, err := GenerateInsights(context.Background(), sampleRanked(), sampleBrand(), nil, Options{})
	require.NoError(t, err)
	second, err := GenerateInsights(context.Background(), sampleRanked(), sampleBrand(), nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateInsights_DoesNotMutateInputs(t *testing.T) {
	ranked := sampleRanked()
	brand := sampleBrand()
	_, err := GenerateInsights(context.Background(), ranked, brand, nil, Options{})

	require.NoError(t, err)
	assert.Equal(t, sampleRanked(), ranked)
	assert.Equal(t, sampleBrand(), brand)
	assert.Nil(t, ranked[0].SearchIntent)
}

func TestGenerateInsights_CannibalizationScenario(t *testing.T) {
	result, err := GenerateInsights(context.Background(), sampleRanked(), sampleBrand(), nil, Options{})

	require.NoError(t, err)
	require.Len(t, result.CannibalizationIssues, 1)
	issue := result.CannibalizationIssues[0]
	assert.Equal(t, "winter tires", issue.Keyword)
	assert.Len(t, issue.CompetingURLs, 2)
}

func TestGenerateInsights_RejectsNegativeVolume(t *testing.T) {
	ranked := []types.RankedKeyword{
		{Keyword: "ok", SearchVolume: 100, Position: 5},
		{Keyword: "broken", SearchVolume: -1, Position: 5},
	}

	result, err := GenerateInsights(context.Background(), ranked, nil, nil, Options{})

	require.Error(t, err)
	assert.Nil(t, result)
	var violation *ContractViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "rankedKeywords", violation.Record)
	assert.Equal(t, 1, violation.Index)
}

func TestGenerateInsights_RejectsOutOfRangePosition(t *testing.T) {
	for _, position := range []int{0, 101, -3} {
		ranked := []types.RankedKeyword{
			{Keyword: "broken", SearchVolume: 100, Position: position},
		}
		_, err := GenerateInsights(context.Background(), ranked, nil, nil, Options{})
		assert.Error(t, err, "position %d must be rejected", position)
	}
}

func TestGenerateInsights_RejectsBlankKeyword(t *testing.T) {
	_, err := GenerateInsights(context.Background(), []types.RankedKeyword{
		{Keyword: "   ", SearchVolume: 100, Position: 5},
	}, nil, nil, Options{})

	assert.Error(t, err)
}

func TestGenerateInsights_EmptyInputsProduceZeroSummary(t *testing.T) {
	result, err := GenerateInsights(context.Background(), nil, nil, nil, Options{})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Summary.TotalQuickWinPotential)
	assert.Equal(t, 0, result.Summary.HiddenGemCount)
	assert.Empty(t, result.ActionList)
}

func TestGenerateInsights_SummaryRollsUp(t *testing.T) {
	result, err := GenerateInsights(context.Background(), sampleRanked(), sampleBrand(), nil, Options{})

	require.NoError(t, err)
	var upliftSum int
	for _, win := range result.QuickWins {
		upliftSum += win.ClickUplift
	}
	assert.Equal(t, upliftSum, result.Summary.TotalQuickWinPotential)
	assert.Equal(t, len(result.HiddenGems), result.Summary.HiddenGemCount)
	assert.Equal(t, len(result.CannibalizationIssues), result.Summary.CannibalizationCount)
	require.NotEmpty(t, result.ActionList)
	assert.Equal(t, result.ActionList[0].Title, result.Summary.TopAction)
	assert.Len(t, result.Summary.FunnelVolume, 4)
}

func TestGenerateInsights_BrandContextAnnotatesActions(t *testing.T) {
	ctx := &types.BrandContext{
		BrandName: "TreadCo",
		Industry:  "automotive",
		SEOFocus:  []string{"winter tires"},
	}

	result, err := GenerateInsights(context.Background(), sampleRanked(), sampleBrand(), ctx, Options{})

	require.NoError(t, err)
	recommended := false
	for _, action := range result.ActionList {
		if action.IsRecommended {
			recommended = true
			assert.NotEmpty(t, action.RecommendedReason)
		}
	}
	assert.True(t, recommended, "at least one action should match the brand context")
}

func TestGenerateInsights_ActionListSortedByPriority(t *testing.T) {
	result, err := GenerateInsights(context.Background(), sampleRanked(), sampleBrand(), nil, Options{})

	require.NoError(t, err)
	for i := 1; i < len(result.ActionList); i++ {
		assert.GreaterOrEqual(t, result.ActionList[i-1].Priority, result.ActionList[i].Priority)
	}
}

func TestGenerateInsights_ActionCaps(t *testing.T) {
	var ranked []types.RankedKeyword
	for i := 0; i < 30; i++ {
		ranked = append(ranked, types.RankedKeyword{
			Keyword:      fmt.Sprintf("big keyword %d", i),
			SearchVolume: 30000,
			Position:     12,
		})
	}

	result, err := GenerateInsights(context.Background(), ranked, nil, nil, Options{})

	require.NoError(t, err)
	counts := make(map[string]int)
	for _, action := range result.ActionList {
		counts[action.Type]++
	}
	assert.LessOrEqual(t, counts[types.ActionQuickWin], 5)
	assert.LessOrEqual(t, counts[types.ActionHiddenGem], 3)
	assert.LessOrEqual(t, counts[types.ActionBuildCategory], 3)
	assert.LessOrEqual(t, counts[types.ActionMonitor], 2)
}
