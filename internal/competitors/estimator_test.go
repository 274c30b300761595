package competitors

import (
	"testing"

	"github.com/jonathan/keyword-insights/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brandSet() []types.BrandKeyword {
	return []types.BrandKeyword{
		{Keyword: "treadco", SearchVolume: 10000, IsOwnBrand: true},
		{Keyword: "treadco tires", SearchVolume: 2000, IsOwnBrand: true},
		{Keyword: "gripmax", SearchVolume: 8000, IsOwnBrand: false},
		{Keyword: "gripmax tires", SearchVolume: 4000, IsOwnBrand: false},
		{Keyword: "rollfast", SearchVolume: 6000, IsOwnBrand: false},
	}
}

func rankedSet() []types.RankedKeyword {
	return []types.RankedKeyword{
		{Keyword: "winter tires", SearchVolume: 12000, Position: 3},
		{Keyword: "all season tires", SearchVolume: 9000, Position: 4},
		{Keyword: "tire pressure check", SearchVolume: 4000, Position: 8},
		{Keyword: "cheap tires online", SearchVolume: 7000, Position: 14},
		{Keyword: "tire rotation cost", SearchVolume: 3000, Position: 17},
		{Keyword: "treadco warranty", SearchVolume: 1000, Position: 1},
		{Keyword: "gripmax review", SearchVolume: 2000, Position: 6},
	}
}

func TestEstimate_CompetitorIdentity(t *testing.T) {
	strengths := Estimate(brandSet(), rankedSet())

	require.Len(t, strengths, 2)
	names := []string{strengths[0].Competitor, strengths[1].Competitor}
	assert.ElementsMatch(t, []string{"gripmax", "rollfast"}, names)
}

func TestEstimate_EstimatedSOV(t *testing.T) {
	strengths := Estimate(brandSet(), rankedSet())

	byName := make(map[string]types.CompetitorStrength)
	for _, s := range strengths {
		byName[s.Competitor] = s
	}
	// gripmax: 12000 of 30000 total brand volume = 40%.
	assert.Equal(t, 40.0, byName["gripmax"].EstimatedSOV)
	assert.Equal(t, 12000, byName["gripmax"].BrandVolume)
	// rollfast: 6000 of 30000 = 20%.
	assert.Equal(t, 20.0, byName["rollfast"].EstimatedSOV)
}

func TestEstimate_HeadToHeadExcludesBrandedKeywords(t *testing.T) {
	strengths := Estimate(brandSet(), rankedSet())

	require.NotEmpty(t, strengths)
	// Generic pool: winter tires(3), all season tires(4), tire pressure
	// check(8), cheap tires online(14), tire rotation cost(17). The
	// treadco and gripmax keywords are branded and excluded.
	assert.Equal(t, 2, strengths[0].YouWin)
	assert.Equal(t, 2, strengths[0].TheyWin)
	assert.Equal(t, 1, strengths[0].Ties)
}

func TestEstimate_ShortBrandTokenDoesNotSwallowGenericKeywords(t *testing.T) {
	brand := []types.BrandKeyword{
		{Keyword: "treadco", SearchVolume: 1000, IsOwnBrand: true},
		{Keyword: "dr wheel", SearchVolume: 500, IsOwnBrand: false},
	}
	ranked := []types.RankedKeyword{
		{Keyword: "all wheel drive tires", SearchVolume: 5000, Position: 3},
		{Keyword: "hydroplaning prevention", SearchVolume: 2000, Position: 4},
		{Keyword: "dr wheel review", SearchVolume: 800, Position: 2},
	}

	strengths := Estimate(brand, ranked)

	require.Len(t, strengths, 1)
	// "dr" only excludes whole-word mentions: "dr wheel review" is branded,
	// "drive" and "hydroplaning" stay generic.
	assert.Equal(t, 2, strengths[0].YouWin)
	assert.Equal(t, 0, strengths[0].TheyWin)
}

func TestEstimate_MarkedAsEstimated(t *testing.T) {
	strengths := Estimate(brandSet(), rankedSet())

	for _, s := range strengths {
		assert.True(t, s.Estimated)
	}
}

func TestEstimate_SampleRotationVariesByCompetitor(t *testing.T) {
	brand := []types.BrandKeyword{
		{Keyword: "treadco", SearchVolume: 1000, IsOwnBrand: true},
		{Keyword: "alpha", SearchVolume: 1000, IsOwnBrand: false},
		{Keyword: "beta", SearchVolume: 1000, IsOwnBrand: false},
	}
	ranked := []types.RankedKeyword{
		{Keyword: "kw one", SearchVolume: 9000, Position: 2},
		{Keyword: "kw two", SearchVolume: 8000, Position: 3},
		{Keyword: "kw three", SearchVolume: 7000, Position: 4},
		{Keyword: "kw four", SearchVolume: 6000, Position: 5},
		{Keyword: "kw five", SearchVolume: 5000, Position: 1},
	}

	strengths := Estimate(brand, ranked)

	require.Len(t, strengths, 2)
	require.NotEmpty(t, strengths[0].WinningKeywords)
	require.NotEmpty(t, strengths[1].WinningKeywords)
	assert.NotEqual(t, strengths[0].WinningKeywords[0].Keyword, strengths[1].WinningKeywords[0].Keyword)
}

func TestEstimate_Deterministic(t *testing.T) {
	first := Estimate(brandSet(), rankedSet())
	second := Estimate(brandSet(), rankedSet())

	assert.Equal(t, first, second)
}

func TestEstimate_EmptyBrandKeywords(t *testing.T) {
	strengths := Estimate(nil, rankedSet())

	assert.Empty(t, strengths)
}

func TestEstimatedOpposingPosition(t *testing.T) {
	// Winning battle: they are modeled behind the own position.
	assert.Equal(t, 8, estimatedOpposingPosition(3, 30, false))
	// Losing battle: they are modeled ahead, floored at 1.
	assert.Equal(t, 9, estimatedOpposingPosition(14, 30, true))
	assert.Equal(t, 1, estimatedOpposingPosition(2, 80, true))
}
