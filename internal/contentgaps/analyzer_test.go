package contentgaps

import (
	"fmt"
	"testing"

	"github.com/jonathan/keyword-insights/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weakCategory(name string, count int) []types.RankedKeyword {
	keywords := make([]types.RankedKeyword, 0, count)
	for i := 0; i < count; i++ {
		keywords = append(keywords, types.RankedKeyword{
			Keyword:      fmt.Sprintf("%s keyword %d", name, i),
			SearchVolume: 2000,
			Position:     14,
			Category:     name,
		})
	}
	return keywords
}

func TestAnalyze_NeverEmitsOther(t *testing.T) {
	keywords := []types.RankedKeyword{
		{Keyword: "zzz one", SearchVolume: 5000, Position: 15, Category: "Other"},
		{Keyword: "zzz two", SearchVolume: 5000, Position: 16, Category: "Other"},
		{Keyword: "zzz three", SearchVolume: 5000, Position: 17, Category: "Other"},
		{Keyword: "zzz four", SearchVolume: 5000, Position: 18, Category: "Other"},
	}

	gaps := Analyze(keywords)

	assert.Empty(t, gaps)
}

func TestAnalyze_SkipsSmallCategories(t *testing.T) {
	gaps := Analyze(weakCategory("Tires", 2))
	assert.Empty(t, gaps)

	gaps = Analyze(weakCategory("Tires", 3))
	require.Len(t, gaps, 1)
	assert.GreaterOrEqual(t, gaps[0].KeywordCount, 3)
}

func TestAnalyze_HighAveragePositionIsGap(t *testing.T) {
	keywords := []types.RankedKeyword{
		{Keyword: "a", SearchVolume: 100, Position: 9, Category: "Tires"},
		{Keyword: "b", SearchVolume: 100, Position: 9, Category: "Tires"},
		{Keyword: "c", SearchVolume: 100, Position: 9, Category: "Tires"},
	}

	gaps := Analyze(keywords)

	require.Len(t, gaps, 1)
	assert.Equal(t, "Tires", gaps[0].Category)
	assert.InDelta(t, 9.0, gaps[0].AvgPosition, 0.001)
}

func TestAnalyze_HealthyCategoryIsNotGap(t *testing.T) {
	keywords := []types.RankedKeyword{
		{Keyword: "a", SearchVolume: 100, Position: 2, Category: "Tires"},
		{Keyword: "b", SearchVolume: 100, Position: 3, Category: "Tires"},
		{Keyword: "c", SearchVolume: 100, Position: 5, Category: "Tires"},
	}

	gaps := Analyze(keywords)

	assert.Empty(t, gaps)
}

func TestAnalyze_WeakShareTriggersGap(t *testing.T) {
	// Average position 7.75 is fine, but half the keywords are weak.
	keywords := []types.RankedKeyword{
		{Keyword: "a", SearchVolume: 100, Position: 1, Category: "Tires"},
		{Keyword: "b", SearchVolume: 100, Position: 2, Category: "Tires"},
		{Keyword: "d", SearchVolume: 100, Position: 14, Category: "Tires"},
		{Keyword: "e", SearchVolume: 100, Position: 14, Category: "Tires"},
	}

	gaps := Analyze(keywords)

	require.Len(t, gaps, 1)
	assert.Equal(t, 2, gaps[0].WeakKeywordCount)
}

func TestAnalyze_SuggestionCountAndPriority(t *testing.T) {
	keywords := make([]types.RankedKeyword, 0, 7)
	for i := 0; i < 7; i++ {
		keywords = append(keywords, types.RankedKeyword{
			Keyword:      fmt.Sprintf("tires %d", i),
			SearchVolume: 9000,
			Position:     13,
			Category:     "Tires",
		})
	}

	gaps := Analyze(keywords)

	require.Len(t, gaps, 1)
	// ceil(7/3) = 3 suggested pieces; 63k weak volume is high priority.
	assert.Equal(t, 3, gaps[0].SuggestedContentCount)
	assert.Equal(t, types.PriorityHigh, gaps[0].Priority)
	assert.Equal(t, 3150, gaps[0].EstimatedTrafficGain)
	assert.NotEmpty(t, gaps[0].SuggestedContentTypes)
}

func TestAnalyze_SuggestionCountCapped(t *testing.T) {
	gaps := Analyze(weakCategory("Tires", 40))

	require.Len(t, gaps, 1)
	assert.Equal(t, 10, gaps[0].SuggestedContentCount)
}

func TestAnalyze_LowVolumeKeywordsDoNotSeedSuggestions(t *testing.T) {
	keywords := []types.RankedKeyword{
		{Keyword: "a", SearchVolume: 100, Position: 14, Category: "Tires"},
		{Keyword: "b", SearchVolume: 100, Position: 14, Category: "Tires"},
		{Keyword: "c", SearchVolume: 100, Position: 14, Category: "Tires"},
	}

	gaps := Analyze(keywords)

	require.Len(t, gaps, 1)
	assert.Equal(t, 0, gaps[0].SuggestedContentCount)
}

func TestBreakdown_SharesAndStatuses(t *testing.T) {
	keywords := []types.RankedKeyword{
		{Keyword: "leader a", SearchVolume: 1000, Position: 1, Category: "Leading"},
		{Keyword: "leader b", SearchVolume: 1000, Position: 2, Category: "Leading"},
		{Keyword: "laggard a", SearchVolume: 1000, Position: 18, Category: "Lagging"},
		{Keyword: "laggard b", SearchVolume: 1000, Position: 19, Category: "Lagging"},
	}

	breakdown := Breakdown(keywords)

	require.Len(t, breakdown, 2)
	byName := make(map[string]types.CategorySOV)
	for _, entry := range breakdown {
		byName[entry.Category] = entry
	}
	assert.Equal(t, types.CategoryLeading, byName["Leading"].Status)
	assert.Equal(t, types.CategoryWeak, byName["Lagging"].Status)
	assert.Greater(t, byName["Leading"].Share, byName["Lagging"].Share)
}

func TestBreakdown_ZeroVolumeYieldsZeroShare(t *testing.T) {
	keywords := []types.RankedKeyword{
		{Keyword: "silent", SearchVolume: 0, Position: 5, Category: "Quiet"},
	}

	breakdown := Breakdown(keywords)

	require.Len(t, breakdown, 1)
	assert.Equal(t, 0.0, breakdown[0].Share)
}
