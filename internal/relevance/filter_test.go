package relevance

import (
	"testing"

	"github.com/jonathan/keyword-insights/internal/types"
	"github.com/stretchr/testify/assert"
)

func autoContext() *types.BrandContext {
	return &types.BrandContext{
		BrandName: "TreadCo",
		Industry:  "automotive",
		SEOFocus:  []string{"winter tires"},
	}
}

func TestFilter_NilContextIsNoOp(t *testing.T) {
	keywords := []types.RankedKeyword{
		{Keyword: "random gibberish", SearchVolume: 10, Position: 50},
		{Keyword: "treadco careers", SearchVolume: 100, Position: 3},
	}

	result := Filter(keywords, nil)

	assert.Len(t, result, 2)
}

func TestFilter_DropsOffTopicQueries(t *testing.T) {
	keywords := []types.RankedKeyword{
		{Keyword: "treadco careers", SearchVolume: 500, Position: 2},
		{Keyword: "treadco login", SearchVolume: 300, Position: 1},
		{Keyword: "treadco stock price", SearchVolume: 200, Position: 4},
		{Keyword: "winter tires", SearchVolume: 5000, Position: 6},
	}

	result := Filter(keywords, autoContext())

	assert.Len(t, result, 1)
	assert.Equal(t, "winter tires", result[0].Keyword)
}

func TestFilter_KeepsIndustryExpandedTerms(t *testing.T) {
	// "brake pads" matches no explicit context term but is covered by the
	// automotive expansion table.
	keywords := []types.RankedKeyword{
		{Keyword: "brake pads replacement", SearchVolume: 900, Position: 9},
		{Keyword: "chocolate cake recipe", SearchVolume: 8000, Position: 15},
	}

	result := Filter(keywords, autoContext())

	assert.Len(t, result, 1)
	assert.Equal(t, "brake pads replacement", result[0].Keyword)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	keywords := []types.RankedKeyword{
		{Keyword: "winter tires", SearchVolume: 5000, Position: 6},
	}

	result := Filter(keywords, autoContext())
	result[0].Keyword = "changed"

	assert.Equal(t, "winter tires", keywords[0].Keyword)
}

func TestIsRelevant_EmptyTermsKeepsNonNoise(t *testing.T) {
	kw := types.RankedKeyword{Keyword: "something on topic", SearchVolume: 10, Position: 5}
	assert.True(t, IsRelevant(kw, nil))

	noise := types.RankedKeyword{Keyword: "acme jobs", SearchVolume: 10, Position: 5}
	assert.False(t, IsRelevant(noise, nil))
}

func TestMatchesContext(t *testing.T) {
	ctx := autoContext()

	assert.True(t, MatchesContext("best winter tires", ctx))
	assert.True(t, MatchesContext("cheap car insurance quote", ctx)) // "car" via expansion
	assert.False(t, MatchesContext("chocolate cake recipe", ctx))
	assert.False(t, MatchesContext("anything", nil))
}
