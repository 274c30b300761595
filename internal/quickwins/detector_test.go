package quickwins

import (
	"testing"

	"github.com/jonathan/keyword-insights/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_PositionRange(t *testing.T) {
	keywords := []types.RankedKeyword{
		{Keyword: "already top", SearchVolume: 50000, Position: 1},
		{Keyword: "position three", SearchVolume: 50000, Position: 3},
		{Keyword: "page three", SearchVolume: 50000, Position: 21},
		{Keyword: "in range", SearchVolume: 50000, Position: 8},
	}

	wins := Detect(keywords, 0)

	require.Len(t, wins, 1)
	assert.Equal(t, "in range", wins[0].Keyword)
	for _, win := range wins {
		assert.GreaterOrEqual(t, win.CurrentPosition, 4)
		assert.LessOrEqual(t, win.CurrentPosition, 20)
	}
}

func TestDetect_MinimumUplift(t *testing.T) {
	// 150/month at position 4 moving to 3: 150*(0.11-0.08) = 4 clicks, dropped.
	keywords := []types.RankedKeyword{
		{Keyword: "tiny uplift", SearchVolume: 150, Position: 4},
	}

	wins := Detect(keywords, 0)

	assert.Empty(t, wins)
}

func TestDetect_UpliftAtLeastFifty(t *testing.T) {
	keywords := []types.RankedKeyword{
		{Keyword: "big mover", SearchVolume: 20000, Position: 12},
		{Keyword: "small mover", SearchVolume: 2000, Position: 12},
	}

	wins := Detect(keywords, 0)

	for _, win := range wins {
		assert.GreaterOrEqual(t, win.ClickUplift, 50)
	}
}

func TestDetect_MinVolumeThreshold(t *testing.T) {
	keywords := []types.RankedKeyword{
		{Keyword: "low volume", SearchVolume: 99, Position: 10},
		{Keyword: "enough volume", SearchVolume: 20000, Position: 10},
	}

	wins := Detect(keywords, 0)

	require.Len(t, wins, 1)
	assert.Equal(t, "enough volume", wins[0].Keyword)
}

func TestDetect_SortedByUpliftDescending(t *testing.T) {
	keywords := []types.RankedKeyword{
		{Keyword: "medium", SearchVolume: 5000, Position: 12},
		{Keyword: "large", SearchVolume: 50000, Position: 12},
		{Keyword: "small", SearchVolume: 3000, Position: 12},
	}

	wins := Detect(keywords, 0)

	require.Len(t, wins, 3)
	assert.Equal(t, "large", wins[0].Keyword)
	for i := 1; i < len(wins); i++ {
		assert.GreaterOrEqual(t, wins[i-1].ClickUplift, wins[i].ClickUplift)
	}
}

func TestTargetPosition_Ladder(t *testing.T) {
	assert.Equal(t, 3, targetPosition(4))
	assert.Equal(t, 3, targetPosition(5))
	assert.Equal(t, 5, targetPosition(6))
	assert.Equal(t, 5, targetPosition(10))
	assert.Equal(t, 8, targetPosition(11))
	assert.Equal(t, 8, targetPosition(15))
	assert.Equal(t, 10, targetPosition(16))
	assert.Equal(t, 10, targetPosition(20))
}

func TestEffort_Bands(t *testing.T) {
	assert.Equal(t, types.EffortLow, effort(5, 3))
	assert.Equal(t, types.EffortMedium, effort(10, 5))
	assert.Equal(t, types.EffortHigh, effort(18, 10))
}

func TestDetect_CarriesReasoning(t *testing.T) {
	keywords := []types.RankedKeyword{
		{Keyword: "winter tires", SearchVolume: 20000, Position: 12},
	}

	wins := Detect(keywords, 0)

	require.Len(t, wins, 1)
	assert.NotEmpty(t, wins[0].Reasoning)
	assert.Contains(t, wins[0].Reasoning, "position 8")
}
