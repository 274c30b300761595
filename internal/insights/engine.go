package insights

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/keyword-insights/internal/cannibalization"
	"github.com/jonathan/keyword-insights/internal/category"
	"github.com/jonathan/keyword-insights/internal/competitors"
	"github.com/jonathan/keyword-insights/internal/contentgaps"
	"github.com/jonathan/keyword-insights/internal/hiddengems"
	"github.com/jonathan/keyword-insights/internal/intent"
	"github.com/jonathan/keyword-insights/internal/quickwins"
	"github.com/jonathan/keyword-insights/internal/relevance"
	"github.com/jonathan/keyword-insights/internal/types"
)

// Options tunes the detector thresholds. Zero values use the defaults.
type Options struct {
	QuickWinMinVolume int
	GemMinVolume      int
	GemMaxDifficulty  float64
}

// GenerateInsights runs the complete analysis over a snapshot of keyword
// data. It validates the input contract first, filters the keyword set for
// brand relevance once so every detector sees the same subset, runs the
// independent detectors in parallel, and merges their outputs into a
// prioritized action list. Input slices are never mutated.
func GenerateInsights(ctx context.Context, rankedKeywords []types.RankedKeyword, brandKeywords []types.BrandKeyword, brandCtx *types.BrandContext, opts Options) (*types.ActionableInsights, error) {
	if err := ValidateInputs(rankedKeywords, brandKeywords); err != nil {
		return nil, err
	}

	relevant := enrich(relevance.Filter(rankedKeywords, brandCtx))

	result := &types.ActionableInsights{}
	var gemReport hiddengems.Report
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		wins := quickwins.Detect(relevant, opts.QuickWinMinVolume)
		mu.Lock()
		result.QuickWins = wins
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		report := hiddengems.Detect(relevant, brandCtx, opts.GemMinVolume, opts.GemMaxDifficulty)
		mu.Lock()
		gemReport = report
		result.HiddenGems = report.Gems
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		issues := cannibalization.Detect(relevant)
		mu.Lock()
		result.CannibalizationIssues = issues
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		gaps := contentgaps.Analyze(relevant)
		breakdown := contentgaps.Breakdown(relevant)
		mu.Lock()
		result.ContentGaps = gaps
		result.CategoryBreakdown = breakdown
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		strengths := competitors.Estimate(brandKeywords, relevant)
		mu.Lock()
		result.CompetitorStrengths = strengths
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		funnel := intent.AnalyzeFunnel(relevant)
		opportunities := intent.Opportunities(relevant)
		mu.Lock()
		result.FunnelAnalysis = funnel
		result.IntentOpportunities = opportunities
		mu.Unlock()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	result.ActionList = buildActionList(result, brandCtx)
	result.Summary = summarize(result, gemReport)

	return result, nil
}

// enrich derives new records with category and search intent filled in.
// The caller's slice stays untouched.
func enrich(rankedKeywords []types.RankedKeyword) []types.RankedKeyword {
	enriched := make([]types.RankedKeyword, len(rankedKeywords))
	for i, kw := range rankedKeywords {
		enriched[i] = kw
		if kw.Category == "" {
			enriched[i].Category = category.Classify(kw.Keyword)
		}
		if kw.SearchIntent == nil {
			info := intent.Classify(kw.Keyword)
			enriched[i].SearchIntent = &info
		}
	}
	return enriched
}

func summarize(result *types.ActionableInsights, gemReport hiddengems.Report) types.InsightsSummary {
	summary := types.InsightsSummary{
		HiddenGemCount:       len(result.HiddenGems),
		DifficultyDataUsed:   gemReport.DifficultyDataAvailable,
		CannibalizationCount: len(result.CannibalizationIssues),
		FunnelVolume:         make(map[string]int, len(result.FunnelAnalysis)),
	}
	for _, win := range result.QuickWins {
		summary.TotalQuickWinPotential += win.ClickUplift
	}
	for _, entry := range result.CategoryBreakdown {
		switch entry.Status {
		case types.CategoryLeading:
			summary.StrongCategories++
		case types.CategoryWeak:
			summary.WeakCategories++
		}
	}
	for _, stage := range result.FunnelAnalysis {
		summary.FunnelVolume[stage.Stage] = stage.TotalVolume
	}
	if len(result.ActionList) > 0 {
		summary.TopAction = result.ActionList[0].Title
	}
	return summary
}
