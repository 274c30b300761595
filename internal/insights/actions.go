package insights

import (
	"fmt"
	"sort"

	"github.com/jonathan/keyword-insights/internal/relevance"
	"github.com/jonathan/keyword-insights/internal/types"
)

// Per-source contribution caps for the merged action list.
const (
	maxQuickWinActions        = 5
	maxHiddenGemActions       = 3
	maxCannibalizationActions = 3
	maxCategoryActions        = 3
	maxCompetitorActions      = 2
	maxMonitorActions         = 2

	minActionImpact = 100

	monitorPriority = 20.0
)

// buildActionList merges the detector outputs into one ranked list. The
// priority bands overlap across sources so a very strong quick win can
// outrank a mediocre content gap.
func buildActionList(result *types.ActionableInsights, brandCtx *types.BrandContext) []types.ActionItem {
	actions := make([]types.ActionItem, 0)

	for i, win := range result.QuickWins {
		if i >= maxQuickWinActions {
			break
		}
		actions = append(actions, annotate(types.ActionItem{
			Type:        types.ActionQuickWin,
			Title:       fmt.Sprintf("Push %q from position %d to %d", win.Keyword, win.CurrentPosition, win.TargetPosition),
			Description: fmt.Sprintf("%s effort, about %d extra clicks per month.", win.Effort, win.ClickUplift),
			Priority:    capPriority(50+float64(win.ClickUplift)/50, 100),
		}, win.Keyword, brandCtx))
	}

	for i, gem := range result.HiddenGems {
		if i >= maxHiddenGemActions {
			break
		}
		actions = append(actions, annotate(types.ActionItem{
			Type:        types.ActionHiddenGem,
			Title:       fmt.Sprintf("Capture %q before competitors do", gem.Keyword),
			Description: fmt.Sprintf("%s opportunity: %d monthly searches at difficulty %.0f.", gem.OpportunityType, gem.SearchVolume, gem.Difficulty),
			Priority:    capPriority(45+float64(gem.SearchVolume)/500, 90),
		}, gem.Keyword, brandCtx))
	}

	count := 0
	for _, issue := range result.CannibalizationIssues {
		if count >= maxCannibalizationActions {
			break
		}
		if issue.ImpactScore < minActionImpact {
			continue
		}
		count++
		actions = append(actions, annotate(types.ActionItem{
			Type:        types.ActionCannibalization,
			Title:       fmt.Sprintf("Resolve cannibalization on %q (%s)", issue.Keyword, issue.Recommendation),
			Description: fmt.Sprintf("%d pages compete for this keyword, costing about %.0f visible clicks.", len(issue.CompetingURLs), issue.ImpactScore),
			Priority:    capPriority(40+issue.ImpactScore/100, 88),
		}, issue.Keyword, brandCtx))
	}

	for i, gap := range result.ContentGaps {
		if i >= maxCategoryActions {
			break
		}
		actions = append(actions, annotate(types.ActionItem{
			Type:        types.ActionBuildCategory,
			Title:       fmt.Sprintf("Build out content for %s", gap.Category),
			Description: fmt.Sprintf("%d weak keywords worth %d monthly searches; %d new pieces suggested.", gap.WeakKeywordCount, gap.WeakVolume, gap.SuggestedContentCount),
			Priority:    capPriority(40+float64(gap.WeakVolume)/1000, 95),
		}, gap.Category, brandCtx))
	}

	count = 0
	for _, competitor := range result.CompetitorStrengths {
		if count >= maxCompetitorActions {
			break
		}
		if competitor.TheyWin <= competitor.YouWin {
			continue
		}
		count++
		actions = append(actions, types.ActionItem{
			Type:        types.ActionDefend,
			Title:       fmt.Sprintf("Defend against %s", competitor.Competitor),
			Description: fmt.Sprintf("Estimated %.1f%% share of voice and ahead on %d of your weaker keywords (modeled estimate).", competitor.EstimatedSOV, competitor.TheyWin),
			Priority:    capPriority(55+float64(competitor.TheyWin-competitor.YouWin)*2, 85),
		})
	}

	count = 0
	for _, entry := range result.CategoryBreakdown {
		if count >= maxMonitorActions {
			break
		}
		if entry.Status != types.CategoryLeading {
			continue
		}
		count++
		actions = append(actions, types.ActionItem{
			Type:        types.ActionMonitor,
			Title:       fmt.Sprintf("Monitor leading category %s", entry.Category),
			Description: fmt.Sprintf("Currently leading with %.1f%% share of voice; watch for slippage.", entry.Share),
			Priority:    monitorPriority,
		})
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Priority > actions[j].Priority
	})

	return actions
}

func capPriority(priority, ceiling float64) float64 {
	if priority > ceiling {
		return ceiling
	}
	return priority
}

// annotate marks an action as recommended when its subject matches the
// brand context.
func annotate(action types.ActionItem, subject string, brandCtx *types.BrandContext) types.ActionItem {
	if brandCtx != nil && relevance.MatchesContext(subject, brandCtx) {
		brand := brandCtx.BrandName
		if brand == "" {
			brand = "the brand"
		}
		action.IsRecommended = true
		action.RecommendedReason = fmt.Sprintf("Matches %s focus areas", brand)
	}
	return action
}
