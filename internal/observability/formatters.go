// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/keyword-insights/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQuickWins outputs the detected quick-win opportunities.
func (p *Printer) PrintQuickWins(wins []types.QuickWinOpportunity) {
	if len(wins) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d quick wins:\n\n", len(wins)))

	count := min(len(wins), maxItemsToShow)
	for i := 0; i < count; i++ {
		win := wins[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, truncate(win.Keyword, 45)))
		sb.WriteString(fmt.Sprintf("    #%d → #%d, +%d clicks/mo (%s effort)\n",
			win.CurrentPosition, win.TargetPosition, win.ClickUplift, win.Effort))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(wins) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(wins)-maxItemsToShow))
	}

	p.printBox("QUICK WINS", sb.String())
}

// PrintHiddenGems outputs the detected hidden gems.
func (p *Printer) PrintHiddenGems(gems []types.HiddenGem) {
	if len(gems) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d hidden gems:\n\n", len(gems)))

	count := min(len(gems), maxItemsToShow)
	for i := 0; i < count; i++ {
		gem := gems[i]
		sb.WriteString(fmt.Sprintf("• %s\n", truncate(gem.Keyword, 47)))
		difficulty := fmt.Sprintf("%.0f", gem.Difficulty)
		if gem.DifficultyEstimated {
			difficulty += "~"
		}
		sb.WriteString(fmt.Sprintf("  vol %d, difficulty %s, %s\n",
			gem.SearchVolume, difficulty, gem.OpportunityType))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(gems) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(gems)-maxItemsToShow))
	}

	p.printBox("HIDDEN GEMS", sb.String())
}

// PrintCategoryBreakdown outputs the per-category share of voice table.
func (p *Printer) PrintCategoryBreakdown(breakdown []types.CategorySOV) {
	if len(breakdown) == 0 {
		return
	}

	var sb strings.Builder
	for i, cat := range breakdown {
		marker := statusMarker(cat.Status)
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, truncate(cat.Category, 45)))
		sb.WriteString(fmt.Sprintf("  %d keywords, %.1f%% share, avg pos %.1f\n",
			cat.KeywordCount, cat.Share, cat.AvgPosition))
		if i < len(breakdown)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CATEGORY SHARE OF VOICE", sb.String())
}

// PrintCompetitors outputs the estimated competitor strength profiles.
func (p *Printer) PrintCompetitors(competitors []types.CompetitorStrength) {
	if len(competitors) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString("All figures are modeled estimates.\n\n")

	for i, c := range competitors {
		sb.WriteString(fmt.Sprintf("• %s\n", truncate(c.Competitor, 47)))
		sb.WriteString(fmt.Sprintf("  SOV %.1f%%, win %d / lose %d / tie %d\n",
			c.EstimatedSOV, c.YouWin, c.TheyWin, c.Ties))
		if i < len(competitors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("COMPETITOR LANDSCAPE (estimated)", sb.String())
}

// PrintActionList outputs the prioritized action list.
func (p *Printer) PrintActionList(actions []types.ActionItem) {
	if len(actions) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO ACTIONS GENERATED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	count := min(len(actions), 10)
	for i := 0; i < count; i++ {
		action := actions[i]
		star := " "
		if action.IsRecommended {
			star = "★"
		}
		sb.WriteString(fmt.Sprintf("%s %2.0f  %s\n", star, action.Priority, truncate(action.Title, 45)))
	}

	if len(actions) > 10 {
		sb.WriteString(fmt.Sprintf("\n... and %d more actions", len(actions)-10))
	}

	p.printBox("PRIORITIZED ACTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the roll-up statistics for a run.
func (p *Printer) PrintSummary(summary types.InsightsSummary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Quick win potential:  +%d clicks/mo\n", summary.TotalQuickWinPotential))
	sb.WriteString(fmt.Sprintf("Hidden gems:          %d\n", summary.HiddenGemCount))
	sb.WriteString(fmt.Sprintf("Cannibalization:      %d issues\n", summary.CannibalizationCount))
	sb.WriteString(fmt.Sprintf("Categories:           %d strong, %d weak\n", summary.StrongCategories, summary.WeakCategories))
	if !summary.DifficultyDataUsed {
		sb.WriteString("Difficulty data:      inferred from positions\n")
	}
	if summary.TopAction != "" {
		sb.WriteString(fmt.Sprintf("\nTop action: %s", truncate(summary.TopAction, 43)))
	}

	p.printBox("RUN SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

func statusMarker(status string) string {
	switch status {
	case types.CategoryLeading:
		return "▲"
	case types.CategoryWeak:
		return "▽"
	default:
		return "•"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
