package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/keyword-insights/internal/intent"
)

var classifyIntentCmd = &cobra.Command{
	Use:   "classify-intent [keywords...]",
	Short: "Classify search intent and funnel stage for keywords",
	Long:  "Classifies each keyword's search intent (informational, navigational, commercial, transactional) and maps it to a funnel stage. Accepts keywords as arguments or a ranked-keywords file via --ranked.",
	RunE:  runClassifyIntent,
}

var (
	classifyIntentRanked string
	classifyIntentOutput string
)

// intentResult is one row of the classify-intent output.
type intentResult struct {
	Keyword     string  `json:"keyword"`
	Intent      string  `json:"intent"`
	Probability float64 `json:"probability"`
	FunnelStage string  `json:"funnelStage"`
}

func init() {
	classifyIntentCmd.Flags().StringVarP(&classifyIntentRanked, "ranked", "r", "", "Path to ranked-keywords JSON file")
	classifyIntentCmd.Flags().StringVarP(&classifyIntentOutput, "out", "o", "", "Path to output JSON file (default: human-readable stdout)")

	rootCmd.AddCommand(classifyIntentCmd)
}

func runClassifyIntent(_ *cobra.Command, args []string) error {
	var keywords []string

	if classifyIntentRanked != "" {
		ranked, err := loadRankedKeywords(classifyIntentRanked)
		if err != nil {
			return err
		}
		for _, kw := range ranked {
			keywords = append(keywords, kw.Keyword)
		}
	}
	keywords = append(keywords, args...)

	if len(keywords) == 0 {
		return fmt.Errorf("no keywords given: pass them as arguments or via --ranked")
	}

	results := make([]intentResult, 0, len(keywords))
	for _, keyword := range keywords {
		info := intent.Classify(keyword)
		results = append(results, intentResult{
			Keyword:     keyword,
			Intent:      info.MainIntent,
			Probability: info.Probability,
			FunnelStage: info.FunnelStage,
		})
	}

	if classifyIntentOutput != "" {
		if err := writeJSONOutput(classifyIntentOutput, results); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Classified %d keywords to %s\n", len(results), classifyIntentOutput)
		return nil
	}

	for _, r := range results {
		_, _ = fmt.Fprintf(os.Stdout, "%-40s %-15s %.2f  %s\n", truncateKeyword(r.Keyword), r.Intent, r.Probability, r.FunnelStage)
	}
	return nil
}

func truncateKeyword(s string) string {
	if len(s) <= 40 {
		return s
	}
	return s[:37] + "..."
}
