package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/keyword-insights/internal/category"
	"github.com/jonathan/keyword-insights/internal/quickwins"
)

var quickWinsCmd = &cobra.Command{
	Use:   "quick-wins",
	Short: "Detect quick-win keywords in a ranked-keywords export",
	Long:  "Scans a ranked-keywords JSON file for keywords ranked 4-20 where a realistic position improvement yields meaningful extra clicks, sorted by click uplift.",
	RunE:  runQuickWins,
}

var (
	quickWinsRanked    string
	quickWinsOutput    string
	quickWinsMinVolume int
)

func init() {
	quickWinsCmd.Flags().StringVarP(&quickWinsRanked, "ranked", "r", "", "Path to ranked-keywords JSON file (required)")
	quickWinsCmd.Flags().StringVarP(&quickWinsOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	quickWinsCmd.Flags().IntVar(&quickWinsMinVolume, "min-volume", 0, "Minimum search volume (default 100)")

	if err := quickWinsCmd.MarkFlagRequired("ranked"); err != nil {
		panic(fmt.Sprintf("failed to mark ranked flag as required: %v", err))
	}

	rootCmd.AddCommand(quickWinsCmd)
}

func runQuickWins(_ *cobra.Command, _ []string) error {
	keywords, err := loadRankedKeywords(quickWinsRanked)
	if err != nil {
		return err
	}

	// Fill in categories so the output is self-describing.
	for i := range keywords {
		if keywords[i].Category == "" {
			keywords[i].Category = category.Classify(keywords[i].Keyword)
		}
	}

	wins := quickwins.Detect(keywords, quickWinsMinVolume)

	if err := writeJSONOutput(quickWinsOutput, wins); err != nil {
		return err
	}
	if quickWinsOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Found %d quick wins in %d keywords, written to %s\n",
			len(wins), len(keywords), quickWinsOutput)
	}
	return nil
}
