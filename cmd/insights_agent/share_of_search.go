package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/keyword-insights/internal/visibility"
)

var shareOfSearchCmd = &cobra.Command{
	Use:   "share-of-search",
	Short: "Compute share of search, share of voice, and the growth gap",
	Long:  "Computes the brand's share of search from brand-keyword volumes, and when a ranked-keywords file is also given, the click-weighted share of voice and the SOV-SOS growth gap classification.",
	RunE:  runShareOfSearch,
}

var (
	sosBrand  string
	sosRanked string
	sosOutput string
)

// shareReport is the share-of-search command output.
type shareReport struct {
	ShareOfSearch visibility.ShareOfSearch `json:"shareOfSearch"`
	ShareOfVoice  *visibility.ShareOfVoice `json:"shareOfVoice,omitempty"`
	GrowthGap     *visibility.GrowthGap    `json:"growthGap,omitempty"`
}

func init() {
	shareOfSearchCmd.Flags().StringVarP(&sosBrand, "brand", "b", "", "Path to brand-keywords JSON file (required)")
	shareOfSearchCmd.Flags().StringVarP(&sosRanked, "ranked", "r", "", "Path to ranked-keywords JSON file (enables SOV and growth gap)")
	shareOfSearchCmd.Flags().StringVarP(&sosOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	if err := shareOfSearchCmd.MarkFlagRequired("brand"); err != nil {
		panic(fmt.Sprintf("failed to mark brand flag as required: %v", err))
	}

	rootCmd.AddCommand(shareOfSearchCmd)
}

func runShareOfSearch(_ *cobra.Command, _ []string) error {
	brandKeywords, err := loadBrandKeywords(sosBrand)
	if err != nil {
		return err
	}

	report := shareReport{
		ShareOfSearch: visibility.CalculateSOS(brandKeywords),
	}

	if sosRanked != "" {
		rankedKeywords, err := loadRankedKeywords(sosRanked)
		if err != nil {
			return err
		}
		sov := visibility.CalculateSOV(rankedKeywords)
		gap := visibility.CalculateGrowthGap(report.ShareOfSearch.Share, sov.Share)
		report.ShareOfVoice = &sov
		report.GrowthGap = &gap
	}

	if err := writeJSONOutput(sosOutput, report); err != nil {
		return err
	}
	if sosOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Share report written to %s\n", sosOutput)
	}
	return nil
}
