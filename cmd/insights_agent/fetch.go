package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/keyword-insights/internal/searchdata"
	"github.com/jonathan/keyword-insights/internal/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch keyword datasets from a search data provider",
	Long:  "Fetches ranked keywords for a domain (and optionally brand-search volumes for a set of brand names) from a configured search data API, and writes an analyze-ready dataset.",
	RunE:  runFetch,
}

var (
	fetchDomain  string
	fetchBrands  []string
	fetchLimit   int
	fetchBaseURL string
	fetchOutput  string
)

func init() {
	fetchCmd.Flags().StringVarP(&fetchDomain, "domain", "d", "", "Domain to fetch ranked keywords for (required)")
	fetchCmd.Flags().StringSliceVar(&fetchBrands, "brands", nil, "Brand names to fetch search volumes for (own brand first)")
	fetchCmd.Flags().IntVar(&fetchLimit, "limit", 0, "Maximum ranked keywords to fetch (0 = provider default)")
	fetchCmd.Flags().StringVar(&fetchBaseURL, "base-url", "", "Search data API base URL (default: SEARCH_API_URL env)")
	fetchCmd.Flags().StringVarP(&fetchOutput, "out", "o", "", "Path to output request JSON file (default: stdout)")

	if err := fetchCmd.MarkFlagRequired("domain"); err != nil {
		panic(fmt.Sprintf("failed to mark domain flag as required: %v", err))
	}

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(_ *cobra.Command, _ []string) error {
	baseURL := fetchBaseURL
	if baseURL == "" {
		baseURL = os.Getenv("SEARCH_API_URL")
	}
	if baseURL == "" {
		return fmt.Errorf("a search data API base URL is required (--base-url or SEARCH_API_URL)")
	}

	client, err := searchdata.NewClient(&searchdata.Options{
		BaseURL: baseURL,
		APIKey:  os.Getenv("SEARCH_API_KEY"),
	})
	if err != nil {
		return err
	}

	ctx := context.Background()

	req := types.AnalysisRequest{}
	if req.RankedKeywords, err = client.FetchRankedKeywords(ctx, fetchDomain, fetchLimit); err != nil {
		return err
	}
	if len(fetchBrands) > 0 {
		if req.BrandKeywords, err = client.FetchBrandKeywords(ctx, fetchBrands); err != nil {
			return err
		}
	}

	if err := writeJSONOutput(fetchOutput, req); err != nil {
		return err
	}
	if fetchOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Fetched %d ranked and %d brand keywords to %s\n",
			len(req.RankedKeywords), len(req.BrandKeywords), fetchOutput)
	}
	return nil
}
