package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/keyword-insights/internal/config"
	"github.com/jonathan/keyword-insights/internal/insights"
	"github.com/jonathan/keyword-insights/internal/llm"
	"github.com/jonathan/keyword-insights/internal/observability"
	"github.com/jonathan/keyword-insights/internal/schemas"
	"github.com/jonathan/keyword-insights/internal/summary"
	"github.com/jonathan/keyword-insights/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full insights analysis over a keyword dataset",
	Long:  "Runs every detector over a ranked-keywords export plus optional brand keywords and brand context, producing an ActionableInsights JSON with a prioritized action list.",
	RunE:  runAnalyze,
}

var (
	analyzeRanked       string
	analyzeBrand        string
	analyzeContext      string
	analyzeOutput       string
	analyzeConfigPath   string
	analyzeSummarize    bool
	analyzeVerbose      bool
	analyzeValidate     bool
	analyzeMinVolume    int
	analyzeGemMinVolume int
	analyzeGemMaxDiff   float64
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeRanked, "ranked", "r", "", "Path to ranked-keywords JSON file (required unless set in config)")
	analyzeCmd.Flags().StringVarP(&analyzeBrand, "brand", "b", "", "Path to brand-keywords JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeContext, "context", "c", "", "Path to brand-context JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output insights JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeSummarize, "summarize", false, "Generate a prose summary via Gemini (requires GEMINI_API_KEY)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted insight breakdowns")
	analyzeCmd.Flags().BoolVar(&analyzeValidate, "validate", false, "Validate the assembled dataset against the request schema before analysis")
	analyzeCmd.Flags().IntVar(&analyzeMinVolume, "quick-win-min-volume", 0, "Minimum search volume for quick wins (default 100)")
	analyzeCmd.Flags().IntVar(&analyzeGemMinVolume, "gem-min-volume", 0, "Minimum search volume for hidden gems (default 200)")
	analyzeCmd.Flags().Float64Var(&analyzeGemMaxDiff, "gem-max-difficulty", 0, "Maximum difficulty for hidden gems (default 40)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Ranked:            analyzeRanked,
		Brand:             analyzeBrand,
		Context:           analyzeContext,
		QuickWinMinVolume: analyzeMinVolume,
		GemMinVolume:      analyzeGemMinVolume,
		GemMaxDifficulty:  analyzeGemMaxDiff,
		Summarize:         analyzeSummarize,
		Verbose:           analyzeVerbose,
	}

	if analyzeConfigPath != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Ranked == "" {
		return fmt.Errorf("a ranked-keywords file is required (--ranked or config)")
	}

	req := types.AnalysisRequest{}
	var err error
	if req.RankedKeywords, err = loadRankedKeywords(cfg.Ranked); err != nil {
		return err
	}
	if cfg.Brand != "" {
		if req.BrandKeywords, err = loadBrandKeywords(cfg.Brand); err != nil {
			return err
		}
	}
	if cfg.Context != "" {
		if req.BrandContext, err = loadBrandContext(cfg.Context); err != nil {
			return err
		}
	}

	if analyzeValidate {
		raw, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("failed to marshal request for validation: %w", err)
		}
		if err := schemas.ValidateAnalysisRequest(raw); err != nil {
			return fmt.Errorf("dataset validation failed: %w", err)
		}
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid dataset: %w", err)
	}

	opts := insights.Options{
		QuickWinMinVolume: cfg.QuickWinMinVolume,
		GemMinVolume:      cfg.GemMinVolume,
		GemMaxDifficulty:  cfg.GemMaxDifficulty,
	}

	ctx := context.Background()
	result, err := insights.GenerateInsights(ctx, req.RankedKeywords, req.BrandKeywords, req.BrandContext, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintQuickWins(result.QuickWins)
		printer.PrintHiddenGems(result.HiddenGems)
		printer.PrintCategoryBreakdown(result.CategoryBreakdown)
		printer.PrintCompetitors(result.CompetitorStrengths)
		printer.PrintActionList(result.ActionList)
		printer.PrintSummary(result.Summary)
	}

	if err := writeJSONOutput(analyzeOutput, result); err != nil {
		return err
	}

	if cfg.Summarize {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable is required for --summarize")
		}

		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()

		brand := ""
		if req.BrandContext != nil {
			brand = req.BrandContext.BrandName
		}
		text, err := summary.NewSummarizer(client).Summarize(ctx, brand, result)
		if err != nil {
			return fmt.Errorf("summary generation failed: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "\n%s\n", text)
	}

	if analyzeOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %d actions for %d keywords to %s\n",
			len(result.ActionList), len(req.RankedKeywords), analyzeOutput)
	}

	return nil
}
