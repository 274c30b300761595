package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/keyword-insights/internal/llm"
	"github.com/jonathan/keyword-insights/internal/summary"
	"github.com/jonathan/keyword-insights/internal/types"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Turn a saved insights JSON into a prose summary",
	Long:  "Reads an ActionableInsights JSON (as produced by analyze) and generates an executive prose summary via Gemini. Requires GEMINI_API_KEY.",
	RunE:  runSummarize,
}

var (
	summarizeInsights string
	summarizeBrand    string
	summarizeOutput   string
)

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeInsights, "insights", "i", "", "Path to insights JSON file (required)")
	summarizeCmd.Flags().StringVar(&summarizeBrand, "brand-name", "", "Brand name used in the summary")
	summarizeCmd.Flags().StringVarP(&summarizeOutput, "out", "o", "", "Path to output text file (default: stdout)")

	if err := summarizeCmd.MarkFlagRequired("insights"); err != nil {
		panic(fmt.Sprintf("failed to mark insights flag as required: %v", err))
	}

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(summarizeInsights)
	if err != nil {
		return fmt.Errorf("failed to read insights file %s: %w", summarizeInsights, err)
	}

	var result types.ActionableInsights
	if err := json.Unmarshal(content, &result); err != nil {
		return fmt.Errorf("failed to unmarshal insights JSON: %w", err)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	text, err := summary.NewSummarizer(client).Summarize(ctx, summarizeBrand, &result)
	if err != nil {
		return fmt.Errorf("summary generation failed: %w", err)
	}

	if summarizeOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, text)
		return nil
	}
	if err := os.WriteFile(summarizeOutput, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write summary to %s: %w", summarizeOutput, err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Summary written to %s\n", summarizeOutput)
	return nil
}
