// Package summary turns a full insights report into a short prose briefing
// using the LLM client. The engine itself never touches this package; it is
// an optional post-processing step driven by the CLI and the server.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/keyword-insights/internal/llm"
	"github.com/jonathan/keyword-insights/internal/prompts"
	"github.com/jonathan/keyword-insights/internal/types"
)

// Summarizer generates executive summaries of actionable insights.
type Summarizer struct {
	client llm.Client
}

// NewSummarizer creates a summarizer backed by the given LLM client.
func NewSummarizer(client llm.Client) *Summarizer {
	return &Summarizer{client: client}
}

// BuildPrompt renders the summary prompt for the given insights. It is
// deterministic so callers can log or inspect the exact prompt sent to the
// model.
func BuildPrompt(brand string, insights *types.ActionableInsights) (string, error) {
	if insights == nil {
		return "", fmt.Errorf("insights cannot be nil")
	}

	data, err := json.MarshalIndent(insights, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal insights: %w", err)
	}

	if brand == "" {
		brand = "the brand"
	}

	prompt, err := prompts.Render(prompts.InsightsSummary, map[string]string{
		"Brand":    brand,
		"Insights": string(data),
	})
	if err != nil {
		return "", fmt.Errorf("failed to load summary prompt: %w", err)
	}
	return prompt, nil
}

// Summarize produces a prose summary of the insights report.
func (s *Summarizer) Summarize(ctx context.Context, brand string, insights *types.ActionableInsights) (string, error) {
	prompt, err := BuildPrompt(brand, insights)
	if err != nil {
		return "", err
	}

	text, err := s.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("summary generation returned empty response")
	}
	return text, nil
}

// SummarizeActions produces a short prose walkthrough of the prioritized
// action list only, using the lite model tier.
func (s *Summarizer) SummarizeActions(ctx context.Context, actions []types.ActionItem) (string, error) {
	data, err := json.MarshalIndent(actions, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal actions: %w", err)
	}

	prompt, err := prompts.Render(prompts.ActionList, map[string]string{
		"Actions": string(data),
	})
	if err != nil {
		return "", fmt.Errorf("failed to load action prompt: %w", err)
	}

	text, err := s.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("action summary generation failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}
