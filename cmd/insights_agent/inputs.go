package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/keyword-insights/internal/types"
)

// loadRankedKeywords reads and decodes a ranked-keywords JSON file.
func loadRankedKeywords(path string) ([]types.RankedKeyword, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ranked keywords file %s: %w", path, err)
	}

	var keywords []types.RankedKeyword
	if err := json.Unmarshal(content, &keywords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ranked keywords JSON: %w", err)
	}
	return keywords, nil
}

// loadBrandKeywords reads and decodes a brand-keywords JSON file.
func loadBrandKeywords(path string) ([]types.BrandKeyword, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brand keywords file %s: %w", path, err)
	}

	var keywords []types.BrandKeyword
	if err := json.Unmarshal(content, &keywords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal brand keywords JSON: %w", err)
	}
	return keywords, nil
}

// loadBrandContext reads and decodes a brand-context JSON file.
func loadBrandContext(path string) (*types.BrandContext, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brand context file %s: %w", path, err)
	}

	var brandCtx types.BrandContext
	if err := json.Unmarshal(content, &brandCtx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal brand context JSON: %w", err)
	}
	return &brandCtx, nil
}

// writeJSONOutput marshals v with indentation and writes it to path, creating
// parent directories as needed. An empty path writes to stdout.
func writeJSONOutput(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
