// Package prompts embeds the LLM prompt templates used by the summarizer
// and exposes them behind typed keys.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// Key identifies one embedded prompt template.
type Key string

// Prompt keys known to the summarizer.
const (
	InsightsSummary Key = "insights-summary"
	ActionList      Key = "action-list"
)

//go:embed summary.json
var summaryJSON []byte

var (
	parseOnce sync.Once
	templates map[Key]string
	parseErr  error
)

// MissingPromptError indicates a key absent from the embedded templates.
type MissingPromptError struct {
	Key Key
}

func (e *MissingPromptError) Error() string {
	return fmt.Sprintf("prompt %q not found in embedded templates", string(e.Key))
}

// Get returns the raw template for a key.
func Get(key Key) (string, error) {
	parseOnce.Do(parse)
	if parseErr != nil {
		return "", parseErr
	}

	template, exists := templates[key]
	if !exists {
		return "", &MissingPromptError{Key: key}
	}
	return template, nil
}

// MustGet returns the template for a key, panicking if it is missing.
// Use this only for keys declared in this package.
func MustGet(key Key) string {
	template, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Render fills a template's {{.Name}} placeholders from vars.
func Render(key Key, vars map[string]string) (string, error) {
	template, err := Get(key)
	if err != nil {
		return "", err
	}

	result := template
	for name, value := range vars {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", name), value)
	}
	return result, nil
}

func parse() {
	if err := json.Unmarshal(summaryJSON, &templates); err != nil {
		parseErr = fmt.Errorf("failed to parse embedded prompt templates: %w", err)
	}
}
