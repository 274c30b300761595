// Package types provides type definitions for structured data used throughout the keyword-insights system.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Search intent labels assigned by the intent classifier.
const (
	IntentNavigational  = "navigational"
	IntentInformational = "informational"
	IntentCommercial    = "commercial"
	IntentTransactional = "transactional"
)

// Funnel stages mapped 1:1 from search intent.
const (
	StageAwareness     = "awareness"
	StageConsideration = "consideration"
	StageDecision      = "decision"
	StageRetention     = "retention"
)

// SearchIntentInfo describes the classified search intent of a keyword.
type SearchIntentInfo struct {
	MainIntent  string  `json:"mainIntent"`
	Probability float64 `json:"probability"`
	FunnelStage string  `json:"funnelStage"`
}

// RankedKeyword is a keyword the brand currently ranks for, as delivered by
// the upstream search-data collaborator. Records are immutable once
// produced; the engine derives new records instead of mutating inputs.
type RankedKeyword struct {
	Keyword           string            `json:"keyword" validate:"required"`
	SearchVolume      int               `json:"searchVolume" validate:"min=0"`
	Position          int               `json:"position" validate:"min=1,max=100"`
	URL               string            `json:"url,omitempty"`
	Category          string            `json:"category,omitempty"`
	KeywordDifficulty *float64          `json:"keywordDifficulty,omitempty" validate:"omitempty,min=0,max=100"`
	Trend             *float64          `json:"trend,omitempty"`
	SearchIntent      *SearchIntentInfo `json:"searchIntent,omitempty"`
}

// BrandKeyword is a brand-name search term. The set of brand keywords
// partitions into own-brand and competitor terms; competitor identity is
// inferred from the first word of the keyword, lower-cased.
type BrandKeyword struct {
	Keyword      string `json:"keyword" validate:"required"`
	SearchVolume int    `json:"searchVolume" validate:"min=0"`
	IsOwnBrand   bool   `json:"isOwnBrand"`
}

// BrandContext carries optional brand profile information. It is used only
// for relevance filtering and for labeling recommendations; the numeric
// calculations never require it.
type BrandContext struct {
	BrandName         string   `json:"brandName"`
	Industry          string   `json:"industry"`
	Vertical          string   `json:"vertical"`
	ProductCategories []string `json:"productCategories,omitempty"`
	KeyStrengths      []string `json:"keyStrengths,omitempty"`
	SEOFocus          []string `json:"seoFocus,omitempty"`
}

// Terms collects every non-empty context term (focus terms, product
// categories, strengths, industry, vertical), lower-cased.
func (c *BrandContext) Terms() []string {
	if c == nil {
		return nil
	}
	var terms []string
	add := func(values ...string) {
		for _, v := range values {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != "" {
				terms = append(terms, v)
			}
		}
	}
	add(c.SEOFocus...)
	add(c.ProductCategories...)
	add(c.KeyStrengths...)
	add(c.Industry, c.Vertical)
	return terms
}

// Validate validates the RankedKeyword using the validator.
func (k *RankedKeyword) Validate() error {
	validate := validator.New()
	return validate.Struct(k)
}

// Validate validates the BrandKeyword using the validator.
func (k *BrandKeyword) Validate() error {
	validate := validator.New()
	return validate.Struct(k)
}
