// Package relevance removes keywords that are off-topic noise for a brand
// before any downstream analysis runs. Without a brand context the filter
// is a no-op.
package relevance

import (
	"regexp"
	"strings"

	"github.com/jonathan/keyword-insights/internal/category"
	"github.com/jonathan/keyword-insights/internal/types"
)

// offTopicPatterns are generic noise queries excluded regardless of brand
// context terms: job hunting, account navigation, and news/finance chatter.
var offTopicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(job|jobs|career|careers|salary|salaries|hiring|vacancy|vacancies|internship|recruit|recruiting)\b`),
	regexp.MustCompile(`(?i)\b(login|log in|sign in|sign up|logout|account|password|portal|my account)\b`),
	regexp.MustCompile(`(?i)\b(news|stock|stocks|share price|stock price|ipo|market cap|quarterly report|earnings)\b`),
}

// industryTerms expands an industry or vertical label into keyword terms
// that signal topical relevance. Static configuration data; referenced,
// never mutated.
var industryTerms = map[string][]string{
	"automotive": {"tire", "tyre", "wheel", "rim", "car", "auto", "vehicle", "suv", "truck", "garage", "brake", "engine"},
	"cosmetics":  {"skin", "skincare", "makeup", "lipstick", "mascara", "cream", "lotion", "serum", "shampoo", "natural", "organic", "vegan"},
	"beauty":     {"skin", "skincare", "makeup", "lipstick", "mascara", "cream", "lotion", "serum", "shampoo", "hair", "nail"},
	"finance":    {"loan", "bank", "banking", "credit", "insurance", "invest", "investment", "mortgage", "savings", "interest"},
	"software":   {"software", "app", "tool", "platform", "api", "integration", "automation", "cloud", "saas"},
	"ecommerce":  {"shop", "store", "buy", "order", "delivery", "shipping", "return", "checkout"},
	"travel":     {"hotel", "flight", "booking", "trip", "vacation", "tour", "resort", "itinerary"},
	"food":       {"recipe", "restaurant", "menu", "ingredient", "meal", "snack", "drink", "organic"},
	"fitness":    {"workout", "gym", "training", "exercise", "protein", "yoga", "running"},
	"fashion":    {"dress", "shoes", "jacket", "outfit", "style", "wear", "clothing", "accessories"},
}

// Filter returns the subset of rankedKeywords relevant to the brand
// context. The input slice is never modified; records pass through
// unchanged. A nil context passes every keyword.
func Filter(rankedKeywords []types.RankedKeyword, brandCtx *types.BrandContext) []types.RankedKeyword {
	if brandCtx == nil {
		out := make([]types.RankedKeyword, len(rankedKeywords))
		copy(out, rankedKeywords)
		return out
	}

	terms := expandTerms(brandCtx)
	relevant := make([]types.RankedKeyword, 0, len(rankedKeywords))
	for _, kw := range rankedKeywords {
		if IsRelevant(kw, terms) {
			relevant = append(relevant, kw)
		}
	}
	return relevant
}

// IsRelevant reports whether a keyword survives the off-topic patterns and
// intersects at least one brand term. An empty term set keeps everything
// that is not off-topic noise.
func IsRelevant(kw types.RankedKeyword, terms []string) bool {
	text := strings.ToLower(kw.Keyword)
	for _, pattern := range offTopicPatterns {
		if pattern.MatchString(text) {
			return false
		}
	}
	if len(terms) == 0 {
		return true
	}

	haystack := text + " " + strings.ToLower(category.Resolve(kw))
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}

// MatchesContext reports whether a keyword text touches any brand context
// term. Detectors use this to mark results as recommended.
func MatchesContext(keyword string, brandCtx *types.BrandContext) bool {
	if brandCtx == nil {
		return false
	}
	text := strings.ToLower(keyword)
	for _, term := range expandTerms(brandCtx) {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// expandTerms merges the explicit context terms with the industry and
// vertical expansion tables.
func expandTerms(brandCtx *types.BrandContext) []string {
	terms := brandCtx.Terms()
	seen := make(map[string]bool, len(terms))
	for _, t := range terms {
		seen[t] = true
	}
	for _, label := range []string{brandCtx.Industry, brandCtx.Vertical} {
		key := strings.ToLower(strings.TrimSpace(label))
		for _, t := range industryTerms[key] {
			if !seen[t] {
				seen[t] = true
				terms = append(terms, t)
			}
		}
	}
	return terms
}
