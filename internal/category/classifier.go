// Package category assigns a topical category to a keyword when the
// upstream data source did not supply one.
package category

import (
	"regexp"
	"strings"

	"github.com/jonathan/keyword-insights/internal/types"
)

// DefaultCategory is assigned when no rule matches.
const DefaultCategory = "Other"

// Rule pairs a category label with a case-insensitive pattern over the
// keyword text. Rules are evaluated in order; the first match wins.
type Rule struct {
	Category string
	Pattern  *regexp.Regexp
}

// rules is the ordered classification cascade. More specific rules come
// first so that e.g. "best tire prices" lands in Pricing & Offers rather
// than a broader bucket.
var rules = []Rule{
	{"Pricing & Offers", regexp.MustCompile(`(?i)\b(price|prices|pricing|cost|cheap|deal|deals|discount|offer|offers|sale|coupon)\b`)},
	{"Comparisons", regexp.MustCompile(`(?i)\b(vs|versus|compare|comparison|alternative|alternatives)\b`)},
	{"Reviews & Ratings", regexp.MustCompile(`(?i)\b(review|reviews|rating|ratings|testimonial|opinion)\b`)},
	{"How-To & Guides", regexp.MustCompile(`(?i)\b(how to|guide|guides|tutorial|tips|checklist|diy|step by step)\b`)},
	{"Buying", regexp.MustCompile(`(?i)\b(buy|buying|shop|order|purchase|for sale)\b`)},
	{"Local Search", regexp.MustCompile(`(?i)\b(near me|nearby|in my area|local)\b`)},
	{"Seasonal", regexp.MustCompile(`(?i)\b(winter|summer|spring|autumn|fall|christmas|holiday|seasonal)\b`)},
	{"Careers", regexp.MustCompile(`(?i)\b(job|jobs|career|careers|salary|hiring|vacancy|vacancies|internship)\b`)},
	{"Support & Account", regexp.MustCompile(`(?i)\b(login|log in|sign in|account|contact|support|warranty|return|returns|faq)\b`)},
	{"Sizing & Specs", regexp.MustCompile(`(?i)\b(size|sizes|sizing|dimensions|specs|specifications|chart)\b`)},
}

// Classify assigns a category to a keyword. It is total and deterministic:
// every keyword yields exactly one category, unmatched keywords fall back
// to DefaultCategory.
func Classify(keyword string) string {
	text := strings.TrimSpace(keyword)
	if text == "" {
		return DefaultCategory
	}
	for _, rule := range rules {
		if rule.Pattern.MatchString(text) {
			return rule.Category
		}
	}
	return DefaultCategory
}

// Resolve returns the record's own category when present, otherwise the
// classified one. The input record is never mutated.
func Resolve(kw types.RankedKeyword) string {
	if kw.Category != "" {
		return kw.Category
	}
	return Classify(kw.Keyword)
}

// Rules exposes the cascade for rule-by-rule audits and tests.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
