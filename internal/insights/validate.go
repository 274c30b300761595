package insights

import (
	"strings"

	"github.com/jonathan/keyword-insights/internal/types"
)

// ValidateInputs checks the caller's side of the contract before any
// derived metric is computed. The first violation found is returned.
func ValidateInputs(rankedKeywords []types.RankedKeyword, brandKeywords []types.BrandKeyword) error {
	for i, kw := range rankedKeywords {
		if strings.TrimSpace(kw.Keyword) == "" {
			return &ContractViolationError{Record: "rankedKeywords", Index: i, Message: "keyword text is empty"}
		}
		if kw.SearchVolume < 0 {
			return &ContractViolationError{Record: "rankedKeywords", Index: i, Message: "search volume is negative"}
		}
		if kw.Position < 1 || kw.Position > 100 {
			return &ContractViolationError{Record: "rankedKeywords", Index: i, Message: "position is outside 1-100"}
		}
		if kw.KeywordDifficulty != nil && (*kw.KeywordDifficulty < 0 || *kw.KeywordDifficulty > 100) {
			return &ContractViolationError{Record: "rankedKeywords", Index: i, Message: "keyword difficulty is outside 0-100"}
		}
	}
	for i, kw := range brandKeywords {
		if strings.TrimSpace(kw.Keyword) == "" {
			return &ContractViolationError{Record: "brandKeywords", Index: i, Message: "keyword text is empty"}
		}
		if kw.SearchVolume < 0 {
			return &ContractViolationError{Record: "brandKeywords", Index: i, Message: "search volume is negative"}
		}
	}
	return nil
}
