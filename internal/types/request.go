package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalysisOptions toggles the optional glue around the engine.
type AnalysisOptions struct {
	Summarize bool `json:"summarize,omitempty"`
	Persist   bool `json:"persist,omitempty"`
}

// AnalysisRequest is the boundary payload accepted by the HTTP API and the
// CLI. Records are expected pre-validated by the upstream collaborator; the
// tags here enforce the contract (fail fast, no silent clamping).
type AnalysisRequest struct {
	RankedKeywords []RankedKeyword `json:"rankedKeywords" validate:"required,min=1,dive"`
	BrandKeywords  []BrandKeyword  `json:"brandKeywords" validate:"dive"`
	BrandContext   *BrandContext   `json:"brandContext,omitempty"`
	Options        AnalysisOptions `json:"options,omitempty"`
}

// Validate validates the AnalysisRequest using the validator.
func (r *AnalysisRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
