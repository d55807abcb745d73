package response_models

import "talentflow/internal/assessment"

// BuilderResponse reports the outcome of a builder edit. Applied is false
// when the targeted section, question or option did not exist.
type BuilderResponse struct {
	Applied    bool                  `json:"applied"`
	ID         string                `json:"id,omitempty"`
	Assessment assessment.Assessment `json:"assessment"`
}

type VisibilityResponse struct {
	VisibleQuestionIDs []string `json:"visibleQuestionIds"`
}
