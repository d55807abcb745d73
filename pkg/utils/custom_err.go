package utils

import "errors"

var (
	ErrJobNotFound        = errors.New("job not found")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrResponseNotFound   = errors.New("assessment response not found")
	ErrInvalidReorder     = errors.New("invalid reorder request")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrInvalidConditional = errors.New("invalid conditional rule")
	ErrInvalidAnswer      = errors.New("invalid answer")
	ErrInvalidStage       = errors.New("invalid stage")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAuthNotConfigured  = errors.New("auth secret is not configured")
	ErrDatabaseError      = errors.New("database error")
)
