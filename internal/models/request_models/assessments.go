package request_models

import (
	"encoding/json"

	"talentflow/internal/assessment"
)

type UpsertAssessmentRequest struct {
	Title    string               `json:"title"`
	Sections []assessment.Section `json:"sections"`
}

type UpdateOptionRequest struct {
	Value *string `json:"value" binding:"required"`
}

// AnswerItem keeps the raw answer so it can be decoded against the type of
// its question.
type AnswerItem struct {
	QuestionID string          `json:"questionId" binding:"required"`
	Answer     json.RawMessage `json:"answer"`
}

type VisibilityRequest struct {
	Responses []AnswerItem `json:"responses" binding:"dive"`
}

type SubmitAssessmentRequest struct {
	CandidateID  string       `json:"candidateId" binding:"required"`
	AssessmentID string       `json:"assessmentId"`
	Responses    []AnswerItem `json:"responses" binding:"dive"`
}

func RawAnswers(items []AnswerItem) map[string]json.RawMessage {
	raw := make(map[string]json.RawMessage, len(items))
	for _, item := range items {
		raw[item.QuestionID] = item.Answer
	}
	return raw
}
