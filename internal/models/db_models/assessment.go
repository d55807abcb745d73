package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"talentflow/internal/assessment"
)

// AssessmentRecord stores one assessment definition per job. Sections are
// kept as a single JSON document.
type AssessmentRecord struct {
	BaseModel
	JobID    string `gorm:"not null;uniqueIndex"`
	Title    string
	Sections datatypes.JSONType[[]assessment.Section] `gorm:"type:jsonb"`
}

func (AssessmentRecord) TableName() string { return "assessments" }

func (r AssessmentRecord) ToDomain() assessment.Assessment {
	sections := r.Sections.Data()
	if sections == nil {
		sections = []assessment.Section{}
	}
	return assessment.Assessment{
		ID:        r.ID.String(),
		JobID:     r.JobID,
		Title:     r.Title,
		Sections:  sections,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func NewAssessmentRecord(a assessment.Assessment) AssessmentRecord {
	id, _ := uuid.Parse(a.ID)
	sections := a.Sections
	if sections == nil {
		sections = []assessment.Section{}
	}
	return AssessmentRecord{
		BaseModel: BaseModel{ID: id, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt},
		JobID:     a.JobID,
		Title:     a.Title,
		Sections:  datatypes.NewJSONType(sections),
	}
}

// ResponseRecord holds the latest submission of a candidate for an assessment.
type ResponseRecord struct {
	BaseModel
	CandidateID  string                                        `gorm:"not null;uniqueIndex:idx_response_candidate_assessment"`
	AssessmentID string                                        `gorm:"not null;uniqueIndex:idx_response_candidate_assessment"`
	Responses    datatypes.JSONType[[]assessment.ResponseItem] `gorm:"type:jsonb"`
	SubmittedAt  time.Time
}

func (ResponseRecord) TableName() string { return "assessment_responses" }

func (r ResponseRecord) ToDomain() assessment.Response {
	submitted := r.SubmittedAt
	items := r.Responses.Data()
	if items == nil {
		items = []assessment.ResponseItem{}
	}
	return assessment.Response{
		CandidateID:  r.CandidateID,
		AssessmentID: r.AssessmentID,
		Responses:    items,
		SubmittedAt:  &submitted,
	}
}

func NewResponseRecord(resp assessment.Response) ResponseRecord {
	rec := ResponseRecord{
		CandidateID:  resp.CandidateID,
		AssessmentID: resp.AssessmentID,
		Responses:    datatypes.NewJSONType(resp.Responses),
	}
	if resp.SubmittedAt != nil {
		rec.SubmittedAt = *resp.SubmittedAt
	}
	return rec
}
