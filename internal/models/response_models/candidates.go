package response_models

import "time"

type NoteResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Mentions  []string  `json:"mentions"`
}

type StatusChangeResponse struct {
	Stage     string    `json:"stage"`
	ChangedAt time.Time `json:"changedAt"`
	ChangedBy string    `json:"changedBy"`
}

type CandidateResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Email         string                 `json:"email"`
	Phone         *string                `json:"phone,omitempty"`
	Stage         string                 `json:"stage"`
	JobID         string                 `json:"jobId"`
	AppliedAt     time.Time              `json:"appliedAt"`
	Notes         []NoteResponse         `json:"notes"`
	StatusHistory []StatusChangeResponse `json:"statusHistory"`
}

type CandidateListResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
}

type TimelineResponse struct {
	CandidateID string                 `json:"candidateId"`
	Timeline    []StatusChangeResponse `json:"timeline"`
}
