package request_models

type ListCandidatesRequest struct {
	Search   string `form:"search"`
	Stage    string `form:"stage" binding:"omitempty,stage"`
	JobID    string `form:"jobId"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

type CreateCandidateRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone"`
	JobID string  `json:"jobId" binding:"required"`
	Stage string  `json:"stage" binding:"omitempty,stage"`
}

type UpdateCandidateRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
	JobID *string `json:"jobId"`
	Stage *string `json:"stage" binding:"omitempty,stage"`
}

type AddNoteRequest struct {
	Content string `json:"content" binding:"required"`
	Author  string `json:"author"`
}
