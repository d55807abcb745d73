package request_models

type ListJobsRequest struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,jobstatus"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
	Sort     string `form:"sort" binding:"omitempty,oneof=order title createdAt"`
}

type CreateJobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Status      string   `json:"status" binding:"omitempty,jobstatus"`
	Tags        []string `json:"tags"`
	Slug        string   `json:"slug"`
}

// UpdateJobRequest only touches the fields present in the body.
type UpdateJobRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1"`
	Company     *string   `json:"company"`
	Description *string   `json:"description"`
	Status      *string   `json:"status" binding:"omitempty,jobstatus"`
	Tags        *[]string `json:"tags"`
	Slug        *string   `json:"slug" binding:"omitempty,min=1"`
}

type ReorderJobRequest struct {
	FromOrder *int `json:"fromOrder" binding:"required,min=0"`
	ToOrder   *int `json:"toOrder" binding:"required,min=0"`
}
