package request_models

type DashboardRequest struct {
	LastDays int    `form:"lastDays" binding:"omitempty,min=1,max=365"`
	Interval string `form:"interval" binding:"omitempty,oneof=day week month"`
	TopJobs  int    `form:"topJobs" binding:"omitempty,min=1,max=50"`
}
