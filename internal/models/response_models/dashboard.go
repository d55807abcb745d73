package response_models

import "time"

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// "day" | "week" | "month"
	Interval string `json:"interval"`
}

type StageCount struct {
	Stage string `json:"stage"`
	Count int64  `json:"count"`
}

type SeriesPoint struct {
	Bucket time.Time `json:"bucket"`
	Value  int64     `json:"value"`
}

type CountSeries struct {
	Points []SeriesPoint `json:"points"`
	Total  int64         `json:"total"`
}

type TopJob struct {
	JobID      string `json:"jobId"`
	Title      string `json:"title"`
	Candidates int64  `json:"candidates"`
}

type PipelineKPIs struct {
	ActiveJobs      int64   `json:"activeJobs"`
	ArchivedJobs    int64   `json:"archivedJobs"`
	TotalCandidates int64   `json:"totalCandidates"`
	Submissions     int64   `json:"submissions"`
	HireRatePct     float64 `json:"hireRatePct"` // hired / decided (hired + rejected) * 100
}

type DashboardReport struct {
	Range        TimeRange    `json:"range"`
	KPIs         PipelineKPIs `json:"kpis"`
	Stages       []StageCount `json:"stages"`
	Applications CountSeries  `json:"applications"`
	TopJobs      []TopJob     `json:"topJobs"`
}
