package services

import (
	"context"
	"time"

	"talentflow/internal/models/db_models"
	"talentflow/internal/models/request_models"
	resp "talentflow/internal/models/response_models"
	"talentflow/internal/pipeline"
	"talentflow/internal/repositories"
)

const (
	defaultDashboardDays = 30
	defaultTopJobs       = 5
)

type DashboardServiceInterface interface {
	BuildDashboard(ctx context.Context, req request_models.DashboardRequest) (*resp.DashboardReport, error)
}

type DashboardService struct {
	repo repositories.DashboardRepositoryInterface
	now  func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepositoryInterface) DashboardServiceInterface {
	return &DashboardService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *DashboardService) normalizeRange(req request_models.DashboardRequest) resp.TimeRange {
	days := req.LastDays
	if days < 1 {
		days = defaultDashboardDays
	}
	interval := req.Interval
	if interval == "" {
		interval = "day"
	}
	end := s.now()
	return resp.TimeRange{Start: end.AddDate(0, 0, -days), End: end, Interval: interval}
}

func (s *DashboardService) BuildDashboard(ctx context.Context, req request_models.DashboardRequest) (*resp.DashboardReport, error) {
	rng := s.normalizeRange(req)
	limit := req.TopJobs
	if limit < 1 {
		limit = defaultTopJobs
	}

	// ---------- Jobs ----------
	jobCounts, err := s.repo.CountJobsByStatus(ctx)
	if err != nil {
		return nil, dbError("count jobs by status", err)
	}
	var kpis resp.PipelineKPIs
	for _, row := range jobCounts {
		switch row.Name {
		case db_models.JobStatusActive:
			kpis.ActiveJobs = row.Count
		case db_models.JobStatusArchived:
			kpis.ArchivedJobs = row.Count
		}
	}

	// ---------- Stages ----------
	stageCounts, err := s.repo.CountCandidatesByStage(ctx)
	if err != nil {
		return nil, dbError("count candidates by stage", err)
	}
	byStage := make(map[string]int64, len(stageCounts))
	for _, row := range stageCounts {
		byStage[row.Name] = row.Count
		kpis.TotalCandidates += row.Count
	}
	stages := make([]resp.StageCount, 0, len(pipeline.Stages))
	for _, st := range pipeline.Stages {
		stages = append(stages, resp.StageCount{Stage: string(st), Count: byStage[string(st)]})
	}
	hired, rejected := byStage[string(pipeline.Hired)], byStage[string(pipeline.Rejected)]
	if decided := hired + rejected; decided > 0 {
		kpis.HireRatePct = float64(hired) / float64(decided) * 100
	}

	// ---------- Activity in range ----------
	kpis.Submissions, err = s.repo.CountSubmissions(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, dbError("count submissions", err)
	}

	buckets, err := s.repo.ApplicationsSeries(ctx, rng.Start, rng.End, rng.Interval)
	if err != nil {
		return nil, dbError("applications series", err)
	}
	series := resp.CountSeries{Points: make([]resp.SeriesPoint, 0, len(buckets))}
	for _, b := range buckets {
		series.Points = append(series.Points, resp.SeriesPoint{Bucket: b.Bucket.UTC(), Value: b.Count})
		series.Total += b.Count
	}

	top, err := s.repo.TopJobs(ctx, limit)
	if err != nil {
		return nil, dbError("top jobs", err)
	}
	topJobs := make([]resp.TopJob, 0, len(top))
	for _, row := range top {
		topJobs = append(topJobs, resp.TopJob{JobID: row.JobID, Title: row.Title, Candidates: row.Count})
	}

	return &resp.DashboardReport{
		Range:        rng,
		KPIs:         kpis,
		Stages:       stages,
		Applications: series,
		TopJobs:      topJobs,
	}, nil
}
