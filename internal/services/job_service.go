package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/lib/pq"

	"talentflow/internal/models/db_models"
	"talentflow/internal/models/request_models"
	"talentflow/internal/models/response_models"
	"talentflow/internal/repositories"
	"talentflow/pkg/utils"
)

const defaultJobPageSize = 10

type JobServiceInterface interface {
	ListJobs(ctx context.Context, req request_models.ListJobsRequest) (*response_models.JobListResponse, error)
	CreateJob(ctx context.Context, req request_models.CreateJobRequest) (*response_models.JobResponse, error)
	UpdateJob(ctx context.Context, id string, req request_models.UpdateJobRequest) (*response_models.JobResponse, error)
	ReorderJob(ctx context.Context, id string, req request_models.ReorderJobRequest) error
}

type JobService struct {
	jobRepo repositories.JobRepositoryInterface
}

func NewJobService(jobRepo repositories.JobRepositoryInterface) JobServiceInterface {
	return &JobService{jobRepo: jobRepo}
}

func (s *JobService) ListJobs(ctx context.Context, req request_models.ListJobsRequest) (*response_models.JobListResponse, error) {
	page, pageSize := pageOrDefault(req.Page, req.PageSize, defaultJobPageSize)

	jobs, total, err := s.jobRepo.List(ctx, repositories.JobFilter{
		Search:   req.Search,
		Status:   req.Status,
		Sort:     req.Sort,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, dbError("list jobs", err)
	}

	out := &response_models.JobListResponse{
		Jobs:     make([]response_models.JobResponse, 0, len(jobs)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, job := range jobs {
		out.Jobs = append(out.Jobs, toJobResponse(job))
	}
	return out, nil
}

func (s *JobService) CreateJob(ctx context.Context, req request_models.CreateJobRequest) (*response_models.JobResponse, error) {
	status := req.Status
	if status == "" {
		status = db_models.JobStatusActive
	}

	base := req.Slug
	if base == "" {
		base = req.Title
	}
	jobSlug, err := s.uniqueSlug(ctx, slug.Make(base))
	if err != nil {
		return nil, err
	}

	count, err := s.jobRepo.Count(ctx)
	if err != nil {
		return nil, dbError("count jobs", err)
	}

	job := db_models.Job{
		Title:       strings.TrimSpace(req.Title),
		Company:     req.Company,
		Description: req.Description,
		Status:      status,
		Tags:        pq.StringArray(cleanTags(req.Tags)),
		Slug:        jobSlug,
		Order:       int(count),
	}
	if err := s.jobRepo.Create(ctx, &job); err != nil {
		return nil, dbError("create job", err)
	}

	resp := toJobResponse(job)
	return &resp, nil
}

// uniqueSlug appends -2, -3, ... until the slug is free.
func (s *JobService) uniqueSlug(ctx context.Context, base string) (string, error) {
	if base == "" {
		base = "job"
	}
	candidate := base
	for n := 2; ; n++ {
		taken, err := s.jobRepo.SlugTaken(ctx, candidate)
		if err != nil {
			return "", dbError("check slug", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

func (s *JobService) UpdateJob(ctx context.Context, id string, req request_models.UpdateJobRequest) (*response_models.JobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, dbError("load job", err)
	}
	if job == nil {
		return nil, utils.ErrJobNotFound
	}

	if req.Title != nil {
		job.Title = strings.TrimSpace(*req.Title)
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.Tags != nil {
		job.Tags = pq.StringArray(cleanTags(*req.Tags))
	}
	if req.Slug != nil {
		next := slug.Make(*req.Slug)
		if next != job.Slug {
			taken, err := s.jobRepo.SlugTaken(ctx, next)
			if err != nil {
				return nil, dbError("check slug", err)
			}
			if taken {
				return nil, utils.ErrSlugTaken
			}
			job.Slug = next
		}
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, dbError("update job", err)
	}

	resp := toJobResponse(*job)
	return &resp, nil
}

// ReorderJob moves the job at fromOrder to toOrder and renumbers every job
// from 0 so the board order stays contiguous.
func (s *JobService) ReorderJob(ctx context.Context, id string, req request_models.ReorderJobRequest) error {
	jobs, err := s.jobRepo.ListOrdered(ctx)
	if err != nil {
		return dbError("list jobs", err)
	}

	from, to := *req.FromOrder, *req.ToOrder
	idx := -1
	for i, job := range jobs {
		if job.ID.String() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return utils.ErrJobNotFound
	}
	if from != idx || to < 0 || to >= len(jobs) {
		return fmt.Errorf("%w: job %s is at %d, asked to move from %d to %d", utils.ErrInvalidReorder, id, idx, from, to)
	}

	moved := jobs[from]
	reordered := append(append([]db_models.Job{}, jobs[:from]...), jobs[from+1:]...)
	reordered = append(reordered[:to], append([]db_models.Job{moved}, reordered[to:]...)...)

	positions := make(map[uuid.UUID]int)
	for i, job := range reordered {
		if job.Order != i {
			positions[job.ID] = i
		}
	}
	if len(positions) == 0 {
		return nil
	}
	if err := s.jobRepo.UpdatePositions(ctx, positions); err != nil {
		return dbError("reorder jobs", err)
	}
	return nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func toJobResponse(job db_models.Job) response_models.JobResponse {
	tags := []string(job.Tags)
	if tags == nil {
		tags = []string{}
	}
	return response_models.JobResponse{
		ID:          job.ID.String(),
		Title:       job.Title,
		Company:     job.Company,
		Description: job.Description,
		Status:      job.Status,
		Tags:        tags,
		Slug:        job.Slug,
		Order:       job.Order,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}
