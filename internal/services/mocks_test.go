package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"talentflow/internal/assessment"
	"talentflow/internal/models/db_models"
	"talentflow/internal/repositories"
)

type mockJobRepo struct{ mock.Mock }

func (m *mockJobRepo) List(ctx context.Context, filter repositories.JobFilter) ([]db_models.Job, int64, error) {
	args := m.Called(ctx, filter)
	jobs, _ := args.Get(0).([]db_models.Job)
	return jobs, args.Get(1).(int64), args.Error(2)
}

func (m *mockJobRepo) ListOrdered(ctx context.Context) ([]db_models.Job, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]db_models.Job)
	return jobs, args.Error(1)
}

func (m *mockJobRepo) GetByID(ctx context.Context, id string) (*db_models.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*db_models.Job)
	return job, args.Error(1)
}

func (m *mockJobRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockJobRepo) SlugTaken(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *mockJobRepo) Create(ctx context.Context, job *db_models.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *mockJobRepo) Update(ctx context.Context, job *db_models.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *mockJobRepo) UpdatePositions(ctx context.Context, positions map[uuid.UUID]int) error {
	return m.Called(ctx, positions).Error(0)
}

type mockCandidateRepo struct{ mock.Mock }

func (m *mockCandidateRepo) List(ctx context.Context, filter repositories.CandidateFilter) ([]db_models.Candidate, int64, error) {
	args := m.Called(ctx, filter)
	candidates, _ := args.Get(0).([]db_models.Candidate)
	return candidates, args.Get(1).(int64), args.Error(2)
}

func (m *mockCandidateRepo) GetByID(ctx context.Context, id string) (*db_models.Candidate, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*db_models.Candidate)
	return c, args.Error(1)
}

func (m *mockCandidateRepo) Create(ctx context.Context, c *db_models.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCandidateRepo) Save(ctx context.Context, c *db_models.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

type mockAssessmentRepo struct{ mock.Mock }

func (m *mockAssessmentRepo) GetByJobID(ctx context.Context, jobID string) (*db_models.AssessmentRecord, error) {
	args := m.Called(ctx, jobID)
	r, _ := args.Get(0).(*db_models.AssessmentRecord)
	return r, args.Error(1)
}

func (m *mockAssessmentRepo) Create(ctx context.Context, r *db_models.AssessmentRecord) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockAssessmentRepo) Update(ctx context.Context, r *db_models.AssessmentRecord) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockAssessmentRepo) UpsertResponse(ctx context.Context, r *db_models.ResponseRecord) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockAssessmentRepo) GetResponse(ctx context.Context, assessmentID, candidateID string) (*db_models.ResponseRecord, error) {
	args := m.Called(ctx, assessmentID, candidateID)
	r, _ := args.Get(0).(*db_models.ResponseRecord)
	return r, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, jobID string) (*assessment.Assessment, error) {
	args := m.Called(ctx, jobID)
	a, _ := args.Get(0).(*assessment.Assessment)
	return a, args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, a assessment.Assessment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockCache) Invalidate(ctx context.Context, jobID string) error {
	return m.Called(ctx, jobID).Error(0)
}
