package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentflow/internal/models/db_models"
)

type CandidateFilter struct {
	Search   string
	Stage    string
	JobID    string
	Page     int
	PageSize int
}

type CandidateRepositoryInterface interface {
	List(ctx context.Context, filter CandidateFilter) ([]db_models.Candidate, int64, error)
	GetByID(ctx context.Context, id string) (*db_models.Candidate, error)
	Create(ctx context.Context, candidate *db_models.Candidate) error
	Save(ctx context.Context, candidate *db_models.Candidate) error
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepositoryInterface {
	return &candidateRepository{db: db}
}

func candidateFilterScope(filter CandidateFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Stage != "" {
			db = db.Where("stage = ?", filter.Stage)
		}
		if filter.JobID != "" {
			db = db.Where("job_id = ?", filter.JobID)
		}
		if s := strings.TrimSpace(filter.Search); s != "" {
			like := "%" + s + "%"
			db = db.Where("name ILIKE ? OR email ILIKE ?", like, like)
		}
		return db
	}
}

func (r *candidateRepository) List(ctx context.Context, filter CandidateFilter) ([]db_models.Candidate, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&db_models.Candidate{}).
		Scopes(candidateFilterScope(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var candidates []db_models.Candidate
	err := r.db.WithContext(ctx).
		Scopes(candidateFilterScope(filter)).
		Order("applied_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&candidates).Error
	if err != nil {
		return nil, 0, err
	}
	return candidates, total, nil
}

// GetByID returns nil, nil when the candidate does not exist.
func (r *candidateRepository) GetByID(ctx context.Context, id string) (*db_models.Candidate, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	var candidate db_models.Candidate
	err := r.db.WithContext(ctx).First(&candidate, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) Create(ctx context.Context, candidate *db_models.Candidate) error {
	return r.db.WithContext(ctx).Create(candidate).Error
}

func (r *candidateRepository) Save(ctx context.Context, candidate *db_models.Candidate) error {
	return r.db.WithContext(ctx).Save(candidate).Error
}
