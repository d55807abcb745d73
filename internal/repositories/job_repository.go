package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentflow/internal/models/db_models"
)

type JobFilter struct {
	Search   string
	Status   string
	Sort     string
	Page     int
	PageSize int
}

type JobRepositoryInterface interface {
	List(ctx context.Context, filter JobFilter) ([]db_models.Job, int64, error)
	ListOrdered(ctx context.Context) ([]db_models.Job, error)
	GetByID(ctx context.Context, id string) (*db_models.Job, error)
	Count(ctx context.Context) (int64, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, job *db_models.Job) error
	Update(ctx context.Context, job *db_models.Job) error
	UpdatePositions(ctx context.Context, positions map[uuid.UUID]int) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepositoryInterface {
	return &jobRepository{db: db}
}

var jobSortColumns = map[string]string{
	"order":     "position ASC",
	"title":     "title ASC",
	"createdAt": "created_at DESC",
}

func jobFilterScope(filter JobFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if s := strings.TrimSpace(filter.Search); s != "" {
			like := "%" + s + "%"
			db = db.Where("title ILIKE ? OR company ILIKE ? OR array_to_string(tags, ' ') ILIKE ?", like, like, like)
		}
		return db
	}
}

func (r *jobRepository) List(ctx context.Context, filter JobFilter) ([]db_models.Job, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&db_models.Job{}).
		Scopes(jobFilterScope(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := jobSortColumns[filter.Sort]
	if !ok {
		order = jobSortColumns["order"]
	}

	var jobs []db_models.Job
	err := r.db.WithContext(ctx).
		Scopes(jobFilterScope(filter)).
		Order(order).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepository) ListOrdered(ctx context.Context) ([]db_models.Job, error) {
	var jobs []db_models.Job
	if err := r.db.WithContext(ctx).Order("position ASC").Order("created_at ASC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetByID returns nil, nil when the job does not exist.
func (r *jobRepository) GetByID(ctx context.Context, id string) (*db_models.Job, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	var job db_models.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&db_models.Job{}).Count(&total).Error
	return total, err
}

func (r *jobRepository) SlugTaken(ctx context.Context, slug string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Job{}).Where("slug = ?", slug).Count(&n).Error
	return n > 0, err
}

func (r *jobRepository) Create(ctx context.Context, job *db_models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) Update(ctx context.Context, job *db_models.Job) error {
	result := r.db.WithContext(ctx).Save(job)
	if result.Error != nil {
		return fmt.Errorf("failed to update job: %w", result.Error)
	}
	return nil
}

func (r *jobRepository) UpdatePositions(ctx context.Context, positions map[uuid.UUID]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, pos := range positions {
			if err := tx.Model(&db_models.Job{}).Where("id = ?", id).Update("position", pos).Error; err != nil {
				return fmt.Errorf("failed to move job %s: %w", id, err)
			}
		}
		return nil
	})
}
