package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"talentflow/internal/models/db_models"
)

type AssessmentRepositoryInterface interface {
	GetByJobID(ctx context.Context, jobID string) (*db_models.AssessmentRecord, error)
	Create(ctx context.Context, record *db_models.AssessmentRecord) error
	Update(ctx context.Context, record *db_models.AssessmentRecord) error
	UpsertResponse(ctx context.Context, record *db_models.ResponseRecord) error
	GetResponse(ctx context.Context, assessmentID, candidateID string) (*db_models.ResponseRecord, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepositoryInterface {
	return &assessmentRepository{db: db}
}

// GetByJobID returns nil, nil when the job has no assessment yet.
func (r *assessmentRepository) GetByJobID(ctx context.Context, jobID string) (*db_models.AssessmentRecord, error) {
	var record db_models.AssessmentRecord
	err := r.db.WithContext(ctx).Where("job_id = ?", jobID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *assessmentRepository) Create(ctx context.Context, record *db_models.AssessmentRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *assessmentRepository) Update(ctx context.Context, record *db_models.AssessmentRecord) error {
	return r.db.WithContext(ctx).
		Model(record).
		Select("title", "sections", "updated_at").
		Updates(record).Error
}

// UpsertResponse keeps one row per candidate and assessment; a later
// submission replaces the answers of an earlier one.
func (r *assessmentRepository) UpsertResponse(ctx context.Context, record *db_models.ResponseRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "candidate_id"}, {Name: "assessment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"responses", "submitted_at", "updated_at"}),
	}).Create(record).Error
}

func (r *assessmentRepository) GetResponse(ctx context.Context, assessmentID, candidateID string) (*db_models.ResponseRecord, error) {
	var record db_models.ResponseRecord
	err := r.db.WithContext(ctx).
		Where("assessment_id = ? AND candidate_id = ?", assessmentID, candidateID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
