package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "talentflow/internal/models/db_models"
)

type DashboardRepositoryInterface interface {
	// Counts
	CountJobsByStatus(ctx context.Context) ([]GroupCount, error)
	CountCandidatesByStage(ctx context.Context) ([]GroupCount, error)
	CountSubmissions(ctx context.Context, start, end time.Time) (int64, error)

	// Time series
	ApplicationsSeries(ctx context.Context, start, end time.Time, interval string) ([]BucketCount, error)

	TopJobs(ctx context.Context, limit int) ([]JobCandidateCount, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepositoryInterface {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type GroupCount struct {
	Name  string `gorm:"column:name"`
	Count int64  `gorm:"column:count"`
}

type BucketCount struct {
	Bucket time.Time `gorm:"column:bucket"`
	Count  int64     `gorm:"column:count"`
}

type JobCandidateCount struct {
	JobID string `gorm:"column:job_id"`
	Title string `gorm:"column:title"`
	Count int64  `gorm:"column:count"`
}

// ---------- Counts ----------
func (r *dashboardRepository) CountJobsByStatus(ctx context.Context) ([]GroupCount, error) {
	var rows []GroupCount
	err := r.db.WithContext(ctx).
		Model(&dbm.Job{}).
		Select("status AS name, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) CountCandidatesByStage(ctx context.Context) ([]GroupCount, error) {
	var rows []GroupCount
	err := r.db.WithContext(ctx).
		Model(&dbm.Candidate{}).
		Select("stage AS name, COUNT(*) AS count").
		Group("stage").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) CountSubmissions(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.ResponseRecord{}).
		Where("submitted_at BETWEEN ? AND ?", start, end).
		Count(&n).Error
	return n, err
}

// ---------- Series ----------
func (r *dashboardRepository) ApplicationsSeries(ctx context.Context, start, end time.Time, interval string) ([]BucketCount, error) {
	var rows []BucketCount
	err := r.db.WithContext(ctx).
		Model(&dbm.Candidate{}).
		Select("date_trunc(?, applied_at) AS bucket, COUNT(*) AS count", interval).
		Where("applied_at BETWEEN ? AND ?", start, end).
		Group("bucket").
		Order("bucket ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) TopJobs(ctx context.Context, limit int) ([]JobCandidateCount, error) {
	var rows []JobCandidateCount
	err := r.db.WithContext(ctx).
		Table("candidates").
		Select("jobs.id AS job_id, jobs.title AS title, COUNT(candidates.id) AS count").
		Joins("JOIN jobs ON jobs.id::text = candidates.job_id").
		Group("jobs.id, jobs.title").
		Order("count DESC, jobs.title ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
