package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"talentflow/internal/models/db_models"
)

const batchSize = 200

type Options struct {
	Jobs        int
	Candidates  int
	Assessments int
	Seed        int64
}

func DefaultOptions() Options {
	return Options{Jobs: 25, Candidates: 1000, Assessments: 3, Seed: time.Now().UnixNano()}
}

type Seeder struct {
	db       *gorm.DB
	log      *zap.Logger
	template *Template
	now      func() time.Time
}

func NewSeeder(db *gorm.DB, log *zap.Logger, template *Template) *Seeder {
	return &Seeder{db: db, log: log.Named("seed"), template: template, now: time.Now}
}

// Run fills an empty database. It reports false without writing anything
// when jobs already exist.
func (s *Seeder) Run(ctx context.Context, opts Options) (bool, error) {
	var existing int64
	if err := s.db.WithContext(ctx).Model(&db_models.Job{}).Count(&existing).Error; err != nil {
		return false, fmt.Errorf("count jobs: %w", err)
	}
	if existing > 0 {
		s.log.Info("database already has jobs, skipping", zap.Int64("jobs", existing))
		return false, nil
	}

	gen := NewGenerator(opts.Seed, s.now())
	jobs := gen.Jobs(opts.Jobs)
	candidates := gen.Candidates(jobs, opts.Candidates)
	assessments, err := gen.Assessments(s.template, jobs, opts.Assessments)
	if err != nil {
		return false, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(jobs) > 0 {
			if err := tx.CreateInBatches(&jobs, batchSize).Error; err != nil {
				return fmt.Errorf("insert jobs: %w", err)
			}
		}
		if len(candidates) > 0 {
			if err := tx.CreateInBatches(&candidates, batchSize).Error; err != nil {
				return fmt.Errorf("insert candidates: %w", err)
			}
		}
		if len(assessments) > 0 {
			if err := tx.CreateInBatches(&assessments, batchSize).Error; err != nil {
				return fmt.Errorf("insert assessments: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	s.log.Info("database seeded",
		zap.Int("jobs", len(jobs)),
		zap.Int("candidates", len(candidates)),
		zap.Int("assessments", len(assessments)),
	)
	return true, nil
}
