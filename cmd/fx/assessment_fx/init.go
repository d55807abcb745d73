package assessment_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"talentflow/internal/cache"
	"talentflow/internal/repositories"
	"talentflow/internal/services"
	"talentflow/pkg/metrics"
)

var Module = fx.Provide(
	provideAssessmentRepo, provideAssessmentService)

func provideAssessmentRepo(db *gorm.DB) repositories.AssessmentRepositoryInterface {
	return repositories.NewAssessmentRepository(db)
}

func provideAssessmentService(
	assessmentRepo repositories.AssessmentRepositoryInterface,
	candidateRepo repositories.CandidateRepositoryInterface,
	assessmentCache cache.AssessmentCache,
	m *metrics.Metrics,
	log *zap.Logger,
) services.AssessmentServiceInterface {
	return services.NewAssessmentService(assessmentRepo, candidateRepo, assessmentCache, m, log)
}
