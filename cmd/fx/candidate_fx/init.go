package candidate_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"talentflow/internal/repositories"
	"talentflow/internal/services"
)

var Module = fx.Provide(
	provideCandidateRepo, provideCandidateService)

func provideCandidateRepo(db *gorm.DB) repositories.CandidateRepositoryInterface {
	return repositories.NewCandidateRepository(db)
}

func provideCandidateService(
	candidateRepo repositories.CandidateRepositoryInterface,
	jobRepo repositories.JobRepositoryInterface,
) services.CandidateServiceInterface {
	return services.NewCandidateService(candidateRepo, jobRepo)
}
