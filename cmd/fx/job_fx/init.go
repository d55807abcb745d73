package job_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"talentflow/internal/repositories"
	"talentflow/internal/services"
)

var Module = fx.Provide(
	provideJobRepo, provideJobService)

func provideJobRepo(db *gorm.DB) repositories.JobRepositoryInterface {
	return repositories.NewJobRepository(db)
}

func provideJobService(jobRepo repositories.JobRepositoryInterface) services.JobServiceInterface {
	return services.NewJobService(jobRepo)
}
