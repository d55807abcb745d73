package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"talentflow/internal/repositories"
	"talentflow/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepositoryInterface {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepositoryInterface) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo)
}
