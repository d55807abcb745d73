package controllers_fx

import (
	"go.uber.org/fx"

	"talentflow/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewJobController),
	fx.Provide(controllers.NewCandidateController),
	fx.Provide(controllers.NewAssessmentController),
	fx.Provide(controllers.NewDashboardController))
