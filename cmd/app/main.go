package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"talentflow/cmd/fx/assessment_fx"
	"talentflow/cmd/fx/auth_fx"
	"talentflow/cmd/fx/cache_fx"
	"talentflow/cmd/fx/candidate_fx"
	"talentflow/cmd/fx/config_fx"
	"talentflow/cmd/fx/controllers_fx"
	"talentflow/cmd/fx/dashboard_fx"
	"talentflow/cmd/fx/db_fx"
	"talentflow/cmd/fx/job_fx"
	"talentflow/cmd/fx/logger_fx"
	"talentflow/cmd/fx/metrics_fx"
	"talentflow/internal/api/controllers"
	"talentflow/internal/config"
	"talentflow/pkg/metrics"
	"talentflow/pkg/middleware"
	"talentflow/pkg/utils"
	"talentflow/pkg/validation"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		cache_fx.Module,
		metrics_fx.Module,
		auth_fx.Module,
		job_fx.Module,
		candidate_fx.Module,
		assessment_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Invoke(validation.RegisterBindingRules),
		fx.Invoke(WatchConfig),
		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

// WatchConfig logs config file changes. Settings read at startup (ports,
// pools, secrets) need a restart to take effect.
func WatchConfig(loader *config.Loader, log *zap.Logger) {
	loader.Watch(func(file string, cfg *config.Config, err error) {
		if err != nil {
			log.Error("config reload failed", zap.String("file", file), zap.Error(err))
			return
		}
		log.Info("config file changed, restart to apply", zap.String("file", file))
	})
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	reg *prometheus.Registry,
	m *metrics.Metrics,
	tokens *utils.TokenManager,
	jobController *controllers.JobController,
	candidateController *controllers.CandidateController,
	assessmentController *controllers.AssessmentController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.MetricsMiddleware(m))
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "Service is healthy")
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	RegisterRoutes(r, tokens, jobController, candidateController, assessmentController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tokens *utils.TokenManager,
	jobController *controllers.JobController,
	candidateController *controllers.CandidateController,
	assessmentController *controllers.AssessmentController,
	dashboardController *controllers.DashboardController) {

	recruiter := []gin.HandlerFunc{
		middleware.JWTAuthMiddleware(tokens),
		middleware.RoleMiddleware(tokens, utils.RoleRecruiter),
	}
	api := r.Group("/api")

	jobsGroup := api.Group("/jobs")
	jobsGroup.GET("", jobController.ListJobs)
	jobsWrite := jobsGroup.Group("", recruiter...)
	jobsWrite.POST("", jobController.CreateJob)
	jobsWrite.PATCH("/:id", jobController.UpdateJob)
	jobsWrite.PATCH("/:id/reorder", jobController.ReorderJob)

	candidatesGroup := api.Group("/candidates")
	candidatesGroup.GET("", candidateController.ListCandidates)
	candidatesGroup.GET("/:id/timeline", candidateController.GetTimeline)
	candidatesWrite := candidatesGroup.Group("", recruiter...)
	candidatesWrite.POST("", candidateController.CreateCandidate)
	candidatesWrite.PATCH("/:id", candidateController.UpdateCandidate)
	candidatesWrite.POST("/:id/notes", candidateController.AddNote)

	assessmentsGroup := api.Group("/assessments/:jobId")
	assessmentsGroup.GET("", assessmentController.GetAssessment)
	assessmentsGroup.POST("/visibility", assessmentController.VisibleQuestions)
	assessmentsGroup.POST("/submit", assessmentController.Submit)
	assessmentsGroup.GET("/responses/:candidateId", assessmentController.GetResponse)

	builder := assessmentsGroup.Group("", recruiter...)
	builder.PUT("", assessmentController.UpsertAssessment)
	builder.POST("/sections", assessmentController.AddSection)
	builder.PATCH("/sections/:sectionId", assessmentController.UpdateSection)
	builder.DELETE("/sections/:sectionId", assessmentController.DeleteSection)
	builder.POST("/sections/:sectionId/questions", assessmentController.AddQuestion)
	builder.PATCH("/sections/:sectionId/questions/:questionId", assessmentController.UpdateQuestion)
	builder.DELETE("/sections/:sectionId/questions/:questionId", assessmentController.DeleteQuestion)
	builder.POST("/sections/:sectionId/questions/:questionId/options", assessmentController.AddOption)
	builder.PATCH("/sections/:sectionId/questions/:questionId/options/:index", assessmentController.UpdateOption)
	builder.DELETE("/sections/:sectionId/questions/:questionId/options/:index", assessmentController.DeleteOption)

	dashboardGroup := api.Group("/dashboard", recruiter...)
	dashboardGroup.GET("", dashboardController.GetDashboard)
}
