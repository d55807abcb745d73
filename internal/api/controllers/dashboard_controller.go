package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentflow/internal/models/request_models"
	"talentflow/internal/services"
	"talentflow/pkg/utils"
	"talentflow/pkg/validation"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Hiring pipeline dashboard
// @Description Job and stage counts, application series and busiest jobs
// @Tags Dashboard
// @Produce json
// @Param lastDays query int false "Window size in days (default 30)"
// @Param interval query string false "day, week or month"
// @Param topJobs query int false "Number of busiest jobs (default 5)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/dashboard [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	var req request_models.DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid query parameters", validation.FieldErrors(err))
		return
	}

	report, err := d.dashboardService.BuildDashboard(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard generated successfully")
}
