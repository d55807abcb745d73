package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentflow/internal/models/request_models"
	"talentflow/internal/services"
	"talentflow/pkg/utils"
	"talentflow/pkg/validation"
)

type JobController struct {
	jobService services.JobServiceInterface
}

func NewJobController(jobService services.JobServiceInterface) *JobController {
	return &JobController{jobService: jobService}
}

// ListJobs godoc
// @Summary List jobs
// @Description Paginated job board with search, status filter and sorting
// @Tags Jobs
// @Produce json
// @Param search query string false "Matches title, company or tags"
// @Param status query string false "active or archived"
// @Param page query int false "Page number, 1-based"
// @Param pageSize query int false "Page size"
// @Param sort query string false "order, title or createdAt"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/jobs [get]
func (j *JobController) ListJobs(c *gin.Context) {
	var req request_models.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid query parameters", validation.FieldErrors(err))
		return
	}

	jobs, err := j.jobService.ListJobs(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, jobs, "Jobs retrieved successfully")
}

// CreateJob godoc
// @Summary Create a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param request body request_models.CreateJobRequest true "Job payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/jobs [post]
func (j *JobController) CreateJob(c *gin.Context) {
	var req request_models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid request format", validation.FieldErrors(err))
		return
	}

	job, err := j.jobService.CreateJob(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, job, "Job created successfully")
}

// UpdateJob godoc
// @Summary Update a job
// @Description Only the fields present in the body are changed
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body request_models.UpdateJobRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/jobs/{id} [patch]
func (j *JobController) UpdateJob(c *gin.Context) {
	var req request_models.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid request format", validation.FieldErrors(err))
		return
	}

	job, err := j.jobService.UpdateJob(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, job, "Job updated successfully")
}

// ReorderJob godoc
// @Summary Move a job on the board
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body request_models.ReorderJobRequest true "Current and target position"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/jobs/{id}/reorder [patch]
func (j *JobController) ReorderJob(c *gin.Context) {
	var req request_models.ReorderJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid request format", validation.FieldErrors(err))
		return
	}

	if err := j.jobService.ReorderJob(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Job reordered successfully")
}
