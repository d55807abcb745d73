package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentflow/internal/models/request_models"
	"talentflow/internal/services"
	"talentflow/pkg/utils"
	"talentflow/pkg/validation"
)

type CandidateController struct {
	candidateService services.CandidateServiceInterface
}

func NewCandidateController(candidateService services.CandidateServiceInterface) *CandidateController {
	return &CandidateController{candidateService: candidateService}
}

// ListCandidates godoc
// @Summary List candidates
// @Tags Candidates
// @Produce json
// @Param search query string false "Matches name or email"
// @Param stage query string false "Pipeline stage"
// @Param jobId query string false "Job ID"
// @Param page query int false "Page number, 1-based"
// @Param pageSize query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /api/candidates [get]
func (cc *CandidateController) ListCandidates(c *gin.Context) {
	var req request_models.ListCandidatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid query parameters", validation.FieldErrors(err))
		return
	}

	candidates, err := cc.candidateService.ListCandidates(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, candidates, "Candidates retrieved successfully")
}

// CreateCandidate godoc
// @Summary Add a candidate to a job
// @Tags Candidates
// @Accept json
// @Produce json
// @Param request body request_models.CreateCandidateRequest true "Candidate payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/candidates [post]
func (cc *CandidateController) CreateCandidate(c *gin.Context) {
	var req request_models.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid request format", validation.FieldErrors(err))
		return
	}

	candidate, err := cc.candidateService.CreateCandidate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, candidate, "Candidate created successfully")
}

// UpdateCandidate godoc
// @Summary Update a candidate
// @Description A stage change is appended to the candidate timeline
// @Tags Candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param request body request_models.UpdateCandidateRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/candidates/{id} [patch]
func (cc *CandidateController) UpdateCandidate(c *gin.Context) {
	var req request_models.UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid request format", validation.FieldErrors(err))
		return
	}

	candidate, err := cc.candidateService.UpdateCandidate(c.Request.Context(), c.Param("id"), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, candidate, "Candidate updated successfully")
}

// GetTimeline godoc
// @Summary Stage history of a candidate
// @Tags Candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/candidates/{id}/timeline [get]
func (cc *CandidateController) GetTimeline(c *gin.Context) {
	timeline, err := cc.candidateService.GetTimeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, timeline, "Timeline retrieved successfully")
}

// AddNote godoc
// @Summary Add a note to a candidate
// @Description @mentions in the content are extracted
// @Tags Candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param request body request_models.AddNoteRequest true "Note payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/candidates/{id}/notes [post]
func (cc *CandidateController) AddNote(c *gin.Context) {
	var req request_models.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid request format", validation.FieldErrors(err))
		return
	}

	note, err := cc.candidateService.AddNote(c.Request.Context(), c.Param("id"), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, note, "Note added successfully")
}
