package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"talentflow/internal/assessment"
	"talentflow/internal/models/request_models"
	"talentflow/internal/models/response_models"
	"talentflow/internal/services"
	"talentflow/pkg/utils"
	"talentflow/pkg/validation"
)

type AssessmentController struct {
	assessmentService services.AssessmentServiceInterface
}

func NewAssessmentController(assessmentService services.AssessmentServiceInterface) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// GetAssessment godoc
// @Summary Assessment of a job
// @Tags Assessments
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/assessments/{jobId} [get]
func (a *AssessmentController) GetAssessment(c *gin.Context) {
	result, err := a.assessmentService.GetAssessment(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Assessment retrieved successfully")
}

// UpsertAssessment godoc
// @Summary Replace the assessment of a job
// @Description Creates the assessment when the job has none
// @Tags Assessments
// @Accept json
// @Produce json
// @Param jobId path string true "Job ID"
// @Param request body request_models.UpsertAssessmentRequest true "Assessment definition"
// @Success 200 {object} utils.APIResponse
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/assessments/{jobId} [put]
func (a *AssessmentController) UpsertAssessment(c *gin.Context) {
	var req request_models.UpsertAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid request format", validation.FieldErrors(err))
		return
	}

	result, created, err := a.assessmentService.UpsertAssessment(c.Request.Context(), c.Param("jobId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if created {
		utils.RespondCreated(c, result, "Assessment created successfully")
		return
	}
	utils.RespondSuccess(c, result, "Assessment updated successfully")
}

// AddSection godoc
// @Summary Append a section
// @Tags Assessment Builder
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/assessments/{jobId}/sections [post]
func (a *AssessmentController) AddSection(c *gin.Context) {
	result, err := a.assessmentService.AddSection(c.Request.Context(), c.Param("jobId"))
	respondBuilder(c, result, err)
}

// UpdateSection godoc
// @Summary Patch a section
// @Tags Assessment Builder
// @Accept json
// @Produce json
// @Param jobId path string true "Job ID"
// @Param sectionId path string true "Section ID"
// @Param request body assessment.SectionPatch true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Router /api/assessments/{jobId}/sections/{sectionId} [patch]
func (a *AssessmentController) UpdateSection(c *gin.Context) {
	var patch assessment.SectionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid request format", validation.FieldErrors(err))
		return
	}

	result, err := a.assessmentService.UpdateSection(c.Request.Context(), c.Param("jobId"), c.Param("sectionId"), patch)
	respondBuilder(c, result, err)
}

// DeleteSection godoc
// @Summary Remove a section
// @Tags Assessment Builder
// @Produce json
// @Param jobId path string true "Job ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/assessments/{jobId}/sections/{sectionId} [delete]
func (a *AssessmentController) DeleteSection(c *gin.Context) {
	result, err := a.assessmentService.DeleteSection(c.Request.Context(), c.Param("jobId"), c.Param("sectionId"))
	respondBuilder(c, result, err)
}

// AddQuestion godoc
// @Summary Append a short-text question to a section
// @Tags Assessment Builder
// @Produce json
// @Param jobId path string true "Job ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/assessments/{jobId}/sections/{sectionId}/questions [post]
func (a *AssessmentController) AddQuestion(c *gin.Context) {
	result, err := a.assessmentService.AddQuestion(c.Request.Context(), c.Param("jobId"), c.Param("sectionId"))
	respondBuilder(c, result, err)
}

// UpdateQuestion godoc
// @Summary Patch a question
// @Description null clears min, max, maxLength or conditional
// @Tags Assessment Builder
// @Accept json
// @Produce json
// @Param jobId path string true "Job ID"
// @Param sectionId path string true "Section ID"
// @Param questionId path string true "Question ID"
// @Param request body assessment.QuestionPatch true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/assessments/{jobId}/sections/{sectionId}/questions/{questionId} [patch]
func (a *AssessmentController) UpdateQuestion(c *gin.Context) {
	var patch assessment.QuestionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid request format", validation.FieldErrors(err))
		return
	}

	result, err := a.assessmentService.UpdateQuestion(c.Request.Context(), c.Param("jobId"), c.Param("sectionId"), c.Param("questionId"), patch)
	respondBuilder(c, result, err)
}

// DeleteQuestion godoc
// @Summary Remove a question
// @Tags Assessment Builder
// @Produce json
// @Param jobId path string true "Job ID"
// @Param sectionId path string true "Section ID"
// @Param questionId path string true "Question ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/assessments/{jobId}/sections/{sectionId}/questions/{questionId} [delete]
func (a *AssessmentController) DeleteQuestion(c *gin.Context) {
	result, err := a.assessmentService.DeleteQuestion(c.Request.Context(), c.Param("jobId"), c.Param("sectionId"), c.Param("questionId"))
	respondBuilder(c, result, err)
}

// AddOption godoc
// @Summary Append an option to a question
// @Tags Assessment Builder
// @Produce json
// @Param jobId path string true "Job ID"
// @Param sectionId path string true "Section ID"
// @Param questionId path string true "Question ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/assessments/{jobId}/sections/{sectionId}/questions/{questionId}/options [post]
func (a *AssessmentController) AddOption(c *gin.Context) {
	result, err := a.assessmentService.AddOption(c.Request.Context(), c.Param("jobId"), c.Param("sectionId"), c.Param("questionId"))
	respondBuilder(c, result, err)
}

// UpdateOption godoc
// @Summary Rename an option
// @Tags Assessment Builder
// @Accept json
// @Produce json
// @Param jobId path string true "Job ID"
// @Param sectionId path string true "Section ID"
// @Param questionId path string true "Question ID"
// @Param index path int true "Option index"
// @Param request body request_models.UpdateOptionRequest true "New value"
// @Success 200 {object} utils.APIResponse
// @Router /api/assessments/{jobId}/sections/{sectionId}/questions/{questionId}/options/{index} [patch]
func (a *AssessmentController) UpdateOption(c *gin.Context) {
	index, ok := optionIndex(c)
	if !ok {
		return
	}
	var req request_models.UpdateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid request format", validation.FieldErrors(err))
		return
	}

	result, err := a.assessmentService.UpdateOption(c.Request.Context(), c.Param("jobId"), c.Param("sectionId"), c.Param("questionId"), index, *req.Value)
	respondBuilder(c, result, err)
}

// DeleteOption godoc
// @Summary Remove an option
// @Tags Assessment Builder
// @Produce json
// @Param jobId path string true "Job ID"
// @Param sectionId path string true "Section ID"
// @Param questionId path string true "Question ID"
// @Param index path int true "Option index"
// @Success 200 {object} utils.APIResponse
// @Router /api/assessments/{jobId}/sections/{sectionId}/questions/{questionId}/options/{index} [delete]
func (a *AssessmentController) DeleteOption(c *gin.Context) {
	index, ok := optionIndex(c)
	if !ok {
		return
	}

	result, err := a.assessmentService.DeleteOption(c.Request.Context(), c.Param("jobId"), c.Param("sectionId"), c.Param("questionId"), index)
	respondBuilder(c, result, err)
}

// VisibleQuestions godoc
// @Summary Preview which questions are shown for a set of answers
// @Tags Assessments
// @Accept json
// @Produce json
// @Param jobId path string true "Job ID"
// @Param request body request_models.VisibilityRequest true "Answers so far"
// @Success 200 {object} utils.APIResponse
// @Router /api/assessments/{jobId}/visibility [post]
func (a *AssessmentController) VisibleQuestions(c *gin.Context) {
	var req request_models.VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid request format", validation.FieldErrors(err))
		return
	}

	result, err := a.assessmentService.VisibleQuestions(c.Request.Context(), c.Param("jobId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Visible questions computed")
}

// Submit godoc
// @Summary Submit a candidate's answers
// @Description Responds 422 with a question id to message map when answers are invalid
// @Tags Assessments
// @Accept json
// @Produce json
// @Param jobId path string true "Job ID"
// @Param request body request_models.SubmitAssessmentRequest true "Answers"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /api/assessments/{jobId}/submit [post]
func (a *AssessmentController) Submit(c *gin.Context) {
	var req request_models.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Invalid request format", validation.FieldErrors(err))
		return
	}

	resp, errs, err := a.assessmentService.Submit(c.Request.Context(), c.Param("jobId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if errs != nil {
		utils.RespondErrorWithData(c, http.StatusUnprocessableEntity, "Assessment has invalid answers", errs)
		return
	}

	utils.RespondSuccess(c, resp, "Assessment submitted successfully")
}

// GetResponse godoc
// @Summary Stored response of a candidate
// @Tags Assessments
// @Produce json
// @Param jobId path string true "Job ID"
// @Param candidateId path string true "Candidate ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/assessments/{jobId}/responses/{candidateId} [get]
func (a *AssessmentController) GetResponse(c *gin.Context) {
	resp, err := a.assessmentService.GetResponse(c.Request.Context(), c.Param("jobId"), c.Param("candidateId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Response retrieved successfully")
}

func respondBuilder(c *gin.Context, result *response_models.BuilderResponse, err error) {
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !result.Applied {
		utils.RespondSuccess(c, result, "No changes applied")
		return
	}
	utils.RespondSuccess(c, result, "Assessment updated successfully")
}

func optionIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Option index must be an integer")
		return 0, false
	}
	return index, true
}
