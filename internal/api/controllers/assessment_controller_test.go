package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"talentflow/internal/assessment"
	"talentflow/internal/models/request_models"
	"talentflow/internal/models/response_models"
	"talentflow/pkg/utils"
)

func assessmentRouter(svc *mockAssessmentService) *gin.Engine {
	ctrl := NewAssessmentController(svc)
	r := newRouter("")
	g := r.Group("/api/assessments/:jobId")
	g.GET("", ctrl.GetAssessment)
	g.PUT("", ctrl.UpsertAssessment)
	g.POST("/sections", ctrl.AddSection)
	g.PATCH("/sections/:sectionId", ctrl.UpdateSection)
	g.DELETE("/sections/:sectionId", ctrl.DeleteSection)
	g.POST("/sections/:sectionId/questions", ctrl.AddQuestion)
	g.PATCH("/sections/:sectionId/questions/:questionId", ctrl.UpdateQuestion)
	g.DELETE("/sections/:sectionId/questions/:questionId", ctrl.DeleteQuestion)
	g.POST("/sections/:sectionId/questions/:questionId/options", ctrl.AddOption)
	g.PATCH("/sections/:sectionId/questions/:questionId/options/:index", ctrl.UpdateOption)
	g.DELETE("/sections/:sectionId/questions/:questionId/options/:index", ctrl.DeleteOption)
	g.POST("/visibility", ctrl.VisibleQuestions)
	g.POST("/submit", ctrl.Submit)
	g.GET("/responses/:candidateId", ctrl.GetResponse)
	return r
}

func TestAssessmentController_GetAssessmentNotFound(t *testing.T) {
	svc := new(mockAssessmentService)
	svc.On("GetAssessment", mock.Anything, "j1").Return(nil, utils.ErrAssessmentNotFound)

	w, env := do(t, assessmentRouter(svc), http.MethodGet, "/api/assessments/j1", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Assessment not found", env.Message)
}

func TestAssessmentController_Upsert(t *testing.T) {
	body := `{"title":"Screening","sections":[{"id":"s1","title":"Basics","order":0,"questions":[]}]}`

	for _, created := range []bool{true, false} {
		t.Run(fmt.Sprintf("created=%v", created), func(t *testing.T) {
			svc := new(mockAssessmentService)
			svc.On("UpsertAssessment", mock.Anything, "j1", mock.MatchedBy(func(req request_models.UpsertAssessmentRequest) bool {
				return req.Title == "Screening" && len(req.Sections) == 1
			})).Return(&assessment.Assessment{ID: "a1", JobID: "j1"}, created, nil)

			w, _ := do(t, assessmentRouter(svc), http.MethodPut, "/api/assessments/j1", body)

			if created {
				assert.Equal(t, http.StatusCreated, w.Code)
			} else {
				assert.Equal(t, http.StatusOK, w.Code)
			}
		})
	}

	t.Run("invalid conditional", func(t *testing.T) {
		svc := new(mockAssessmentService)
		svc.On("UpsertAssessment", mock.Anything, "j1", mock.Anything).
			Return(nil, false, fmt.Errorf("%w: question b: depends on unknown question", utils.ErrInvalidConditional))

		w, env := do(t, assessmentRouter(svc), http.MethodPut, "/api/assessments/j1", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Message, "question b")
	})
}

func TestAssessmentController_BuilderNoOpIsStillOK(t *testing.T) {
	svc := new(mockAssessmentService)
	svc.On("DeleteSection", mock.Anything, "j1", "ghost").
		Return(&response_models.BuilderResponse{Applied: false, Assessment: assessment.Assessment{ID: "a1"}}, nil)

	w, env := do(t, assessmentRouter(svc), http.MethodDelete, "/api/assessments/j1/sections/ghost", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No changes applied", env.Message)
	assert.Contains(t, string(env.Data), `"applied":false`)
}

func TestAssessmentController_UpdateQuestionDecodesNullableFields(t *testing.T) {
	svc := new(mockAssessmentService)
	svc.On("UpdateQuestion", mock.Anything, "j1", "s1", "q1", mock.MatchedBy(func(p assessment.QuestionPatch) bool {
		return p.Max.Set && p.Max.Value == nil && !p.Min.Set && p.Title != nil && *p.Title == "Age"
	})).Return(&response_models.BuilderResponse{Applied: true}, nil)

	w, _ := do(t, assessmentRouter(svc), http.MethodPatch, "/api/assessments/j1/sections/s1/questions/q1", `{"title":"Age","max":null}`)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestAssessmentController_Options(t *testing.T) {
	t.Run("update passes index and value", func(t *testing.T) {
		svc := new(mockAssessmentService)
		svc.On("UpdateOption", mock.Anything, "j1", "s1", "q1", 2, "Senior").Return(&response_models.BuilderResponse{Applied: true}, nil)

		w, _ := do(t, assessmentRouter(svc), http.MethodPatch, "/api/assessments/j1/sections/s1/questions/q1/options/2", `{"value":"Senior"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("value is required", func(t *testing.T) {
		w, _ := do(t, assessmentRouter(new(mockAssessmentService)), http.MethodPatch, "/api/assessments/j1/sections/s1/questions/q1/options/2", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("index must be numeric", func(t *testing.T) {
		w, env := do(t, assessmentRouter(new(mockAssessmentService)), http.MethodDelete, "/api/assessments/j1/sections/s1/questions/q1/options/first", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Option index must be an integer", env.Message)
	})
}

func TestAssessmentController_VisibleQuestions(t *testing.T) {
	svc := new(mockAssessmentService)
	svc.On("VisibleQuestions", mock.Anything, "j1", mock.MatchedBy(func(req request_models.VisibilityRequest) bool {
		return len(req.Responses) == 1 && string(req.Responses[0].Answer) == `"Yes"`
	})).Return(&response_models.VisibilityResponse{VisibleQuestionIDs: []string{"A", "B"}}, nil)

	w, env := do(t, assessmentRouter(svc), http.MethodPost, "/api/assessments/j1/visibility", `{"responses":[{"questionId":"A","answer":"Yes"}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"visibleQuestionIds":["A","B"]}`, string(env.Data))
}

func TestAssessmentController_Submit(t *testing.T) {
	t.Run("invalid answers respond 422 with the errors", func(t *testing.T) {
		svc := new(mockAssessmentService)
		svc.On("Submit", mock.Anything, "j1", mock.Anything).Return(nil, assessment.Errors{"B": assessment.MsgRequired}, nil)

		w, env := do(t, assessmentRouter(svc), http.MethodPost, "/api/assessments/j1/submit", `{"candidateId":"c1","responses":[{"questionId":"A","answer":"Yes"}]}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "error", env.Status)
		assert.JSONEq(t, `{"B":"This field is required"}`, string(env.Data))
	})

	t.Run("stored response is returned", func(t *testing.T) {
		svc := new(mockAssessmentService)
		resp := &assessment.Response{CandidateID: "c1", AssessmentID: "a1", Responses: []assessment.ResponseItem{{QuestionID: "A", Answer: assessment.Text("No")}}}
		svc.On("Submit", mock.Anything, "j1", mock.Anything).Return(resp, nil, nil)

		w, env := do(t, assessmentRouter(svc), http.MethodPost, "/api/assessments/j1/submit", `{"candidateId":"c1","responses":[{"questionId":"A","answer":"No"}]}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), `"answer":"No"`)
	})

	t.Run("candidate is required", func(t *testing.T) {
		w, env := do(t, assessmentRouter(new(mockAssessmentService)), http.MethodPost, "/api/assessments/j1/submit", `{"responses":[]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"candidateId":"The candidateId field is required"}`, string(env.Data))
	})

	t.Run("unknown candidate", func(t *testing.T) {
		svc := new(mockAssessmentService)
		svc.On("Submit", mock.Anything, "j1", mock.Anything).Return(nil, nil, utils.ErrCandidateNotFound)

		w, _ := do(t, assessmentRouter(svc), http.MethodPost, "/api/assessments/j1/submit", `{"candidateId":"ghost"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAssessmentController_GetResponse(t *testing.T) {
	svc := new(mockAssessmentService)
	svc.On("GetResponse", mock.Anything, "j1", "c2").Return(nil, utils.ErrResponseNotFound)

	w, env := do(t, assessmentRouter(svc), http.MethodGet, "/api/assessments/j1/responses/c2", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Response not found", env.Message)
}
