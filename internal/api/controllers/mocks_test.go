package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"talentflow/internal/assessment"
	"talentflow/internal/models/request_models"
	"talentflow/internal/models/response_models"
	"talentflow/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.RegisterBindingRules(); err != nil {
		panic(err)
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do runs one request through r. The router sets user_id the way the auth
// middleware would.
func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func newRouter(user string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if user != "" {
			c.Set("user_id", user)
		}
		c.Next()
	})
	return r
}

type mockJobService struct{ mock.Mock }

func (m *mockJobService) ListJobs(ctx context.Context, req request_models.ListJobsRequest) (*response_models.JobListResponse, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*response_models.JobListResponse)
	return out, args.Error(1)
}

func (m *mockJobService) CreateJob(ctx context.Context, req request_models.CreateJobRequest) (*response_models.JobResponse, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*response_models.JobResponse)
	return out, args.Error(1)
}

func (m *mockJobService) UpdateJob(ctx context.Context, id string, req request_models.UpdateJobRequest) (*response_models.JobResponse, error) {
	args := m.Called(ctx, id, req)
	out, _ := args.Get(0).(*response_models.JobResponse)
	return out, args.Error(1)
}

func (m *mockJobService) ReorderJob(ctx context.Context, id string, req request_models.ReorderJobRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

type mockCandidateService struct{ mock.Mock }

func (m *mockCandidateService) ListCandidates(ctx context.Context, req request_models.ListCandidatesRequest) (*response_models.CandidateListResponse, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*response_models.CandidateListResponse)
	return out, args.Error(1)
}

func (m *mockCandidateService) CreateCandidate(ctx context.Context, req request_models.CreateCandidateRequest) (*response_models.CandidateResponse, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*response_models.CandidateResponse)
	return out, args.Error(1)
}

func (m *mockCandidateService) UpdateCandidate(ctx context.Context, id string, req request_models.UpdateCandidateRequest, actor string) (*response_models.CandidateResponse, error) {
	args := m.Called(ctx, id, req, actor)
	out, _ := args.Get(0).(*response_models.CandidateResponse)
	return out, args.Error(1)
}

func (m *mockCandidateService) GetTimeline(ctx context.Context, id string) (*response_models.TimelineResponse, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*response_models.TimelineResponse)
	return out, args.Error(1)
}

func (m *mockCandidateService) AddNote(ctx context.Context, id string, req request_models.AddNoteRequest, actor string) (*response_models.NoteResponse, error) {
	args := m.Called(ctx, id, req, actor)
	out, _ := args.Get(0).(*response_models.NoteResponse)
	return out, args.Error(1)
}

type mockAssessmentService struct{ mock.Mock }

func (m *mockAssessmentService) builder(args mock.Arguments) (*response_models.BuilderResponse, error) {
	out, _ := args.Get(0).(*response_models.BuilderResponse)
	return out, args.Error(1)
}

func (m *mockAssessmentService) GetAssessment(ctx context.Context, jobID string) (*assessment.Assessment, error) {
	args := m.Called(ctx, jobID)
	out, _ := args.Get(0).(*assessment.Assessment)
	return out, args.Error(1)
}

func (m *mockAssessmentService) UpsertAssessment(ctx context.Context, jobID string, req request_models.UpsertAssessmentRequest) (*assessment.Assessment, bool, error) {
	args := m.Called(ctx, jobID, req)
	out, _ := args.Get(0).(*assessment.Assessment)
	return out, args.Bool(1), args.Error(2)
}

func (m *mockAssessmentService) AddSection(ctx context.Context, jobID string) (*response_models.BuilderResponse, error) {
	return m.builder(m.Called(ctx, jobID))
}

func (m *mockAssessmentService) UpdateSection(ctx context.Context, jobID, sectionID string, patch assessment.SectionPatch) (*response_models.BuilderResponse, error) {
	return m.builder(m.Called(ctx, jobID, sectionID, patch))
}

func (m *mockAssessmentService) DeleteSection(ctx context.Context, jobID, sectionID string) (*response_models.BuilderResponse, error) {
	return m.builder(m.Called(ctx, jobID, sectionID))
}

func (m *mockAssessmentService) AddQuestion(ctx context.Context, jobID, sectionID string) (*response_models.BuilderResponse, error) {
	return m.builder(m.Called(ctx, jobID, sectionID))
}

func (m *mockAssessmentService) UpdateQuestion(ctx context.Context, jobID, sectionID, questionID string, patch assessment.QuestionPatch) (*response_models.BuilderResponse, error) {
	return m.builder(m.Called(ctx, jobID, sectionID, questionID, patch))
}

func (m *mockAssessmentService) DeleteQuestion(ctx context.Context, jobID, sectionID, questionID string) (*response_models.BuilderResponse, error) {
	return m.builder(m.Called(ctx, jobID, sectionID, questionID))
}

func (m *mockAssessmentService) AddOption(ctx context.Context, jobID, sectionID, questionID string) (*response_models.BuilderResponse, error) {
	return m.builder(m.Called(ctx, jobID, sectionID, questionID))
}

func (m *mockAssessmentService) UpdateOption(ctx context.Context, jobID, sectionID, questionID string, index int, value string) (*response_models.BuilderResponse, error) {
	return m.builder(m.Called(ctx, jobID, sectionID, questionID, index, value))
}

func (m *mockAssessmentService) DeleteOption(ctx context.Context, jobID, sectionID, questionID string, index int) (*response_models.BuilderResponse, error) {
	return m.builder(m.Called(ctx, jobID, sectionID, questionID, index))
}

func (m *mockAssessmentService) VisibleQuestions(ctx context.Context, jobID string, req request_models.VisibilityRequest) (*response_models.VisibilityResponse, error) {
	args := m.Called(ctx, jobID, req)
	out, _ := args.Get(0).(*response_models.VisibilityResponse)
	return out, args.Error(1)
}

func (m *mockAssessmentService) Submit(ctx context.Context, jobID string, req request_models.SubmitAssessmentRequest) (*assessment.Response, assessment.Errors, error) {
	args := m.Called(ctx, jobID, req)
	out, _ := args.Get(0).(*assessment.Response)
	errs, _ := args.Get(1).(assessment.Errors)
	return out, errs, args.Error(2)
}

func (m *mockAssessmentService) GetResponse(ctx context.Context, jobID, candidateID string) (*assessment.Response, error) {
	args := m.Called(ctx, jobID, candidateID)
	out, _ := args.Get(0).(*assessment.Response)
	return out, args.Error(1)
}
