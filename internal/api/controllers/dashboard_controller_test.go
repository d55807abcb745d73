package controllers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"talentflow/internal/models/request_models"
	"talentflow/internal/models/response_models"
	"talentflow/pkg/utils"
)

type mockDashboardService struct{ mock.Mock }

func (m *mockDashboardService) BuildDashboard(ctx context.Context, req request_models.DashboardRequest) (*response_models.DashboardReport, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*response_models.DashboardReport)
	return out, args.Error(1)
}

func dashboardRouter(svc *mockDashboardService) *gin.Engine {
	r := newRouter("recruiter-1")
	r.GET("/api/dashboard", NewDashboardController(svc).GetDashboard)
	return r
}

func TestDashboardController_GetDashboard(t *testing.T) {
	svc := new(mockDashboardService)
	svc.On("BuildDashboard", mock.Anything, request_models.DashboardRequest{LastDays: 14, Interval: "week"}).
		Return(&response_models.DashboardReport{KPIs: response_models.PipelineKPIs{ActiveJobs: 3}}, nil)

	w, env := do(t, dashboardRouter(svc), http.MethodGet, "/api/dashboard?lastDays=14&interval=week", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"activeJobs":3`)
	svc.AssertExpectations(t)
}

func TestDashboardController_RejectsBadInterval(t *testing.T) {
	svc := new(mockDashboardService)

	w, env := do(t, dashboardRouter(svc), http.MethodGet, "/api/dashboard?interval=year", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, string(env.Data), "interval")
	svc.AssertNotCalled(t, "BuildDashboard", mock.Anything, mock.Anything)
}

func TestDashboardController_DatabaseError(t *testing.T) {
	svc := new(mockDashboardService)
	svc.On("BuildDashboard", mock.Anything, request_models.DashboardRequest{}).
		Return(nil, fmt.Errorf("%w: boom", utils.ErrDatabaseError))

	w, _ := do(t, dashboardRouter(svc), http.MethodGet, "/api/dashboard", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	svc.AssertExpectations(t)
}
