package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"talentflow/internal/api/controllers"
	"talentflow/internal/config"
	"talentflow/pkg/metrics"
	"talentflow/pkg/utils"
)

// testRouter wires controllers without services; only requests stopped by
// middleware or served by the router itself may be sent.
func testRouter(t *testing.T) (*gin.Engine, *utils.TokenManager) {
	t.Helper()
	cfg := &config.Config{Server: config.ServerConfig{Mode: gin.TestMode}}
	reg := prometheus.NewRegistry()
	tokens := utils.NewTokenManager("secret", time.Hour)

	r := ProvideRouter(cfg, zap.NewNop(), reg, metrics.NewMetrics(reg), tokens,
		controllers.NewJobController(nil),
		controllers.NewCandidateController(nil),
		controllers.NewAssessmentController(nil),
		controllers.NewDashboardController(nil))
	return r, tokens
}

func TestRouter_Health(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func TestRouter_WriteRoutesNeedRecruiter(t *testing.T) {
	r, tokens := testRouter(t)
	viewer, err := tokens.CreateToken("bob", "viewer")
	require.NoError(t, err)

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/jobs"},
		{http.MethodPatch, "/api/jobs/j1/reorder"},
		{http.MethodPost, "/api/candidates"},
		{http.MethodPost, "/api/candidates/c1/notes"},
		{http.MethodPut, "/api/assessments/j1"},
		{http.MethodDelete, "/api/assessments/j1/sections/s1/questions/q1/options/0"},
		{http.MethodGet, "/api/dashboard"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(rt.method, rt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			req := httptest.NewRequest(rt.method, rt.path, nil)
			req.Header.Set("Authorization", "Bearer "+viewer)
			w = httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	r, _ := testRouter(t)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `talentflow_http_requests_total{method="GET",route="/health",status="200"} 1`)
}
