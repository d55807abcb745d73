package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// RespondErrorWithData is used when the client needs details, e.g. the
// per-question validation messages of a rejected submission.
func RespondErrorWithData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

type errorMapping struct {
	target  error
	code    int
	message string
}

var serviceErrors = []errorMapping{
	{ErrJobNotFound, http.StatusNotFound, "Job not found"},
	{ErrCandidateNotFound, http.StatusNotFound, "Candidate not found"},
	{ErrAssessmentNotFound, http.StatusNotFound, "Assessment not found"},
	{ErrResponseNotFound, http.StatusNotFound, "Response not found"},
	{ErrInvalidReorder, http.StatusBadRequest, "Invalid reorder request"},
	{ErrSlugTaken, http.StatusConflict, "Slug already in use"},
	{ErrInvalidStage, http.StatusBadRequest, "Invalid stage"},
}

func HandleServiceError(c *gin.Context, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			RespondError(c, m.code, m.message)
			return
		}
	}

	switch {
	case errors.Is(err, ErrInvalidConditional), errors.Is(err, ErrInvalidAnswer):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled service error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
