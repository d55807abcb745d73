package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Stage    string `binding:"omitempty,stage"`
	Status   string `binding:"omitempty,jobstatus"`
	Email    string `binding:"required,email"`
	PageSize int    `binding:"omitempty,max=100"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, Register(v))
	return v
}

func TestCustomRules(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(sample{Stage: "tech", Status: "archived", Email: "a@b.co"}))
	assert.NoError(t, v.Struct(sample{Email: "a@b.co"}))

	err := v.Struct(sample{Stage: "interview", Status: "draft", Email: "nope", PageSize: 500})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"stage":    "The stage field must be a pipeline stage",
		"status":   "The status field must be active or archived",
		"email":    "The email field must be a valid email address",
		"pageSize": "The pageSize field must not exceed 100",
	}, FieldErrors(err))
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Equal(t, map[string]string{"body": "unexpected EOF"}, FieldErrors(errors.New("unexpected EOF")))
}

func TestFieldErrors_UsesWireNames(t *testing.T) {
	type body struct {
		CandidateID string `json:"candidateId" binding:"required"`
		JobID       string `form:"jobId" binding:"required"`
	}

	err := newValidator(t).Struct(body{})

	assert.Equal(t, map[string]string{
		"candidateId": "The candidateId field is required",
		"jobId":       "The jobId field is required",
	}, FieldErrors(err))
}
