package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"talentflow/internal/models/db_models"
	"talentflow/internal/pipeline"
)

var messages = map[string]string{
	"required":  "The %s field is required",
	"email":     "The %s field must be a valid email address",
	"min":       "The %s field must be at least %s",
	"max":       "The %s field must not exceed %s",
	"oneof":     "The %s field must be one of: %s",
	"stage":     "The %s field must be a pipeline stage",
	"jobstatus": "The %s field must be active or archived",
}

// RegisterBindingRules adds the service's custom rules to gin's validator.
func RegisterBindingRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return Register(v)
}

// Register adds the custom rules to v and makes errors report fields by
// their json or form name.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(fieldName)
	if err := v.RegisterValidation("stage", validateStage); err != nil {
		return err
	}
	return v.RegisterValidation("jobstatus", validateJobStatus)
}

func validateStage(fl validator.FieldLevel) bool {
	return pipeline.Stage(fl.Field().String()).Valid()
}

func validateJobStatus(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == db_models.JobStatusActive || s == db_models.JobStatusArchived
}

// FieldErrors turns a binding error into field -> message. Errors that are
// not validation errors (malformed JSON, wrong types) are reported under
// "body".
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		format, ok := messages[fe.Tag()]
		if !ok {
			out[field] = fmt.Sprintf("The %s field is invalid", field)
			continue
		}
		if strings.Count(format, "%s") == 2 {
			out[field] = fmt.Sprintf(format, field, fe.Param())
		} else {
			out[field] = fmt.Sprintf(format, field)
		}
	}
	return out
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
