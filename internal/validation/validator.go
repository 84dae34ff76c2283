package validation

import (
	"errors"
	"reflect"
	"strings"

	"quizcraft/internal/domain"
	"quizcraft/internal/dto"

	"github.com/go-playground/validator/v10"
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json field names, not Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateGenerateRequest validates the question-generation request body.
func (v *Validator) ValidateGenerateRequest(req *dto.GenerateQuestionsRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if err := v.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				errs = append(errs, domain.NewMissingFieldError(fe.Field()))
			}
		} else {
			errs = append(errs, domain.NewInvalidFieldError("request", "malformed request body"))
		}
	}

	if strings.TrimSpace(req.Type) != "" {
		if _, ok := domain.ParseQuestionType(req.Type); !ok {
			errs = append(errs, domain.NewInvalidFieldError("type",
				"must be one of mcq, true_false, short, essay"))
		}
	}

	return errs
}
