package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MounTainVSCO/oceans-api/internal/domain"
	"github.com/MounTainVSCO/oceans-api/internal/domain/entities"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return entities.ValidSlug(fl.Field().String())
	})
	v.RegisterValidation("sitedomain", func(fl validator.FieldLevel) bool {
		return entities.ValidSiteDomain(fl.Field().String())
	})

	return v
}

// Check runs the struct-tag rules on cmd and returns a *domain.ValidationError
// enumerating every violated field, or nil when the input is well formed.
func Check(cmd interface{}) error {
	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	violations := make([]domain.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, domain.FieldViolation{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return &domain.ValidationError{Violations: violations}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "slug":
		return "must contain only lowercase letters, digits and hyphens"
	case "sitedomain":
		return "must be an http(s) URL or a bare domain"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
