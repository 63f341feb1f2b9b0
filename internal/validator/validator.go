// Package validator recomputes the full, ordered list of user-visible form
// errors. The order is part of the UI contract: email, title, then the
// active categories in display order.
package validator

import (
	"regexp"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dst-portal/upload-portal/internal/models"
	"github.com/dst-portal/upload-portal/pkg/i18n"
)

// Deliberately loose: anything of the shape local@domain.tld. The backend
// performs the authoritative address check; rejecting here only locks out
// unusual but valid institutional addresses.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type scalarFields struct {
	Email        string `validate:"notblank,portal_email"`
	ProjectTitle string `validate:"notblank"`
}

// Validator checks a form snapshot against the submission rules. It holds
// no state between calls; every call recomputes the error list.
type Validator struct {
	validate *playground.Validate
	tr       *i18n.Translator
}

func New(tr *i18n.Translator) *Validator {
	v := playground.New()
	// Registration only fails for empty tag names.
	_ = v.RegisterValidation("notblank", func(fl playground.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("portal_email", func(fl playground.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return &Validator{validate: v, tr: tr}
}

// Validate returns the translated error messages for the current form and
// category set, empty when the form is submittable. File type and size are
// not checked here; the backend enforces both.
func (v *Validator) Validate(form *models.FormState, categories []models.FileCategory) []string {
	var errs []string

	scalars := scalarFields{Email: form.Email, ProjectTitle: form.ProjectTitle}
	if err := v.validate.Struct(scalars); err != nil {
		if fieldErrs, ok := err.(playground.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				errs = append(errs, v.scalarMessage(fe))
			}
		}
	}

	for i := range categories {
		cat := &categories[i]
		if cat.IsRequired(form) && len(cat.Files) == 0 {
			errs = append(errs, v.tr.T(cat.Label)+" "+v.tr.T("error.categoryRequired"))
		}
	}

	return errs
}

func (v *Validator) scalarMessage(fe playground.FieldError) string {
	switch fe.StructField() {
	case "Email":
		if fe.Tag() == "notblank" {
			return v.tr.T("error.emailRequired")
		}
		return v.tr.T("error.emailInvalid")
	case "ProjectTitle":
		return v.tr.T("error.titleRequired")
	default:
		return v.tr.T("error.title")
	}
}
