package listctl

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
)

// Draft is the unvalidated input for a new interview.
type Draft struct {
	CandidateName string       `json:"candidate_name" validate:"required"`
	JobTitle      string       `json:"job_title" validate:"required"`
	ScheduledAt   string       `json:"scheduled_at" validate:"required"`
	Status        model.Status `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Notes         string       `json:"notes"`
}

const (
	requiredTag  = "required"
	requiredText = "this field is required"

	invalidTimeText = "must be a valid date and time"
	pastTimeText    = "must be in the future"
)

// timeLayouts are tried in order. The layouts without a zone are read in the clock's location.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
}

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterTranslation(
		requiredTag, translator,
		func(t ut.Translator) error { return t.Add(requiredTag, requiredText, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(requiredTag, fe.Field())
			return s
		},
	)
}

// ParseTime parses s using the accepted input layouts.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date and time %q", s)
}

// clean trims the free-text fields of d.
func (d Draft) clean() Draft {
	d.CandidateName = strings.TrimSpace(d.CandidateName)
	d.JobTitle = strings.TrimSpace(d.JobTitle)
	d.ScheduledAt = strings.TrimSpace(d.ScheduledAt)
	d.Status = model.Status(strings.ToLower(strings.TrimSpace(string(d.Status))))
	return d
}

// validateDraft checks d and returns the parsed schedule time.
// When requireFuture is set, the time must be strictly after now.
func validateDraft(d Draft, now time.Time, requireFuture bool) (time.Time, *ValidationError) {
	verr := &ValidationError{}

	if err := validate.Struct(d); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				verr.add(fe.Field(), fe.Translate(translator))
			}
		}
	}

	var at time.Time
	if d.ScheduledAt != "" {
		t, err := ParseTime(d.ScheduledAt, now.Location())
		switch {
		case err != nil:
			verr.add("scheduled_at", invalidTimeText)
		case requireFuture && !t.After(now):
			verr.add("scheduled_at", pastTimeText)
		default:
			at = t
		}
	}

	if !verr.empty() {
		return time.Time{}, verr
	}
	return at, nil
}

// validateStatus reports a field error when s is not a known status.
func validateStatus(s model.Status) *ValidationError {
	in := struct {
		Status model.Status `json:"status" validate:"required,oneof=scheduled completed cancelled"`
	}{Status: s}

	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verr := &ValidationError{}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			verr.add(fe.Field(), fe.Translate(translator))
		}
	}
	if verr.empty() {
		verr.add("status", "invalid status")
	}
	return verr
}
