package form

import (
	"fmt"

	"github.com/go-playground/validator"

	"eventdesk/internal/model"
)

// A single validator instance, as the package documentation recommends.
var validate = validator.New()

// ValidationError names the first failing field and rule of a submit. It is
// produced before any network call and is recoverable by user correction.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "datetime":
		return fmt.Sprintf("%s is not a valid timestamp", e.Field)
	case "resolved":
		return fmt.Sprintf("%s does not match a known user", e.Field)
	case "order":
		return fmt.Sprintf("%s must not be before startTime", e.Field)
	}
	return fmt.Sprintf("%s failed rule %q", e.Field, e.Rule)
}

// wire field names for the struct fields carrying validate tags.
var fieldNames = map[string]string{
	"Title":       "title",
	"Description": "description",
	"Image":       "image",
	"StartTime":   "startTime",
	"EndTime":     "endTime",
	"CategoryIDs": "categoryIds",
	"CreatedBy":   "createdBy",
}

// Validate checks the editable state against the submit rules: title,
// description, start and end time non-empty, creator present and resolved
// against the user collection, times parseable, and end not chronologically
// before start (equal instants allowed). Returns nil or the first failure.
func (c *Controller) Validate() *ValidationError {
	in := model.EventInput{
		Title:       c.fields.Title,
		Description: c.fields.Description,
		StartTime:   c.fields.StartTime,
		EndTime:     c.fields.EndTime,
		CreatedBy:   c.fields.CreatedBy,
	}
	if err := validate.Struct(in); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			fe := errs[0]
			name := fieldNames[fe.Field()]
			if name == "" {
				name = fe.Field()
			}
			return &ValidationError{Field: name, Rule: fe.Tag()}
		}
		return &ValidationError{Field: "form", Rule: "invalid"}
	}

	if _, ok := resolveCreator(c.fields.CreatedBy, c.users); !ok {
		return &ValidationError{Field: "createdBy", Rule: "resolved"}
	}

	start, ok := model.ParseEditValue(c.fields.StartTime)
	if !ok {
		return &ValidationError{Field: "startTime", Rule: "datetime"}
	}
	end, ok := model.ParseEditValue(c.fields.EndTime)
	if !ok {
		return &ValidationError{Field: "endTime", Rule: "datetime"}
	}
	if end.Before(start) {
		return &ValidationError{Field: "endTime", Rule: "order"}
	}

	return nil
}
