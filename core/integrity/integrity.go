// Package integrity reports data problems in student and class collections.
// Nothing is fixed or rejected here: callers decide what to do with a Report.
package integrity

import (
	"fmt"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/escola/core"
	"github.com/trezcool/escola/core/class"
	"github.com/trezcool/escola/core/student"
	"github.com/trezcool/escola/core/table"
)

// Entities
const (
	EntityStudent = "student"
	EntityClass   = "class"
)

// Kind classifies an Issue.
type Kind string

const (
	KindDuplicateID       Kind = "duplicate_id"
	KindDanglingReference Kind = "dangling_reference"
	KindInvalidField      Kind = "invalid_field"
)

type (
	Issue struct {
		Entity  string `json:"entity"`
		ID      string `json:"id"`
		Kind    Kind   `json:"kind"`
		Field   string `json:"field,omitempty"`
		Message string `json:"message"`
	}

	Report struct {
		OK     bool    `json:"ok"`
		Issues []Issue `json:"issues"`
	}

	Checker struct {
		validate   *validator.Validate
		translator ut.Translator
	}
)

// Table renders issues.
var Table = table.MustNew(
	table.Column[Issue]{Key: "entity", Label: "Entidade", Value: func(i Issue) any { return i.Entity }},
	table.Column[Issue]{Key: "id", Label: "ID", Value: func(i Issue) any { return i.ID }},
	table.Column[Issue]{Key: "kind", Label: "Tipo", Value: func(i Issue) any { return string(i.Kind) }},
	table.Column[Issue]{Key: "field", Label: "Campo", Value: func(i Issue) any { return i.Field }},
	table.Column[Issue]{Key: "message", Label: "Mensagem", Value: func(i Issue) any { return i.Message }},
)

// ByKind returns the issues of the given kind, in report order.
func (r Report) ByKind(kind Kind) []Issue {
	var issues []Issue
	for _, iss := range r.Issues {
		if iss.Kind == kind {
			issues = append(issues, iss)
		}
	}
	return issues
}

// LogFields returns the issue as logger extras.
func (i Issue) LogFields() map[string]interface{} {
	return map[string]interface{}{
		"entity": i.Entity,
		"id":     i.ID,
		"kind":   string(i.Kind),
		"field":  i.Field,
	}
}

// Log warns about every issue of the report.
func (r Report) Log(logger core.Logger) {
	for _, iss := range r.Issues {
		logger.Warn(fmt.Sprintf("integrity: %s %s: %s", iss.Entity, iss.ID, iss.Message), iss.LogFields())
	}
}

// NewChecker returns a Checker; validate must have the core and class validators registered.
func NewChecker(validate *validator.Validate, translator ut.Translator) *Checker {
	return &Checker{validate: validate, translator: translator}
}

// Check inspects students then classes, each in record order.
func (c *Checker) Check(students []student.Student, classes []class.Class) Report {
	issues := make([]Issue, 0)

	classIDs := make(map[string]struct{}, len(classes))
	for _, cls := range classes {
		classIDs[cls.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(students))
	for _, s := range students {
		if _, dup := seen[s.ID]; dup {
			issues = append(issues, duplicateIssue(EntityStudent, s.ID))
		}
		seen[s.ID] = struct{}{}

		issues = append(issues, c.fieldIssues(EntityStudent, s.ID, s)...)

		if s.ClassID == "" {
			continue // reported as invalid field
		}
		if _, ok := classIDs[s.ClassID]; !ok {
			issues = append(issues, Issue{
				Entity:  EntityStudent,
				ID:      s.ID,
				Kind:    KindDanglingReference,
				Field:   "class_id",
				Message: "class " + s.ClassID + " does not exist",
			})
		}
	}

	seen = make(map[string]struct{}, len(classes))
	for _, cls := range classes {
		if _, dup := seen[cls.ID]; dup {
			issues = append(issues, duplicateIssue(EntityClass, cls.ID))
		}
		seen[cls.ID] = struct{}{}

		issues = append(issues, c.fieldIssues(EntityClass, cls.ID, cls)...)
	}

	return Report{OK: len(issues) == 0, Issues: issues}
}

func (c *Checker) fieldIssues(entity, id string, record interface{}) []Issue {
	err := c.validate.Struct(record)
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Issue{{Entity: entity, ID: id, Kind: KindInvalidField, Message: err.Error()}}
	}
	issues := make([]Issue, 0, len(vErrs))
	for _, vErr := range vErrs {
		issues = append(issues, Issue{
			Entity:  entity,
			ID:      id,
			Kind:    KindInvalidField,
			Field:   vErr.Field(),
			Message: vErr.Translate(c.translator),
		})
	}
	return issues
}

func duplicateIssue(entity, id string) Issue {
	return Issue{
		Entity:  entity,
		ID:      id,
		Kind:    KindDuplicateID,
		Field:   "id",
		Message: entity + " id " + id + " is used more than once",
	}
}
