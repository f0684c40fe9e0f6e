package student

import (
	"github.com/trezcool/escola/core"
)

// Student is a pupil enrolled (or formerly enrolled) in the school.
// ClassID references a class.Class but is not enforced.
type Student struct {
	ID       string      `json:"id" validate:"required"`
	FullName string      `json:"full_name" validate:"required"`
	Status   core.Status `json:"status" validate:"required,status"`
	Grade    string      `json:"grade" validate:"required"`
	Shift    core.Shift  `json:"shift" validate:"required,shift"`
	ClassID  string      `json:"class_id" validate:"required"`
}

func (s Student) IsActive() bool {
	return s.Status.IsActive()
}
