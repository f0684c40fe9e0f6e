package class

import (
	"time"

	"github.com/trezcool/escola/core"
)

// Class is a group of students sharing a schedule.
// StartTime and EndTime are optional "HH:MM" strings.
type Class struct {
	ID          string      `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Shift       core.Shift  `json:"shift" validate:"required,shift"`
	Weekdays    []string    `json:"weekdays" validate:"dive,weekday"`
	StartTime   string      `json:"start_time,omitempty" validate:"omitempty,hhmm"`
	EndTime     string      `json:"end_time,omitempty" validate:"omitempty,hhmm"`
	Status      core.Status `json:"status" validate:"required,status"`
	MaxStudents int         `json:"max_students" validate:"gt=0"`
	CreatedAt   time.Time   `json:"created_at"` // UTC
}

func (c Class) IsActive() bool {
	return c.Status.IsActive()
}

// Schedule returns the "HH:MM-HH:MM" time range of the class, or "" when it has none.
func (c Class) Schedule() string {
	switch {
	case c.StartTime != "" && c.EndTime != "":
		return c.StartTime + "-" + c.EndTime
	case c.StartTime != "":
		return c.StartTime
	default:
		return c.EndTime
	}
}
