package mockdb

import (
	"time"

	"github.com/trezcool/escola/core"
	"github.com/trezcool/escola/core/class"
	"github.com/trezcool/escola/core/student"
)

// SeedStudents returns the default student records.
// Student "3" references class "2", which is not part of SeedClasses.
func SeedStudents() []student.Student {
	return []student.Student{
		{
			ID:       "1",
			FullName: "Ana Júlia Souza",
			Status:   core.StatusActive,
			Grade:    "5º Ano",
			Shift:    core.ShiftMorning,
			ClassID:  "1",
		},
		{
			ID:       "2",
			FullName: "Pedro Henrique Lima",
			Status:   core.StatusActive,
			Grade:    "5º Ano",
			Shift:    core.ShiftMorning,
			ClassID:  "1",
		},
		{
			ID:       "3",
			FullName: "Mariana Costa Ribeiro",
			Status:   core.StatusInactive,
			Grade:    "4º Ano",
			Shift:    core.ShiftAfternoon,
			ClassID:  "2",
		},
	}
}

// SeedClasses returns the default class records.
func SeedClasses() []class.Class {
	return []class.Class{
		{
			ID:          "1",
			Name:        "5º Ano A",
			Shift:       core.ShiftMorning,
			Weekdays:    []string{"Segunda", "Quarta", "Sexta"},
			StartTime:   "07:30",
			EndTime:     "11:30",
			Status:      core.StatusActive,
			MaxStudents: 15,
			CreatedAt:   time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}
