package class

import (
	"github.com/trezcool/escola/core/table"
)

// Columns returns the column definitions of the classes table, in display order.
func Columns() []table.Column[Class] {
	return []table.Column[Class]{
		{Key: "id", Label: "ID", Value: func(c Class) any { return c.ID }},
		{Key: "name", Label: "Nome", Value: func(c Class) any { return c.Name }},
		{Key: "shift", Label: "Turno", Value: func(c Class) any { return c.Shift }},
		{Key: "weekdays", Label: "Dias", Value: func(c Class) any { return c.Weekdays }},
		{Key: "schedule", Label: "Horário", Value: func(c Class) any { return c.Schedule() }},
		{Key: "status", Label: "Status", Value: func(c Class) any { return c.Status }},
		{Key: "max_students", Label: "Vagas", Value: func(c Class) any { return c.MaxStudents }},
		{Key: "created_at", Label: "Criada em", Value: func(c Class) any { return c.CreatedAt }},
	}
}

// Table renders classes with Columns.
var Table = table.MustNew(Columns()...)
