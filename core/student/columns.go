package student

import (
	"github.com/trezcool/escola/core/table"
)

// Columns returns the column definitions of the students table, in display order.
func Columns() []table.Column[Student] {
	return []table.Column[Student]{
		{Key: "id", Label: "ID", Value: func(s Student) any { return s.ID }},
		{Key: "full_name", Label: "Nome", Value: func(s Student) any { return s.FullName }},
		{Key: "status", Label: "Status", Value: func(s Student) any { return s.Status }},
		{Key: "grade", Label: "Série", Value: func(s Student) any { return s.Grade }},
		{Key: "shift", Label: "Turno", Value: func(s Student) any { return s.Shift }},
		{Key: "class_id", Label: "Turma", Value: func(s Student) any { return s.ClassID }},
	}
}

// Table renders students with Columns.
var Table = table.MustNew(Columns()...)
