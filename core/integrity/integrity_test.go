package integrity_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/escola/core"
	"github.com/trezcool/escola/core/class"
	"github.com/trezcool/escola/core/integrity"
	"github.com/trezcool/escola/core/student"
	"github.com/trezcool/escola/storage/mockdb"
	"github.com/trezcool/escola/tests"
)

func newChecker() *integrity.Checker {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	class.InitValidators(validate, translator)
	return integrity.NewChecker(validate, translator)
}

// The seed data references a class that does not exist: it must be reported, not hidden.
func TestChecker_Check_seedDanglingClass(t *testing.T) {
	report := newChecker().Check(mockdb.SeedStudents(), mockdb.SeedClasses())

	assert.False(t, report.OK)
	assert.Equal(t, []integrity.Issue{{
		Entity:  integrity.EntityStudent,
		ID:      "3",
		Kind:    integrity.KindDanglingReference,
		Field:   "class_id",
		Message: "class 2 does not exist",
	}}, report.Issues)
}

func TestChecker_Check(t *testing.T) {
	checker := newChecker()

	okClass := testutil.NewClass("1", "5º Ano A", 15)
	emptyClass := testutil.NewClass("2", "Sem vagas", 0)
	okStudent := testutil.NewStudent("1", "Ana", "1")

	tests := []struct {
		name     string
		students []student.Student
		classes  []class.Class
		want     []integrity.Issue
	}{
		{name: "empty"},
		{name: "consistent", students: []student.Student{okStudent}, classes: []class.Class{okClass}},
		{
			name:     "duplicate student id",
			students: []student.Student{okStudent, testutil.NewStudent("1", "Bia", "1")},
			classes:  []class.Class{okClass},
			want: []integrity.Issue{
				{Entity: "student", ID: "1", Kind: integrity.KindDuplicateID, Field: "id", Message: "student id 1 is used more than once"},
			},
		},
		{
			name:    "duplicate class id",
			classes: []class.Class{okClass, okClass},
			want: []integrity.Issue{
				{Entity: "class", ID: "1", Kind: integrity.KindDuplicateID, Field: "id", Message: "class id 1 is used more than once"},
			},
		},
		{
			name:    "max_students must be positive",
			classes: []class.Class{emptyClass},
			want: []integrity.Issue{
				{Entity: "class", ID: "2", Kind: integrity.KindInvalidField, Field: "max_students", Message: "max_students must be greater than 0"},
			},
		},
		{
			name: "invalid student and dangling reference",
			students: []student.Student{
				{ID: "5", FullName: "Caio", Status: "Ativa", Grade: "1º Ano", Shift: core.ShiftMorning, ClassID: "9"},
			},
			classes: []class.Class{okClass},
			want: []integrity.Issue{
				{Entity: "student", ID: "5", Kind: integrity.KindInvalidField, Field: "status", Message: "status must be one of: Ativo, Inativo"},
				{Entity: "student", ID: "5", Kind: integrity.KindDanglingReference, Field: "class_id", Message: "class 9 does not exist"},
			},
		},
		{
			name:     "missing class reference is an invalid field only",
			students: []student.Student{testutil.NewStudent("6", "Davi", "")},
			want: []integrity.Issue{
				{Entity: "student", ID: "6", Kind: integrity.KindInvalidField, Field: "class_id", Message: "this field is required"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := checker.Check(tt.students, tt.classes)
			if tt.want == nil {
				assert.True(t, report.OK)
				assert.Empty(t, report.Issues)
				return
			}
			assert.False(t, report.OK)
			assert.Equal(t, tt.want, report.Issues)
		})
	}
}

func TestReport_ByKind(t *testing.T) {
	report := integrity.Report{Issues: []integrity.Issue{
		{ID: "1", Kind: integrity.KindInvalidField},
		{ID: "2", Kind: integrity.KindDanglingReference},
		{ID: "3", Kind: integrity.KindInvalidField},
	}}

	got := report.ByKind(integrity.KindInvalidField)
	assert.Len(t, got, 2)
	assert.Equal(t, "3", got[1].ID)
	assert.Empty(t, report.ByKind(integrity.KindDuplicateID))
}

func TestTable(t *testing.T) {
	grid := integrity.Table.Grid([]integrity.Issue{{Entity: "student", ID: "3", Kind: integrity.KindDanglingReference, Field: "class_id", Message: "class 2 does not exist"}})
	assert.Equal(t, []string{"Entidade", "ID", "Tipo", "Campo", "Mensagem"}, grid.Headers)
	assert.Equal(t, [][]string{{"student", "3", "dangling_reference", "class_id", "class 2 does not exist"}}, grid.Rows)
}

type warning struct {
	msg  string
	args []interface{}
}

type recordingLogger struct {
	core.Logger
	warnings []warning
}

func (l *recordingLogger) Warn(msg string, args ...interface{}) {
	l.warnings = append(l.warnings, warning{msg: msg, args: args})
}

// Rollbar only takes errors, requests and maps as extras: issues are logged as maps.
func TestReport_Log(t *testing.T) {
	report := newChecker().Check(mockdb.SeedStudents(), mockdb.SeedClasses())
	logger := &recordingLogger{}

	report.Log(logger)

	assert.Len(t, logger.warnings, len(report.Issues))
	assert.Equal(t, warning{
		msg: "integrity: student 3: class 2 does not exist",
		args: []interface{}{map[string]interface{}{
			"entity": "student",
			"id":     "3",
			"kind":   "dangling_reference",
			"field":  "class_id",
		}},
	}, logger.warnings[0])
}
