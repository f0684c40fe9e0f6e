// Package mockdb is a static, in-memory stand-in for the school backend.
//
// Its tables are filled once when the DB is opened and are never mutated afterwards;
// repositories hand out copies so callers cannot alter the seed data.
package mockdb

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/escola/core/class"
	"github.com/trezcool/escola/core/student"
)

var errDuplicateID = errors.New("duplicate primary key")

type (
	DB struct {
		student *studentTable
		class   *classTable
	}

	studentTable struct {
		sync.RWMutex
		rows []student.Student // insertion order
	}

	classTable struct {
		sync.RWMutex
		rows []class.Class // insertion order
	}
)

// Open returns a DB filled with the default seed data.
func Open() (*DB, error) {
	return OpenWith(SeedStudents(), SeedClasses())
}

// OpenWith returns a DB filled with the given records, in order.
// Primary keys must be unique per table; foreign keys are not checked.
func OpenWith(students []student.Student, classes []class.Class) (*DB, error) {
	if err := checkUnique(len(students), func(i int) string { return students[i].ID }); err != nil {
		return nil, errors.Wrap(err, "loading students")
	}
	if err := checkUnique(len(classes), func(i int) string { return classes[i].ID }); err != nil {
		return nil, errors.Wrap(err, "loading classes")
	}

	db := &DB{
		student: &studentTable{rows: make([]student.Student, 0, len(students))},
		class:   &classTable{rows: make([]class.Class, 0, len(classes))},
	}
	db.student.rows = append(db.student.rows, students...)
	for _, c := range classes {
		db.class.rows = append(db.class.rows, copyClass(c))
	}
	return db, nil
}

func checkUnique(n int, id func(i int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		if _, ok := seen[id(i)]; ok {
			return errors.Wrapf(errDuplicateID, "id %q", id(i))
		}
		seen[id(i)] = struct{}{}
	}
	return nil
}

func copyClass(c class.Class) class.Class {
	if c.Weekdays != nil {
		days := make([]string, len(c.Weekdays))
		copy(days, c.Weekdays)
		c.Weekdays = days
	}
	return c
}
