package mockdb

import (
	"context"

	"github.com/trezcool/escola/core/class"
)

type classRepository struct {
	db *classTable
}

var _ class.Repository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *DB) class.Repository {
	return &classRepository{db: db.class}
}

func (repo *classRepository) QueryAllClasses(_ context.Context) ([]class.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	classes := make([]class.Class, 0, len(repo.db.rows))
	for _, c := range repo.db.rows {
		classes = append(classes, copyClass(c))
	}
	return classes, nil
}
