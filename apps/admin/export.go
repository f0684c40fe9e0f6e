package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/trezcool/escola/core/class"
	"github.com/trezcool/escola/core/student"
	"github.com/trezcool/escola/core/table"
	exportsvc "github.com/trezcool/escola/services/export"
)

func (cli *commandLine) export(entity, path string) error {
	ctx := context.Background()

	var (
		grid  table.Grid
		sheet string
	)
	switch entity {
	case entityStudents:
		students, err := cli.studentSvc.List(ctx)
		if err != nil {
			return errors.Wrap(err, "listing students")
		}
		grid, sheet = student.Table.Grid(students), "Alunos"
	case entityClasses:
		classes, err := cli.classSvc.List(ctx)
		if err != nil {
			return errors.Wrap(err, "listing classes")
		}
		grid, sheet = class.Table.Grid(classes), "Turmas"
	default:
		return errors.Errorf("unknown entity %q", entity)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating export file")
	}
	if err = exportsvc.WriteXLSX(f, sheet, grid); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(err, "closing export file")
	}

	fmt.Fprintf(cli.out, "%d %s exported to %s\n", len(grid.Rows), entity, path)
	return nil
}
