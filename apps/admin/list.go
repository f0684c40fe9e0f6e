package main

import (
	"context"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/trezcool/escola/core/class"
	"github.com/trezcool/escola/core/student"
	"github.com/trezcool/escola/core/table"
)

func (cli *commandLine) listStudents() error {
	students, err := cli.studentSvc.List(context.Background())
	if err != nil {
		return errors.Wrap(err, "listing students")
	}
	return cli.printGrid(student.Table.Grid(students))
}

func (cli *commandLine) listClasses() error {
	classes, err := cli.classSvc.List(context.Background())
	if err != nil {
		return errors.Wrap(err, "listing classes")
	}
	return cli.printGrid(class.Table.Grid(classes))
}

// printGrid writes aligned columns to a terminal and tab-separated values otherwise.
func (cli *commandLine) printGrid(grid table.Grid) error {
	if !cli.stdoutIsTerminal() {
		return writeTSV(cli.out, grid)
	}
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	if err := writeTSV(w, grid); err != nil {
		return err
	}
	return w.Flush()
}

func writeTSV(w io.Writer, grid table.Grid) error {
	if _, err := io.WriteString(w, strings.Join(grid.Headers, "\t")+"\n"); err != nil {
		return err
	}
	for _, row := range grid.Rows {
		if _, err := io.WriteString(w, strings.Join(row, "\t")+"\n"); err != nil {
			return err
		}
	}
	return nil
}
