package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/escola/core/integrity"
)

func (cli *commandLine) check() error {
	ctx := context.Background()

	students, err := cli.studentSvc.List(ctx)
	if err != nil {
		return errors.Wrap(err, "listing students")
	}
	classes, err := cli.classSvc.List(ctx)
	if err != nil {
		return errors.Wrap(err, "listing classes")
	}

	report := cli.checker.Check(students, classes)
	if report.OK {
		fmt.Fprintln(cli.out, "no integrity issues found")
		return nil
	}
	if err = cli.printGrid(integrity.Table.Grid(report.Issues)); err != nil {
		return err
	}
	return errors.Wrapf(errIntegrity, "%d issue(s)", len(report.Issues))
}
