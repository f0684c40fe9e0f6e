package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/trezcool/escola/core/class"
	"github.com/trezcool/escola/core/integrity"
	"github.com/trezcool/escola/core/student"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp      = errors.New("help provided")
	errIntegrity = errors.New("integrity issues found")
)

// Entities
const (
	entityStudents = "students"
	entityClasses  = "classes"
)

type commandLine struct {
	out        io.Writer
	outFd      int // file descriptor behind out
	studentSvc student.Service
	classSvc   class.Service
	checker    *integrity.Checker
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  students - list the students")
	fmt.Fprintln(cli.out, "  classes - list the classes")
	fmt.Fprintln(cli.out, "  check - report data integrity issues")
	fmt.Fprintln(cli.out, "  export -entity students|classes -o FILE - export a table as an XLSX spreadsheet")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	exportCmd := flag.NewFlagSet("export", flag.ContinueOnError)
	exportCmd.SetOutput(cli.out)
	exportEntity := exportCmd.String("entity", "", "The table to export: students|classes.")
	exportOutput := exportCmd.String("o", "", "The XLSX file to write.")

	switch args[1] {
	case entityStudents:
		return cli.listStudents()
	case entityClasses:
		return cli.listClasses()
	case "check":
		return cli.check()
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			if err == flag.ErrHelp {
				return errHelp
			}
			return err
		}
		if *exportOutput == "" || (*exportEntity != entityStudents && *exportEntity != entityClasses) {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportEntity, *exportOutput)
	default:
		cli.printUsage()
		return errHelp
	}
}

// stdoutIsTerminal tells whether the output should be aligned for humans.
func (cli *commandLine) stdoutIsTerminal() bool {
	return isTerminalFunc(cli.outFd)
}
