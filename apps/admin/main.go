package main

import (
	"log"
	"os"

	"github.com/trezcool/escola/apps/di"
	"github.com/trezcool/escola/core/class"
	"github.com/trezcool/escola/core/integrity"
	"github.com/trezcool/escola/core/student"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var cli *commandLine
	err := di.New().Invoke(func(studentSvc student.Service, classSvc class.Service, checker *integrity.Checker) {
		cli = &commandLine{
			out:        os.Stdout,
			outFd:      int(os.Stdout.Fd()),
			studentSvc: studentSvc,
			classSvc:   classSvc,
			checker:    checker,
		}
	})
	errAndDie(err)

	// start CLI
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
