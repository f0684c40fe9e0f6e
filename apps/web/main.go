package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/trezcool/escola/apps/di"
	echoweb "github.com/trezcool/escola/apps/web/echo"
	"github.com/trezcool/escola/core"
	"github.com/trezcool/escola/core/class"
	"github.com/trezcool/escola/core/integrity"
	"github.com/trezcool/escola/core/student"
	tracesvc "github.com/trezcool/escola/services/tracing"
)

func main() {
	c := di.New()

	must(c.Invoke(func(
		conf *core.Config,
		logger core.Logger,
		studentRepo student.Repository,
		classRepo class.Repository,
		checker *integrity.Checker,
		server *echoweb.Server,
	) {
		// =========================================================================
		// Initialize App

		logger.Info(fmt.Sprintf("Application initializing : version %q, data source %q", conf.Build, conf.DataSource))
		defer logger.Info("Application stopped")

		shutdownTracing, err := tracesvc.Setup(conf, os.Stdout)
		if err != nil {
			logger.Fatal(fmt.Sprintf("setting up tracing: %v", err), err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
			defer cancel()
			if err := shutdownTracing(ctx); err != nil {
				logger.Error(fmt.Sprintf("could not flush spans: %v", err), err)
			}
		}()

		checkIntegrity(logger, studentRepo, classRepo, checker)

		// =========================================================================
		// Start Debug Service
		//
		// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
		// /debug/vars - Added to the default mux by importing the expvar package.

		// Expose important info under /debug/vars.
		expvar.NewString("build").Set(conf.Build)
		expvar.NewString("env").Set(conf.Env)
		expvar.NewString("dataSource").Set(conf.DataSource)

		go func() {
			if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
				logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
			}
		}()

		// =========================================================================
		// Start Web Service

		go func() {
			server.Start()
		}()

		// =========================================================================
		// Shutdown

		select {
		case err := <-server.Errors():
			logger.Fatal(fmt.Sprintf("server error: %v", err), err)

		case sig := <-server.ShutdownSignal():
			logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

			// give outstanding requests a deadline for completion
			ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
			defer cancel()

			// asking listener to shut down and shed load
			if err := server.Shutdown(ctx); err != nil {
				logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

				if err = server.Close(); err != nil {
					logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
				}
			}
		}
	}))
}

// checkIntegrity logs the seed data issues; they are reported, never fixed.
func checkIntegrity(logger core.Logger, studentRepo student.Repository, classRepo class.Repository, checker *integrity.Checker) {
	ctx := context.Background()

	students, err := studentRepo.QueryAllStudents(ctx)
	if err != nil {
		logger.Error("querying students", err)
		return
	}
	classes, err := classRepo.QueryAllClasses(ctx)
	if err != nil {
		logger.Error("querying classes", err)
		return
	}

	checker.Check(students, classes).Log(logger)
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
