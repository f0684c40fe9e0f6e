// Package di wires the application dependencies with a dig container.
package di

import (
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoweb "github.com/trezcool/escola/apps/web/echo"
	"github.com/trezcool/escola/core"
	"github.com/trezcool/escola/core/class"
	"github.com/trezcool/escola/core/integrity"
	"github.com/trezcool/escola/core/student"
	"github.com/trezcool/escola/services/apiclient"
	logsvc "github.com/trezcool/escola/services/logger"
	"github.com/trezcool/escola/storage/mockdb"
)

// ServerParams gathers the dependencies of the web server.
type ServerParams struct {
	dig.In

	Conf        *core.Config
	Logger      core.Logger
	StudentSvc  student.Service
	StudentRepo student.Repository
	ClassSvc    class.Service
	ClassRepo   class.Repository
	Checker     *integrity.Checker
	Translator  ut.Translator
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "ESCOLA : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	return logger
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	class.InitValidators(validate, translator)
	return validate
}

func newStudentService(conf *core.Config, repo student.Repository, client core.APIClient) (student.Service, error) {
	switch conf.DataSource {
	case core.SourceMock:
		return student.NewService(repo, conf), nil
	case core.SourceRemote:
		return student.NewRemoteService(client), nil
	default:
		return nil, errUnknownSource(conf.DataSource)
	}
}

func newClassService(conf *core.Config, repo class.Repository, client core.APIClient) (class.Service, error) {
	switch conf.DataSource {
	case core.SourceMock:
		return class.NewService(repo, conf), nil
	case core.SourceRemote:
		return class.NewRemoteService(client), nil
	default:
		return nil, errUnknownSource(conf.DataSource)
	}
}

func errUnknownSource(source string) error {
	return core.NewValidationError(
		errors.Errorf("unknown data source %q", source),
		core.FieldError{Field: "data.source", Error: "must be one of: " + core.SourceMock + ", " + core.SourceRemote},
	)
}

func newServer(params ServerParams) *echoweb.Server {
	return echoweb.NewServer(echoweb.ServerDeps{
		Conf:        params.Conf,
		Logger:      params.Logger,
		StudentSvc:  params.StudentSvc,
		StudentRepo: params.StudentRepo,
		ClassSvc:    params.ClassSvc,
		ClassRepo:   params.ClassRepo,
		Checker:     params.Checker,
		Translator:  params.Translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	return NewWithConfig(core.NewConfig)
}

// NewWithConfig is New with a custom configuration constructor.
func NewWithConfig(newConfig func() *core.Config) *dig.Container {
	c := dig.New()

	must(c.Provide(newConfig))
	must(c.Provide(newLogger))
	must(c.Provide(mockdb.Open))
	must(c.Provide(mockdb.NewStudentRepository))
	must(c.Provide(mockdb.NewClassRepository))
	must(c.Provide(apiclient.NewFromConfig, dig.As(new(core.APIClient))))
	must(c.Provide(newStudentService))
	must(c.Provide(newClassService))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(integrity.NewChecker))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
