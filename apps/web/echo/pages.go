package echoweb

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/escola/core/class"
	"github.com/trezcool/escola/core/student"
	"github.com/trezcool/escola/core/table"
	exportsvc "github.com/trezcool/escola/services/export"
)

type pages struct {
	appName     string
	studentSvc  student.Service
	studentRepo student.Repository
	classSvc    class.Service
	classRepo   class.Repository
}

func registerPages(app *echo.Echo, deps ServerDeps) {
	p := &pages{
		appName:     deps.Conf.AppName,
		studentSvc:  deps.StudentSvc,
		studentRepo: deps.StudentRepo,
		classSvc:    deps.ClassSvc,
		classRepo:   deps.ClassRepo,
	}

	app.GET("/students", p.students)
	app.GET("/classes", p.classes)
	app.GET("/students/export.xlsx", p.exportStudents)
	app.GET("/classes/export.xlsx", p.exportClasses)
}

// The pages read straight from the store: only the API and the exports go through the services.

func (p *pages) students(ctx echo.Context) error {
	students, err := p.studentRepo.QueryAllStudents(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.Render(http.StatusOK, "table.html", tablePage{
		AppName: p.appName,
		Title:   "Alunos",
		Active:  "students",
		Export:  "/students/export.xlsx",
		Grid:    student.Table.Grid(students),
		Total:   len(students),
		Actives: countActive(students),
	})
}

func (p *pages) classes(ctx echo.Context) error {
	classes, err := p.classRepo.QueryAllClasses(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying classes")
	}
	return ctx.Render(http.StatusOK, "table.html", tablePage{
		AppName: p.appName,
		Title:   "Turmas",
		Active:  "classes",
		Export:  "/classes/export.xlsx",
		Grid:    class.Table.Grid(classes),
		Total:   len(classes),
		Actives: countActive(classes),
	})
}

func (p *pages) exportStudents(ctx echo.Context) error {
	students, err := p.studentSvc.List(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing students")
	}
	return sendXLSX(ctx, "alunos", "Alunos", student.Table.Grid(students))
}

func (p *pages) exportClasses(ctx echo.Context) error {
	classes, err := p.classSvc.List(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing classes")
	}
	return sendXLSX(ctx, "turmas", "Turmas", class.Table.Grid(classes))
}

func sendXLSX(ctx echo.Context, filename, sheet string, grid table.Grid) error {
	buf := new(bytes.Buffer)
	if err := exportsvc.WriteXLSX(buf, sheet, grid); err != nil {
		return errors.Wrapf(err, "exporting %s", filename)
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`.xlsx"`)
	return ctx.Blob(http.StatusOK, exportsvc.MIMEXLSX, buf.Bytes())
}
