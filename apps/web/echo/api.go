package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/escola/core/class"
	"github.com/trezcool/escola/core/integrity"
	"github.com/trezcool/escola/core/student"
)

type api struct {
	studentSvc student.Service
	classSvc   class.Service
	checker    *integrity.Checker
}

func registerAPI(g *echo.Group, deps ServerDeps) {
	a := &api{
		studentSvc: deps.StudentSvc,
		classSvc:   deps.ClassSvc,
		checker:    deps.Checker,
	}

	g.GET("/students", a.listStudents)
	g.GET("/classes", a.listClasses)
	g.GET("/integrity", a.checkIntegrity)
}

func (a *api) listStudents(ctx echo.Context) error {
	students, err := a.studentSvc.List(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing students")
	}
	if students == nil {
		students = []student.Student{}
	}
	return ctx.JSON(http.StatusOK, students)
}

func (a *api) listClasses(ctx echo.Context) error {
	classes, err := a.classSvc.List(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing classes")
	}
	if classes == nil {
		classes = []class.Class{}
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (a *api) checkIntegrity(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	students, err := a.studentSvc.List(reqCtx)
	if err != nil {
		return errors.Wrap(err, "listing students")
	}
	classes, err := a.classSvc.List(reqCtx)
	if err != nil {
		return errors.Wrap(err, "listing classes")
	}
	return ctx.JSON(http.StatusOK, a.checker.Check(students, classes))
}
