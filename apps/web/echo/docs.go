package echoweb

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
	swgui "github.com/swaggest/swgui/v5cdn"
)

//go:embed static/openapi.yaml
var openapi []byte

func registerDocs(app *echo.Echo, title string) {
	ui := echo.WrapHandler(swgui.New(title, docsPath+"openapi.yaml", docsPath))

	app.GET(docsPath+"openapi.yaml", serveOpenapi)
	app.GET(docsPath, ui)
	app.GET("/api/docs", func(ctx echo.Context) error {
		return ctx.Redirect(http.StatusMovedPermanently, docsPath)
	})
}

func serveOpenapi(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", openapi)
}
