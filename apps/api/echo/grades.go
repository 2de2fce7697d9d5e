package echoapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/katakurijs/gradify/core"
	"github.com/katakurijs/gradify/core/grades"
)

type gradesApi struct {
	svc    grades.Service
	logger core.Logger
}

func registerGradesAPI(app *echo.Echo, svc grades.Service, logger core.Logger) {
	api := gradesApi{svc: svc, logger: logger}
	app.GET("/api/display/:id", api.display)
}

// display relays the grading service's document verbatim. Any upstream
// problem degrades to the fixed fragment with a server-error status; the raw
// error only goes to the log.
func (api *gradesApi) display(ctx echo.Context) error {
	apogee := ctx.Param("id")

	doc, err := api.svc.FetchRenderedGrades(ctx.Request().Context(), apogee)
	if err != nil {
		api.logger.Error(fmt.Sprintf("fetching grades for %s: %v", apogee, err), err)
		return ctx.HTML(http.StatusInternalServerError, grades.DegradedFragment)
	}
	return ctx.HTML(http.StatusOK, doc)
}
