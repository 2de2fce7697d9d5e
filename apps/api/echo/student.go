package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/katakurijs/gradify/core/student"
)

type studentApi struct {
	svc *student.Service
}

func registerStudentAPI(app *echo.Echo, svc *student.Service) {
	api := studentApi{svc: svc}
	app.GET("/api/search", api.search)
}

// search returns directory records matching ?q= by name. An absent q matches
// the whole directory.
func (api *studentApi) search(ctx echo.Context) error {
	results, err := api.svc.Search(ctx.Request().Context(), ctx.QueryParam("q"))
	if err != nil {
		return errors.Wrap(err, "searching directory")
	}
	return ctx.JSON(http.StatusOK, results)
}
