package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/katakurijs/gradify/core"
	"github.com/katakurijs/gradify/core/student"
)

func appHTTPErrorHandler(err error, c echo.Context) {
	var code int
	var message interface{}

	switch err := err.(type) {
	case *echo.HTTPError:
		if err.Internal != nil {
			if herr, ok := err.Internal.(*echo.HTTPError); ok {
				err = herr
			}
		}
		code = err.Code
		message = err.Message
	case validator.ValidationErrors:
		fldErrs := make(map[string]string)
		for _, vErr := range err {
			fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
		}
		code = http.StatusBadRequest
		message = fldErrs
	case *core.ValidationError:
		if err.Fields != nil {
			fldErrs := make(map[string]string)
			for _, fErr := range err.Fields {
				fldErrs[fErr.Field] = fErr.Error
			}
			message = fldErrs
		} else {
			message = err.Error()
		}
		code = http.StatusBadRequest
	default:
		if errors.Is(err, student.ErrDataUnavailable) {
			// directory source unreadable: a server fault, never an empty result
			code = http.StatusInternalServerError
			message = student.ErrDataUnavailable.Error()
			break
		}
		// any other error is a server error
		code = http.StatusInternalServerError
		message = http.StatusText(http.StatusInternalServerError)
	}

	if c.Echo().Debug {
		message = err.Error()
	}
	if m, ok := message.(string); ok {
		message = echo.Map{"error": m}
	}

	// Send response
	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead { // Issue #608
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, message)
		}
		if err != nil {
			c.Echo().Logger.Error(err)
		}
	}
}
