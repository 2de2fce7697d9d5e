package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/katakurijs/gradify/core"
	"github.com/katakurijs/gradify/core/auth"
)

type (
	LoginRequest struct {
		Username string `json:"username" form:"username" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	UsernameResponse struct {
		Username *string `json:"username"`
	}

	authApi struct {
		verifier auth.Verifier
	}
)

func registerAuthAPI(app *echo.Echo, verifier auth.Verifier) {
	api := authApi{verifier: verifier}
	app.POST("/login", api.login)
	app.GET("/api/username", api.username)
}

// login checks the submitted pair and redirects: to the home view on success,
// back to the login page with an error hint otherwise. Which of the two
// fields was wrong is never disclosed.
func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return ctx.Redirect(http.StatusFound, "/login?error=missing")
	}
	data.Username = core.CleanString(data.Username)
	if err := core.Validate.Struct(&data); err != nil {
		return ctx.Redirect(http.StatusFound, "/login?error=missing")
	}

	if err := api.verifier.Verify(data.Username, data.Password); err != nil {
		switch errors.Cause(err) {
		case auth.ErrMissingCredentials:
			return ctx.Redirect(http.StatusFound, "/login?error=missing")
		case auth.ErrInvalidCredentials:
			return ctx.Redirect(http.StatusFound, "/login?error=invalid")
		default:
			return errors.Wrap(err, "verifying credentials")
		}
	}

	if err := setSessionUsername(ctx, data.Username); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusFound, "/")
}

func (api *authApi) username(ctx echo.Context) error {
	res := UsernameResponse{}
	if username, ok := currentUsername(ctx); ok {
		res.Username = &username
	}
	return ctx.JSON(http.StatusOK, res)
}
