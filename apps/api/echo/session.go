package echoapi

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	sessionName        = "gradify_session"
	sessionUsernameKey = "username"
)

// setSessionUsername attaches the authenticated username to the session; the
// cookie is (re)issued with the configured TTL.
func setSessionUsername(ctx echo.Context, username string) error {
	sess, err := session.Get(sessionName, ctx)
	if err != nil {
		return errors.Wrap(err, "getting session")
	}
	sess.Values[sessionUsernameKey] = username
	if err := sess.Save(ctx.Request(), ctx.Response()); err != nil {
		return errors.Wrap(err, "saving session")
	}
	return nil
}

// currentUsername is a pure read: no session is created, nothing is saved.
func currentUsername(ctx echo.Context) (string, bool) {
	sess, err := session.Get(sessionName, ctx)
	if err != nil {
		return "", false
	}
	username, ok := sess.Values[sessionUsernameKey].(string)
	return username, ok && username != ""
}
