package echoapi

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/katakurijs/gradify/core/visitor"
)

// visitorNotifierMiddleware reports every inbound request to the site owner.
// The event is snapshotted from the request and handed to a goroutine before
// the primary handler runs, so geolocation and email latency never sit on the
// response path. Side effect only; the response is untouched.
func visitorNotifierMiddleware(notifier *visitor.Notifier, sync bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			evt := visitor.NewEvent(
				visitor.ClientIP(req.Header.Get(echo.HeaderXForwardedFor), req.RemoteAddr),
				req.UserAgent(),
				req.Referer(),
				req.URL.Path,
			)

			// detached from the request context: cancelling the request must
			// not cancel the notification
			if sync {
				notifier.Notify(context.Background(), evt)
			} else {
				go notifier.Notify(context.Background(), evt)
			}

			return next(ctx)
		}
	}
}
