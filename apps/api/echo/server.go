package echoapi

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/katakurijs/gradify/core"
	"github.com/katakurijs/gradify/core/auth"
	"github.com/katakurijs/gradify/core/grades"
	"github.com/katakurijs/gradify/core/student"
	"github.com/katakurijs/gradify/core/visitor"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool

		StudentSvc *student.Service
		GradeSvc   grades.Service
		Verifier   auth.Verifier
		Notifier   *visitor.Notifier
		Logger     core.Logger

		// SyncNotifications dispatches visitor notifications on the request
		// goroutine; tests only.
		SyncNotifications bool
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := core.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	store := sessions.NewCookieStore([]byte(conf.SecretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(conf.Server.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	s.app.Use(session.Middleware(store))

	if s.opts.Notifier != nil && s.opts.Notifier.Enabled() {
		s.app.Use(visitorNotifierMiddleware(s.opts.Notifier, s.opts.SyncNotifications))
	}

	s.app.HTTPErrorHandler = appHTTPErrorHandler
	s.app.Debug = conf.Debug

	// page shells + assets
	publicDir := filepath.Join(conf.WorkDir, "assets", "public")
	s.app.Static("/js", filepath.Join(publicDir, "js"))
	s.app.GET("/", servePage(publicDir, "index.html"))
	s.app.GET("/search", servePage(publicDir, "search.html"))
	s.app.GET("/display/:id", servePage(publicDir, "display.html"))
	s.app.GET("/login", servePage(publicDir, "login.html"))

	registerAuthAPI(s.app, s.opts.Verifier)
	registerStudentAPI(s.app, s.opts.StudentSvc)
	registerGradesAPI(s.app, s.opts.GradeSvc, s.opts.Logger)
}

func servePage(publicDir, name string) echo.HandlerFunc {
	path := filepath.Join(publicDir, "views", name)
	return func(ctx echo.Context) error {
		return ctx.File(path)
	}
}

func (s *server) Start() {
	if err := s.app.Start(s.opts.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.app.Logger.Fatal(err)
	}
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
