package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katakurijs/gradify/apps/api/echo"
	"github.com/katakurijs/gradify/core"
	"github.com/katakurijs/gradify/core/auth"
	"github.com/katakurijs/gradify/core/student"
	"github.com/katakurijs/gradify/core/visitor"
	"github.com/katakurijs/gradify/services/email"
	"github.com/katakurijs/gradify/services/geoip"
	"github.com/katakurijs/gradify/services/grades"
	"github.com/katakurijs/gradify/services/logger"
	"github.com/katakurijs/gradify/storage/directory"
)

func main() {
	conf := core.Conf
	std := log.New(os.Stderr, conf.AppName+" ", log.LstdFlags)

	// set up services
	var logSvc core.Logger
	if conf.RollbarToken != "" {
		logSvc = logsvc.NewRollbarLogger(std, conf)
	} else {
		logSvc = logsvc.NewStdLogger(std)
	}

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logSvc)
	}

	studentSvc := student.NewService(directory.NewJSONRepository(conf.DirectoryFile))
	gradeSvc := gradessvc.NewHTTPService(conf.GradesBaseURL)
	verifier := auth.NewStaticVerifier(conf.AuthUsers)
	notifier := visitor.NewNotifier(geoipsvc.NewIPAPIService(), mailSvc, conf.NotifyEmail, logSvc)

	if !notifier.Enabled() {
		logSvc.Warn("visitor notifications disabled: GRADIFY_NOTIFYEMAIL unset")
	}
	if conf.GradesBaseURL == "" {
		logSvc.Warn("grading service unconfigured: GRADIFY_GRADESBASEURL unset, grade lookups will degrade")
	}

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:       conf.Server.Addr,
			StudentSvc: studentSvc,
			GradeSvc:   gradeSvc,
			Verifier:   verifier,
			Notifier:   notifier,
			Logger:     logSvc,
		},
	)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdown
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			logSvc.Error("stopping server: " + err.Error())
		}
	}()

	logSvc.Info("starting " + conf.AppName + " on " + conf.Server.Addr)
	app.Start()
}
