package echoapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/katakurijs/gradify/core"
	"github.com/katakurijs/gradify/core/auth"
	"github.com/katakurijs/gradify/core/grades"
	"github.com/katakurijs/gradify/core/student"
	"github.com/katakurijs/gradify/storage/directory"
)

// test doubles shared by the handler tests

type stubGradeService struct {
	doc string
	err error
}

var _ grades.Service = (*stubGradeService)(nil)

func (svc *stubGradeService) FetchRenderedGrades(_ context.Context, _ string) (string, error) {
	return svc.doc, svc.err
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func testDirectory() []student.Record {
	return []student.Record{
		{Name: "Ali Ben", Filiere: "CS", Apogee: "123"},
		{Name: "BENNANI SARA", Filiere: "Geologie S5", Apogee: "19005678"},
		{Name: "EL ALAMI YOUSSEF", Filiere: "Physique S3", Apogee: "20001111"},
	}
}

func testOptions() *Options {
	return &Options{
		Addr:           ":0",
		DisableReqLogs: true,
		StudentSvc:     student.NewService(directory.NewInMemRepository(testDirectory())),
		GradeSvc:       &stubGradeService{doc: "<table><tr><th>Module</th></tr></table>"},
		Verifier: auth.NewStaticVerifier(map[string]string{
			"bilalab": "saymynamehhh",
			"abdou":   "bouker6666",
		}),
		Logger: nopLogger{},
	}
}

func initApp(opts *Options) Server {
	core.Conf.Debug = false
	core.Conf.TestMode = true
	return NewServer(opts)
}

func newRequest(method, path string, form ...url.Values) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	if len(form) > 0 {
		req = httptest.NewRequest(method, path, strings.NewReader(form[0].Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	return req, rec
}
