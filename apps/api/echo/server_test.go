package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServer_pageShells(t *testing.T) {
	app := initApp(testOptions())

	for _, path := range []string{"/", "/search", "/display/19001234", "/login"} {
		t.Run(path, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, path)
			app.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
		})
	}
}

func TestServer_unknownRoute(t *testing.T) {
	app := initApp(testOptions())

	req, rec := newRequest(http.MethodGet, "/nope")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
