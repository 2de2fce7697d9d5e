package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katakurijs/gradify/core/student"
	"github.com/katakurijs/gradify/storage/directory"
)

func TestStudentAPI_search(t *testing.T) {
	app := initApp(testOptions())

	tests := []struct {
		name     string
		path     string
		wantCode int
		want     []student.Record
	}{
		{name: "match", path: "/api/search?q=ali", wantCode: http.StatusOK, want: []student.Record{
			{Name: "Ali Ben", Filiere: "CS", Apogee: "123"},
			{Name: "EL ALAMI YOUSSEF", Filiere: "Physique S3", Apogee: "20001111"},
		}},
		{name: "case folded", path: "/api/search?q=BEN", wantCode: http.StatusOK, want: []student.Record{
			{Name: "Ali Ben", Filiere: "CS", Apogee: "123"},
			{Name: "BENNANI SARA", Filiere: "Geologie S5", Apogee: "19005678"},
		}},
		{name: "no match", path: "/api/search?q=zzz", wantCode: http.StatusOK, want: []student.Record{}},
		{name: "empty query matches all", path: "/api/search?q=", wantCode: http.StatusOK, want: testDirectory()},
		{name: "absent query matches all", path: "/api/search", wantCode: http.StatusOK, want: testDirectory()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			var got []student.Record
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStudentAPI_search_exactPayload(t *testing.T) {
	opts := testOptions()
	opts.StudentSvc = student.NewService(directory.NewInMemRepository([]student.Record{
		{Name: "Ali Ben", Filiere: "CS", Apogee: "123"},
	}))
	app := initApp(opts)

	req, rec := newRequest(http.MethodGet, "/api/search?q=ali")
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"Ali Ben","filiere":"CS","apogee":"123"}]`, rec.Body.String())
}

func TestStudentAPI_search_dataUnavailable(t *testing.T) {
	opts := testOptions()
	opts.StudentSvc = student.NewService(directory.NewFailingRepository(student.ErrDataUnavailable))
	app := initApp(opts)

	req, rec := newRequest(http.MethodGet, "/api/search?q=ali")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"student directory unavailable"}`, rec.Body.String())
}
