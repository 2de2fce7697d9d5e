package echoapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginForm(username, password string) url.Values {
	form := make(url.Values)
	form.Set("username", username)
	form.Set("password", password)
	return form
}

func TestAuthAPI_login(t *testing.T) {
	app := initApp(testOptions())

	tests := []struct {
		name         string
		form         url.Values
		wantLocation string
		wantSession  bool
	}{
		{name: "first pair", form: loginForm("bilalab", "saymynamehhh"), wantLocation: "/", wantSession: true},
		{name: "second pair", form: loginForm("abdou", "bouker6666"), wantLocation: "/", wantSession: true},
		{name: "invalid pair", form: loginForm("bilalab", "bouker6666"), wantLocation: "/login?error=invalid"},
		{name: "unknown user", form: loginForm("ghost", "whatever"), wantLocation: "/login?error=invalid"},
		{name: "missing username", form: loginForm("", "saymynamehhh"), wantLocation: "/login?error=missing"},
		{name: "missing password", form: loginForm("bilalab", ""), wantLocation: "/login?error=missing"},
		{name: "missing both", form: make(url.Values), wantLocation: "/login?error=missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/login", tt.form)
			app.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
			if tt.wantSession {
				assert.NotEmpty(t, rec.Result().Cookies(), "expected a session cookie")
			}
		})
	}
}

func TestAuthAPI_username(t *testing.T) {
	app := initApp(testOptions())

	// no prior login: identity is absent
	req, rec := newRequest(http.MethodGet, "/api/username")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":null}`, rec.Body.String())

	// log in, then replay the session cookie
	req, rec = newRequest(http.MethodPost, "/login", loginForm("bilalab", "saymynamehhh"))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req, rec = newRequest(http.MethodGet, "/api/username")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":"bilalab"}`, rec.Body.String())
}

func TestAuthAPI_username_isReadOnly(t *testing.T) {
	app := initApp(testOptions())

	req, rec := newRequest(http.MethodGet, "/api/username")
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		assert.NotEqual(t, sessionName, c.Name, "whoAmI must not create a session")
	}
}
