package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Unleash/unleash-client-go/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/netra-cyber/netra-portal/identity"
)

const backendURL = "http://localhost:8001"

var router *httprouter.Router
var resp *httptest.ResponseRecorder

var testWg sync.WaitGroup

var unleashFake *fakeUnleashServer

func TestMain(m *testing.M) {
	setDefaults()

	unleashFake = newFakeUnleash()
	for flag := range featureKeys {
		unleashFake.setEnabled(flag, true)
	}
	viper.Set("unleash_path", unleashFake.url())

	err := initFeatures(BasicListener{log: logger},
		unleash.WithRefreshInterval(20*time.Millisecond),
		unleash.WithDisableMetrics(true),
	)
	if err != nil {
		panic(err)
	}
	for flag := range featureKeys {
		toggleFeature(flag, true)
	}

	code := m.Run()
	unleashFake.srv.Close()
	os.Exit(code)
}

// toggleFeature flips a flag on the fake server and waits for the client to see it.
func toggleFeature(name string, enabled bool) {
	unleashFake.setEnabled(name, enabled)
	deadline := time.Now().Add(5 * time.Second)
	for isEnabled(name) != enabled && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
}

func setup() {
	setDefaults()
	viper.Set("backend_url", backendURL)
	if err := configure(); err != nil {
		panic(err)
	}
	now = func() time.Time { return time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC) }

	router = httprouter.New()
	resp = httptest.NewRecorder()

	addRoutes(router)
}

func tokenFor(username string, role identity.Role) string {
	claims := identity.Claims{
		Role:    string(role),
		Station: "Hazratganj",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		panic(err)
	}
	return s
}

// signedIn attaches a session for an officer with role.
func signedIn(req *http.Request, role identity.Role) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: tokenFor("officer."+string(role), role)})
	return req
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// flashOf decodes the banner a redirect left behind.
func flashOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookie && c.Value != "" {
			r := httptest.NewRequest("GET", "/", nil)
			r.AddCookie(c)
			alerts := takeFlash(httptest.NewRecorder(), r)
			if assert.Len(t, alerts, 1) {
				return alerts[0].Kind + ": " + alerts[0].Message
			}
		}
	}
	return ""
}

func TestStartServer(t *testing.T) {
	setDefaults()
	router := httprouter.New()
	testWg.Add(1)
	srv := startServer(router, &testWg)
	assert.Equal(t, ":"+viper.GetString("listen_port"), srv.Addr)
	srv.Close()
}

func TestCSRFRejectsFormWithoutToken(t *testing.T) {
	setup()

	protect(router).ServeHTTP(resp, postForm("/login", url.Values{"username": {"si.verma"}, "password": {"pw"}}))

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestCSRFFieldRenderedOnForms(t *testing.T) {
	setup()

	protect(router).ServeHTTP(resp, httptest.NewRequest("GET", "/login", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `name="csrf_token"`)
}

func TestUnknownSessionRedirectsToLogin(t *testing.T) {
	setup()

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "not-a-jwt"})
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/login", resp.Header().Get("Location"))
}

func TestNoSessionRedirectsToLogin(t *testing.T) {
	setup()

	router.ServeHTTP(resp, httptest.NewRequest("GET", "/requests", nil))

	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/login", resp.Header().Get("Location"))
}
