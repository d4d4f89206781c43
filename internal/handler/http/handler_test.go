package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/mock"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/models"
)

const (
	testSessionID = "sess-1"
	testUserID    = "user-1"
)

// fixture is a Handler wired to gomock services.
type fixture struct {
	h *Handler

	auth    *mock.MockAuthService
	trips   *mock.MockTripService
	entries *mock.MockEntryService
	storage *mock.MockStorageService
	profile *mock.MockProfileService
	appInfo *mock.MockAppInfoService

	router http.Handler
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			SessionSecret: "test-secret",
			PublicBaseURL: "http://localhost:8080",
		},
		Session: config.Session{
			CookieName: "tj_session",
			TTL:        time.Hour,
		},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		auth:    mock.NewMockAuthService(ctrl),
		trips:   mock.NewMockTripService(ctrl),
		entries: mock.NewMockEntryService(ctrl),
		storage: mock.NewMockStorageService(ctrl),
		profile: mock.NewMockProfileService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:    f.auth,
		TripService:    f.trips,
		EntryService:   f.entries,
		StorageService: f.storage,
		ProfileService: f.profile,
		AppInfoService: f.appInfo,
	}

	bus := synchronizer.NewBus(logger.Nop())
	t.Cleanup(bus.Close)

	f.h = NewHandler(services, bus, synchronizer.NewProfileStore(), testConfig(), logger.Nop())
	f.router = f.h.Init()
	return f
}

// session is the session every signed-in request of the tests resolves to.
func (f *fixture) session() models.Session {
	return models.Session{
		ID:          testSessionID,
		AccessToken: "access-token",
		User:        models.User{ID: testUserID, Email: "ana@example.com"},
	}
}

// signIn adds a valid session cookie to req. The navbar profile is put in
// the session's profile state so pages do not load it.
func (f *fixture) signIn(req *http.Request) *http.Request {
	f.auth.EXPECT().Session(gomock.Any(), testSessionID).Return(f.session(), nil).AnyTimes()
	f.h.profiles.State(testSessionID).Update(&models.Profile{ID: testUserID, DisplayName: models.Ptr("Ana")})
	req.AddCookie(&http.Cookie{Name: "tj_session", Value: f.h.signValue(testSessionID)})
	return req
}

func (f *fixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func responseCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// flashText decodes the flash cookie set by a redirect.
func (f *fixture) flashText(t *testing.T, rr *httptest.ResponseRecorder) *flash {
	t.Helper()
	c := responseCookie(rr, flashCookieName)
	require.NotNil(t, c, "flash cookie expected")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	return f.h.popFlash(httptest.NewRecorder(), req)
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_UsesConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RequestTimeout = 5 * time.Second

	svc := &service.Services{}
	h := NewHandler(svc, synchronizer.NewBus(logger.Nop()), synchronizer.NewProfileStore(), cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, "tj_session", h.cookieName)
	assert.Equal(t, "test-secret", h.cookieSecret)
	assert.Equal(t, time.Hour, h.sessionTTL)
	assert.Equal(t, 5*time.Second, h.timeout)
	assert.False(t, h.secureCookies, "plain http base url")
	assert.NotNil(t, h.pages)
	assert.NotNil(t, h.validator)
}

func TestNewHandler_SecureCookiesOnHTTPS(t *testing.T) {
	cfg := testConfig()
	cfg.App.PublicBaseURL = "https://journal.example.com"

	h := NewHandler(&service.Services{}, synchronizer.NewBus(logger.Nop()), synchronizer.NewProfileStore(), cfg, logger.Nop())
	assert.True(t, h.secureCookies)
}

// ─────────────────────────────────────────────
// Init - route registration
// ─────────────────────────────────────────────

func TestInit_PublicRoutes(t *testing.T) {
	paths := []struct {
		path  string
		title string
	}{
		{path: "/", title: "Travel Journal"},
		{path: "/about", title: "About"},
		{path: "/terms", title: "Terms of Service"},
		{path: "/privacy", title: "Privacy Policy"},
		{path: "/cookies", title: "Cookie Policy"},
		{path: "/login", title: "Sign in"},
		{path: "/register", title: "Create account"},
	}

	for _, tt := range paths {
		t.Run(tt.path, func(t *testing.T) {
			f := newFixture(t)
			rr := f.serve(httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, rr.Body.String(), tt.title)
		})
	}
}

func TestInit_ProtectedRoutesRedirectToLogin(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/dashboard"},
		{http.MethodGet, "/dashboard/trips"},
		{http.MethodGet, "/dashboard/create-trip"},
		{http.MethodPost, "/dashboard/create-trip"},
		{http.MethodGet, "/dashboard/trips/t1"},
		{http.MethodGet, "/dashboard/trips/t1/edit"},
		{http.MethodPost, "/dashboard/trips/t1/delete"},
		{http.MethodPost, "/dashboard/trips/t1/entries"},
		{http.MethodGet, "/dashboard/trips/t1/entries/e1/edit"},
		{http.MethodGet, "/dashboard/edit-profile"},
		{http.MethodGet, "/profile"},
	}

	for _, tt := range routes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			f := newFixture(t)
			rr := f.serve(httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusSeeOther, rr.Code)
			assert.Equal(t, "/login", rr.Header().Get("Location"))
		})
	}
}

func TestInit_EventsWithoutSession(t *testing.T) {
	f := newFixture(t)
	rr := f.serve(httptest.NewRequest(http.MethodGet, "/events", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
}

func TestInit_UnknownRouteRendersNotFound(t *testing.T) {
	f := newFixture(t)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/nowhere", nil),
		httptest.NewRequest(http.MethodDelete, "/login", nil),
	} {
		rr := f.serve(req)
		assert.Equal(t, http.StatusNotFound, rr.Code, req.Method+" "+req.URL.Path)
		assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	}
}

func TestInit_HealthzAndStatic(t *testing.T) {
	f := newFixture(t)

	rr := f.serve(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())

	rr = f.serve(httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "EventSource")
}

func TestInit_SignedInUserSkipsLoginPage(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/login", "/register"} {
		rr := f.serve(f.signIn(httptest.NewRequest(http.MethodGet, path, nil)))
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/dashboard", rr.Header().Get("Location"))
	}
}

func TestInit_PagesAreCompressed(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := f.serve(req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}
