package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
)

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

// makeRequest creates a test request with a buffer-backed logger in context.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return injectLogger(req, zerolog.New(buf))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:             "page",
			method:           http.MethodGet,
			path:             "/dashboard",
			handlerStatus:    http.StatusOK,
			handlerResponse:  "<html></html>",
			checkLogContains: []string{`"level":"info"`, `"method":"GET"`, `"uri":"/dashboard"`, `"status":200`, `"size":13`},
		},
		{
			name:             "redirect after post",
			method:           http.MethodPost,
			path:             "/dashboard/create-trip",
			handlerStatus:    http.StatusSeeOther,
			checkLogContains: []string{`"level":"info"`, `"status":303`},
		},
		{
			name:             "not found stays info",
			method:           http.MethodGet,
			path:             "/u/nobody",
			handlerStatus:    http.StatusNotFound,
			checkLogContains: []string{`"level":"info"`, `"status":404`},
		},
		{
			name:             "bad form",
			method:           http.MethodPost,
			path:             "/login",
			handlerStatus:    http.StatusUnprocessableEntity,
			checkLogContains: []string{`"level":"warn"`, `"status":422`},
		},
		{
			name:             "server error",
			method:           http.MethodGet,
			path:             "/dashboard/trips",
			handlerStatus:    http.StatusInternalServerError,
			checkLogContains: []string{`"level":"error"`, `"status":500`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerResponse))
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
			assert.Contains(t, buf.String(), `"duration"`)
		})
	}
}

func TestWithLogging_SkipsHealthz(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/healthz", &buf))

	assert.Equal(t, "ok", rr.Body.String())
	assert.Empty(t, buf.String())
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/", &buf))

	// статус не записан - в логе 0
	assert.True(t, strings.Contains(buf.String(), `"status":0`))
}
