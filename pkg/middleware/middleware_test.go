package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/outlet-analytics-api/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCors(t *testing.T) {
	tests := []struct {
		name     string
		origins  []string
		method   string
		origin   string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:    "Origem liberada",
			origins: []string{"http://localhost:3000"},
			method:  http.MethodGet,
			origin:  "http://localhost:3000",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:    "Origem não liberada",
			origins: []string{"http://localhost:3000"},
			method:  http.MethodGet,
			origin:  "http://evil.com",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:    "Curinga libera qualquer origem",
			origins: []string{"*"},
			method:  http.MethodGet,
			origin:  "http://qualquer.com",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "http://qualquer.com", rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:    "Preflight não chega ao handler",
			origins: []string{"*"},
			method:  http.MethodOptions,
			origin:  "http://localhost:3000",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/v1/kpis", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.origins)(okHandler()).ServeHTTP(rec, req)
			tt.validate(t, rec)
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, rec.Header().Get(CorrelationHeader))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/kpis", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
