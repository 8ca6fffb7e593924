package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/outlet-analytics-api/pkg/apiErrors"
)

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}

func TestRouter(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(
		Route{Path: "/v1/outlets", Method: http.MethodGet, Handler: okHandler("outlets")},
		Route{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     okHandler("run"),
			Middlewares: []func(http.Handler) http.Handler{tag("primeiro"), tag("segundo")},
		},
	))

	tests := []struct {
		name   string
		method string
		path   string
		status int
		body   string
		code   string
	}{
		{name: "Rota registrada", method: http.MethodGet, path: "/v1/outlets", status: http.StatusOK, body: "outlets"},
		{name: "Rota com parâmetro", method: http.MethodPost, path: "/v1/cron/all/run", status: http.StatusOK, body: "run"},
		{name: "Rota inexistente", method: http.MethodGet, path: "/v1/nada", status: http.StatusNotFound, code: apiErrors.ErrRouteNotFound},
		{name: "Método não permitido", method: http.MethodDelete, path: "/v1/outlets", status: http.StatusMethodNotAllowed, code: apiErrors.ErrMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Contains(t, rec.Body.String(), tt.code)
				return
			}
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}

	assert.Equal(t, []string{"primeiro", "segundo"}, order)
	assert.Equal(t, []string{"GET /v1/outlets", "POST /v1/cron/:type/run"}, rt.Routes())
}

func TestRouter_RotaDuplicada(t *testing.T) {
	route := Route{Path: "/v1/outlets", Method: http.MethodGet, Handler: okHandler("x")}

	require.PanicsWithValue(t, "rota duplicada: GET /v1/outlets", func() {
		New(WithRoutes(route, route))
	})
}
