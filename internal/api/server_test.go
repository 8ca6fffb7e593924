package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/outlet-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/outlet-analytics-api/infrastructure/datasource/mocks"
	"github.com/vfg2006/outlet-analytics-api/internal/api/handler"
	"github.com/vfg2006/outlet-analytics-api/internal/config"
	"github.com/vfg2006/outlet-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/outlet-analytics-api/pkg/log"
	"github.com/vfg2006/outlet-analytics-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestNewHandler_Rotas(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{
		Server:    config.Server{CORSOrigins: []string{"*"}},
		Dashboard: config.Dashboard{CurrentYear: 2025, PreviousYear: 2024, ManagerTopN: 6, BranchTopN: 10},
	}

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Name().Return("sample").AnyTimes()
	source.EXPECT().Fetch(gomock.Any()).Return(datasource.SampleDataset(), nil).AnyTimes()

	service := aggregating.NewService(cfg, source)
	h := NewHandler(cfg, service, handler.CronJobServices{})

	// antes da carga todas as rotas respondem com o cabeçalho de dataset ausente
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/kpis", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "false", rec.Header().Get(handler.DatasetReadyHeader))
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationHeader))

	assert.NoError(t, service.Load(context.Background()))

	paths := []string{
		"/healthcheck",
		"/v1/dashboard/kpis",
		"/v1/sales/summary",
		"/v1/sales/trend",
		"/v1/sales/year-over-year",
		"/v1/sales/distribution",
		"/v1/branches",
		"/v1/branches/regions",
		"/v1/analytics/managers",
		"/v1/analytics/daily-trends",
		"/v1/analytics/correlation",
		"/v1/outlets",
		"/v1/reports/branches.xlsx",
		"/v1/cron/status",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Header().Get(handler.DatasetReadyHeader))
		})
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sales/trend?year=ontem", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/desconhecida", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
