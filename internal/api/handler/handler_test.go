package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/outlet-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
	"github.com/vfg2006/outlet-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/outlet-analytics-api/internal/usecases/aggregating/mocks"
	"github.com/vfg2006/outlet-analytics-api/internal/usecases/exporting"
	"github.com/vfg2006/outlet-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var defaultYears = domain.Years{Current: 2025, Previous: 2024}

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		validate func(t *testing.T, params aggregating.FilterParams, years domain.Years, err error)
	}{
		{
			name:  "Sem parâmetros usa os anos padrão",
			query: "",
			validate: func(t *testing.T, params aggregating.FilterParams, years domain.Years, err error) {
				require.NoError(t, err)
				assert.True(t, params.IsEmpty())
				assert.Equal(t, defaultYears, years)
			},
		},
		{
			name:  "Ano informado compara com o anterior",
			query: "year=2024&outlet=01-Jeddah%20INT%20Market&manager=Ahmed",
			validate: func(t *testing.T, params aggregating.FilterParams, years domain.Years, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.Years{Current: 2024, Previous: 2023}, years)
				assert.Equal(t, "01-Jeddah INT Market", *params.Outlet)
				assert.Equal(t, "Ahmed", *params.Manager)
				assert.Equal(t, 2024, *params.Year)
			},
		},
		{
			name:  "Ano inválido",
			query: "year=abc",
			validate: func(t *testing.T, params aggregating.FilterParams, years domain.Years, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/kpis?"+tt.query, nil)
			params, years, err := parseFilters(req, defaultYears)
			tt.validate(t, params, years, err)
		})
	}
}

func TestGetKPIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		query    string
		setup    func(service *mocks.MockAggregator)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Indicadores arredondados",
			setup: func(service *mocks.MockAggregator) {
				service.EXPECT().Years().Return(defaultYears)
				service.EXPECT().Ready().Return(true)
				service.EXPECT().KPIs(aggregating.FilterParams{}, defaultYears).Return(domain.KPIReport{
					Years:            defaultYears,
					CurrentYearSales: 4870000,
					GrowthPercentage: 20.544554,
					GrowthTrend:      domain.TrendIncrease,
				})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Empty(t, rec.Header().Get(DatasetReadyHeader))

				var body domain.KPIReport
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, 20.54, body.GrowthPercentage)
				assert.Equal(t, domain.TrendIncrease, body.GrowthTrend)
			},
		},
		{
			name:  "Filtro de gerente e ano",
			query: "?manager=Ahmed&year=2024",
			setup: func(service *mocks.MockAggregator) {
				years := domain.Years{Current: 2024, Previous: 2023}
				service.EXPECT().Years().Return(defaultYears)
				service.EXPECT().Ready().Return(true)
				service.EXPECT().KPIs(aggregating.FilterParams{}.WithManager("Ahmed").WithYear(2024), years).
					Return(domain.KPIReport{Years: years, GrowthTrend: domain.TrendNeutral})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name: "Dataset não carregado responde neutro com cabeçalho",
			setup: func(service *mocks.MockAggregator) {
				service.EXPECT().Years().Return(defaultYears)
				service.EXPECT().Ready().Return(false)
				service.EXPECT().KPIs(gomock.Any(), gomock.Any()).Return(domain.KPIReport{GrowthTrend: domain.TrendNeutral})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "false", rec.Header().Get(DatasetReadyHeader))
			},
		},
		{
			name:  "Ano inválido",
			query: "?year=20x5",
			setup: func(service *mocks.MockAggregator) {
				service.EXPECT().Years().Return(defaultYears)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				var body apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, apiErrors.ErrInvalidFormat, body.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockAggregator(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			GetKPIs(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/kpis"+tt.query, nil))

			tt.validate(t, rec)
		})
	}
}

func TestGetBranches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	report := aggregating.BuildBranchPerformance(datasource.SampleDataset(), aggregating.BranchQuery{}, defaultYears)

	t.Run("Retorna as lojas e o top", func(t *testing.T) {
		service := mocks.NewMockAggregator(ctrl)
		service.EXPECT().Years().Return(defaultYears)
		service.EXPECT().Ready().Return(true)
		service.EXPECT().Branches(aggregating.BranchQuery{Search: "riyadh", Region: "Riyadh"}, defaultYears).Return(report)

		rec := httptest.NewRecorder()
		GetBranches(service, 10).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/branches?search=riyadh&region=Riyadh&top=2", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var body branchesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Branches, 3)
		require.Len(t, body.Top, 2)
		assert.Equal(t, "01-Jeddah INT Market", body.Top[0].Name)
		assert.Equal(t, "02-Riyadh Central", body.Top[1].Name)
	})

	t.Run("Top inválido", func(t *testing.T) {
		service := mocks.NewMockAggregator(ctrl)
		service.EXPECT().Years().Return(defaultYears)

		rec := httptest.NewRecorder()
		GetBranches(service, 10).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/branches?top=-1", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetManagers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAggregator(ctrl)
	service.EXPECT().Years().Return(defaultYears)
	service.EXPECT().Ready().Return(true)
	service.EXPECT().Managers(defaultYears, aggregating.DefaultManagerTopN).Return(domain.ManagerReport{
		Managers:        []domain.ManagerPerformance{{Manager: "Ahmed Al-Rashid"}},
		UnmappedOutlets: []string{},
	})

	rec := httptest.NewRecorder()
	GetManagers(service, aggregating.DefaultManagerTopN).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/managers", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ahmed Al-Rashid")
}

func TestExportBranches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAggregator(ctrl)
	service.EXPECT().Years().Return(defaultYears)
	service.EXPECT().Ready().Return(true)
	service.EXPECT().Branches(aggregating.BranchQuery{}, defaultYears).
		Return(aggregating.BuildBranchPerformance(datasource.SampleDataset(), aggregating.BranchQuery{}, defaultYears))

	rec := httptest.NewRecorder()
	ExportBranches(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/branches.xlsx", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, exporting.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "lojas-2025-")
	assert.NotEmpty(t, rec.Body.Bytes())
}

type fakeCronJob struct {
	started bool
	running bool
}

func (f *fakeCronJob) TriggerManualSync(ctx context.Context) bool {
	if f.running {
		return false
	}
	f.started = true
	return true
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.running}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name     string
		cronType string
		job      *fakeCronJob
		expected int
	}{
		{name: "Recarga iniciada", cronType: CronJobTypeDatasetRefresh, job: &fakeCronJob{}, expected: http.StatusAccepted},
		{name: "Todas as jobs", cronType: CronJobTypeAll, job: &fakeCronJob{}, expected: http.StatusAccepted},
		{name: "Recarga em andamento", cronType: CronJobTypeDatasetRefresh, job: &fakeCronJob{running: true}, expected: http.StatusConflict},
		{name: "Tipo inválido", cronType: "meta", job: &fakeCronJob{}, expected: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/cron/"+tt.cronType+"/run", nil)
			req = req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, httprouter.Params{{Key: "type", Value: tt.cronType}}))

			rec := httptest.NewRecorder()
			RunCronJob(CronJobServices{DatasetRefreshService: tt.job}).ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Code)
			assert.Equal(t, tt.expected == http.StatusAccepted, tt.job.started)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	GetCronStatus(CronJobServices{DatasetRefreshService: &fakeCronJob{}}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"dataset-refresh":{"sync_running":false}}`, rec.Body.String())
}
