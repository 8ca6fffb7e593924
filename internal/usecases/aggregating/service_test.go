package aggregating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/outlet-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/outlet-analytics-api/infrastructure/datasource/mocks"
	"github.com/vfg2006/outlet-analytics-api/internal/config"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(source datasource.Source) *Service {
	return NewService(&config.Config{
		Dashboard: config.Dashboard{CurrentYear: 2025, PreviousYear: 2024},
	}, source)
}

func TestService_AntesDaCarga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Name().Return("sample").AnyTimes()

	service := newTestService(source)

	assert.False(t, service.Ready())
	assert.Equal(t, domain.Years{Current: 2025, Previous: 2024}, service.Years())
	assert.True(t, service.Snapshot().IsEmpty())

	kpis := service.KPIs(FilterParams{}, service.Years())
	assert.Equal(t, 0.0, kpis.CurrentYearSales)
	assert.Equal(t, domain.TrendNeutral, kpis.GrowthTrend)

	assert.Empty(t, service.SalesTrend(FilterParams{}, service.Years()).Points)
	assert.Empty(t, service.Branches(BranchQuery{}, service.Years()).Branches)
	assert.Empty(t, service.Managers(service.Years(), DefaultManagerTopN).Managers)
	assert.Empty(t, service.Outlets(""))
	assert.Empty(t, service.ManagerNames())

	status := service.Status()
	assert.False(t, status.Ready)
	assert.True(t, status.LoadedAt.IsZero())
	assert.Equal(t, "sample", status.Source)
}

func TestService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(source *mocks.MockSource)
		validate func(t *testing.T, service *Service, err error)
	}{
		{
			name: "Carga com sucesso publica o snapshot",
			setup: func(source *mocks.MockSource) {
				source.EXPECT().Fetch(ctx).Return(datasource.SampleDataset(), nil)
			},
			validate: func(t *testing.T, service *Service, err error) {
				require.NoError(t, err)
				assert.True(t, service.Ready())

				status := service.Status()
				assert.True(t, status.Ready)
				assert.False(t, status.LoadedAt.IsZero())
				assert.Equal(t, 12, status.Sales)
				assert.Equal(t, 3, status.Outlets)

				assert.Equal(t, 4870000.0, service.KPIs(FilterParams{}, service.Years()).CurrentYearSales)
				assert.Len(t, service.Outlets(""), 3)
				assert.Len(t, service.ManagerNames(), 3)
			},
		},
		{
			name: "Erro na origem mantém o snapshot anterior",
			setup: func(source *mocks.MockSource) {
				gomock.InOrder(
					source.EXPECT().Fetch(ctx).Return(datasource.SampleDataset(), nil),
					source.EXPECT().Fetch(ctx).Return(nil, errors.New("origem indisponível")),
				)
			},
			validate: func(t *testing.T, service *Service, err error) {
				require.NoError(t, err)

				err = service.Load(ctx)
				require.Error(t, err)
				assert.Contains(t, err.Error(), "origem indisponível")

				assert.True(t, service.Ready())
				assert.Equal(t, 12, service.Status().Sales)
				assert.Equal(t, 4870000.0, service.SalesSummary(FilterParams{}, service.Years()).CurrentYearSales)
			},
		},
		{
			name: "Erro na primeira carga deixa o serviço sem dados",
			setup: func(source *mocks.MockSource) {
				source.EXPECT().Fetch(ctx).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, service *Service, err error) {
				require.Error(t, err)
				assert.False(t, service.Ready())
				assert.Empty(t, service.YearOverYear(FilterParams{}, service.Years()))
			},
		},
		{
			name: "Origem sem dataset vira dataset vazio",
			setup: func(source *mocks.MockSource) {
				source.EXPECT().Fetch(ctx).Return(nil, nil)
			},
			validate: func(t *testing.T, service *Service, err error) {
				require.NoError(t, err)
				assert.True(t, service.Ready())
				assert.Equal(t, 0, service.Status().Sales)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mocks.NewMockSource(ctrl)
			source.EXPECT().Name().Return("sample").AnyTimes()
			tt.setup(source)

			service := newTestService(source)
			tt.validate(t, service, service.Load(ctx))
		})
	}
}

func TestService_RelatoriosDelegam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Name().Return("sample").AnyTimes()
	source.EXPECT().Fetch(gomock.Any()).Return(datasource.SampleDataset(), nil)

	service := newTestService(source)
	require.NoError(t, service.Load(context.Background()))

	ds := datasource.SampleDataset()
	years := service.Years()
	p := FilterParams{}.WithManager("Sarah Al-Mutawa")

	assert.Equal(t, BuildSalesTrend(ds, p, years), service.SalesTrend(p, years))
	assert.Equal(t, BuildYearOverYear(ds, p, years), service.YearOverYear(p, years))
	assert.Equal(t, BuildBranchDistribution(ds, p, 2025), service.BranchDistribution(p, 2025))
	assert.Equal(t, BuildRegionalPerformance(ds, years), service.Regions(years))
	assert.Equal(t, BuildDailyTrends(ds, p, years), service.DailyTrends(p, years))
	assert.Equal(t, BuildPerformanceCorrelation(ds, p, years), service.Correlation(p, years))
	assert.Equal(t, BuildBranchPerformance(ds, BranchQuery{Region: "Riyadh"}, years), service.Branches(BranchQuery{Region: "Riyadh"}, years))
}
