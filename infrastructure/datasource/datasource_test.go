package datasource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/outlet-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/outlet-analytics-api/internal/config"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const fetchedSale = `{"sales":[{"Outlet Name":"01-Jeddah INT Market","DATE":"2025-07-01","Bill Amount":900000,"No Of Bills":250,"YEAR":2025,"MONTH":7,"DAY":1,"visitors":5000}],
"areas":[{"Outlet Name":"01-Jeddah INT Market","area manager":"Ahmed Al-Rashid","type":"mall"}]}`

const sampleSale = `{"sales":[{"Outlet Name":"01-Jeddah INT Market","DATE":"2025-07-01","Sales Amount":900000,"Invoices":250,"Year":2025,"Month":7,"Day":1,"Visitors":5000}],
"areas":[{"Outlet Name":"01-Jeddah INT Market","Area Manager":"Ahmed Al-Rashid"}]}`

func TestDetectSchema(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Schema
	}{
		{name: "Formato publicado pelas vendas", raw: fetchedSale, expected: SchemaFetched},
		{name: "Formato de amostra pelas vendas", raw: sampleSale, expected: SchemaSample},
		{name: "Formato de amostra pelas áreas", raw: `{"sales":[],"areas":[{"Outlet Name":"X","Area Manager":"Y"}]}`, expected: SchemaSample},
		{name: "Sem pistas assume publicado", raw: `{}`, expected: SchemaFetched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := DetectSchema([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, schema)
		})
	}
}

func TestDecode_AmbosFormatosGeramMesmoModelo(t *testing.T) {
	fetched, err := Decode([]byte(fetchedSale))
	require.NoError(t, err)

	sample, err := Decode([]byte(sampleSale))
	require.NoError(t, err)

	assert.Equal(t, fetched.Sales, sample.Sales)
	assert.Equal(t, domain.Sale{
		Outlet:     "01-Jeddah INT Market",
		Date:       "2025-07-01",
		BillAmount: 900000,
		BillCount:  250,
		Year:       2025,
		Month:      7,
		Day:        1,
		Visitors:   5000,
	}, fetched.Sales[0])

	assert.Equal(t, "Ahmed Al-Rashid", fetched.Areas[0].Manager)
	assert.Equal(t, fetched.Areas[0].Manager, sample.Areas[0].Manager)
	assert.Equal(t, "mall", fetched.Areas[0].Type)
}

func TestDecode_Erros(t *testing.T) {
	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)

	_, err = Decode([]byte(`{"sales": "não é lista"`))
	assert.Error(t, err)
}

func TestSampleDataset(t *testing.T) {
	ds := SampleDataset()

	assert.Len(t, ds.Sales, 12)
	assert.Len(t, ds.Areas, 3)
	assert.Len(t, ds.DailyTargets, 6)
	assert.Len(t, ds.MonthlyTargets, 3)
	assert.Len(t, ds.YearlyTargets, 3)

	// metas anuais da amostra não trazem ano
	for _, target := range ds.YearlyTargets {
		_, known := target.RecordYear()
		assert.False(t, known)
	}

	// cada chamada devolve uma cópia independente
	ds.Sales[0].BillAmount = 0
	assert.Equal(t, 900000.0, SampleDataset().Sales[0].BillAmount)
}

func TestFileSource_Fetch(t *testing.T) {
	source := NewFileSource(filepath.Join("testdata", "fetched.json"))

	ds, err := source.Fetch(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.Sales, 3)
	assert.Len(t, ds.Areas, 2)
	assert.Equal(t, 2025, ds.YearlyTargets[0].Year)
	assert.Equal(t, "file:testdata/fetched.json", source.Name())

	_, err = NewFileSource(filepath.Join(t.TempDir(), "inexistente.json")).Fetch(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHTTPSource_Fetch(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		validate func(t *testing.T, ds *domain.Dataset, err error)
	}{
		{
			name: "Dataset publicado",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				_, _ = w.Write([]byte(fetchedSale))
			},
			validate: func(t *testing.T, ds *domain.Dataset, err error) {
				require.NoError(t, err)
				assert.Len(t, ds.Sales, 1)
			},
		},
		{
			name: "Status diferente de 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			validate: func(t *testing.T, ds *domain.Dataset, err error) {
				assert.Nil(t, ds)
				require.Error(t, err)
				assert.Contains(t, err.Error(), "502")
			},
		},
		{
			name: "Corpo vazio",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			validate: func(t *testing.T, ds *domain.Dataset, err error) {
				assert.ErrorIs(t, err, ErrEmptyPayload)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			ds, err := NewHTTPSource(server.URL, 0).Fetch(context.Background())
			tt.validate(t, ds, err)
		})
	}
}

func TestPostgresSource_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("Monta o dataset com todas as tabelas", func(t *testing.T) {
		repo := mocks.NewMockDatasetRepository(ctrl)
		repo.EXPECT().ListSales(ctx).Return([]domain.Sale{{Outlet: "01-A", Date: "2025-07-01", BillAmount: 10}}, nil)
		repo.EXPECT().ListDailyTargets(ctx).Return([]domain.DailyTarget{{Outlet: "01-A", Date: "2025-07-01", Target: 20}}, nil)
		repo.EXPECT().ListMonthlyTargets(ctx).Return([]domain.MonthlyTarget{}, nil)
		repo.EXPECT().ListYearlyTargets(ctx).Return([]domain.YearlyTarget{{Outlet: "01-A", TargetAmount: 100}}, nil)
		repo.EXPECT().ListAreas(ctx).Return([]domain.Area{{Outlet: "01-A", Manager: "Ahmed"}}, nil)

		ds, err := NewPostgresSource(repo).Fetch(ctx)
		require.NoError(t, err)
		assert.Len(t, ds.Sales, 1)
		assert.Len(t, ds.Areas, 1)
		assert.Equal(t, 100.0, ds.YearlyTargets[0].TargetAmount)
	})

	t.Run("Erro em uma tabela interrompe a carga", func(t *testing.T) {
		repo := mocks.NewMockDatasetRepository(ctrl)
		dbErr := errors.New("timeout")
		repo.EXPECT().ListSales(ctx).Return(nil, dbErr)

		ds, err := NewPostgresSource(repo).Fetch(ctx)
		assert.Nil(t, ds)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "erro ao carregar vendas")
	})
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.DataSource
		expected string
		err      error
	}{
		{name: "Arquivo", cfg: config.DataSource{Kind: KindFile, Path: "data.json"}, expected: "file:data.json"},
		{name: "HTTP", cfg: config.DataSource{Kind: KindHTTP, URL: "http://localhost/data.json"}, expected: "http:http://localhost/data.json"},
		{name: "Amostra por padrão", cfg: config.DataSource{}, expected: KindSample},
		{name: "Tipo desconhecido", cfg: config.DataSource{Kind: "ftp"}, err: ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := New(context.Background(), &config.Config{DataSource: tt.cfg})
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, source.Name())
		})
	}

	_, err := New(context.Background(), &config.Config{DataSource: config.DataSource{Kind: KindHTTP}})
	assert.Error(t, err, "http sem URL")
}
