package aggregating

//go:generate mockgen -source=service.go -destination=mocks/aggregator.go -package=mocks

import (
	"context"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/vfg2006/outlet-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/outlet-analytics-api/internal/config"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
	"github.com/vfg2006/outlet-analytics-api/pkg/log"
)

// Aggregator expõe os relatórios do painel sobre o dataset carregado
type Aggregator interface {
	// Load substitui o dataset pelo conteúdo atual da origem
	Load(ctx context.Context) error
	Ready() bool
	Status() domain.DatasetStatus
	Years() domain.Years
	Snapshot() *domain.Dataset

	KPIs(p FilterParams, years domain.Years) domain.KPIReport
	SalesSummary(p FilterParams, years domain.Years) domain.SalesSummary
	SalesTrend(p FilterParams, years domain.Years) domain.SalesTrend
	YearOverYear(p FilterParams, years domain.Years) []domain.YearOverYearRow
	BranchDistribution(p FilterParams, year int) []domain.BranchShare
	Branches(q BranchQuery, years domain.Years) domain.BranchReport
	Regions(years domain.Years) domain.RegionalReport
	Managers(years domain.Years, topN int) domain.ManagerReport
	DailyTrends(p FilterParams, years domain.Years) []domain.DailyTrend
	Correlation(p FilterParams, years domain.Years) []domain.CorrelationPoint
	Outlets(manager string) []domain.OutletOption
	ManagerNames() []string
}

// Service mantém o snapshot do dataset. Antes da primeira carga todos os
// relatórios são calculados sobre um dataset vazio.
type Service struct {
	source datasource.Source
	years  domain.Years

	mu       sync.RWMutex
	dataset  *domain.Dataset
	loadedAt time.Time
}

func NewService(cfg *config.Config, source datasource.Source) *Service {
	return &Service{
		source: source,
		years: domain.Years{
			Current:  cfg.Dashboard.CurrentYear,
			Previous: cfg.Dashboard.PreviousYear,
		},
	}
}

func (s *Service) Load(ctx context.Context) error {
	logger := log.ForContext(ctx).WithField("source", s.source.Name())

	start := time.Now()
	ds, err := s.source.Fetch(ctx)
	if err != nil {
		// Mantém o snapshot anterior
		logger.WithError(err).Error("Erro ao carregar dataset")
		return err
	}
	if ds == nil {
		ds = &domain.Dataset{}
	}

	s.mu.Lock()
	s.dataset = ds
	s.loadedAt = time.Now()
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"dataset_sales":   len(ds.Sales),
		"dataset_areas":   len(ds.Areas),
		"dataset_seconds": time.Since(start).Seconds(),
	}).Info("Dataset carregado com sucesso")

	return nil
}

// snapshot retorna o dataset atual. O dataset publicado é somente leitura.
func (s *Service) snapshot() *domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dataset == nil {
		return &domain.Dataset{}
	}

	return s.dataset
}

func (s *Service) Snapshot() *domain.Dataset {
	return s.snapshot()
}

// Ready indica se algum dataset já foi carregado com sucesso
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.dataset != nil
}

func (s *Service) Status() domain.DatasetStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := domain.DatasetStatus{
		Ready:    s.dataset != nil,
		LoadedAt: s.loadedAt,
		Source:   s.source.Name(),
	}
	if s.dataset != nil {
		status.Sales = len(s.dataset.Sales)
		status.Outlets = len(lo.UniqBy(s.dataset.Sales, func(sale domain.Sale) string { return sale.Outlet }))
	}

	return status
}

func (s *Service) Years() domain.Years {
	return s.years
}

func (s *Service) KPIs(p FilterParams, years domain.Years) domain.KPIReport {
	return BuildKPIs(s.snapshot(), p, years)
}

func (s *Service) SalesSummary(p FilterParams, years domain.Years) domain.SalesSummary {
	return BuildSalesSummary(s.snapshot(), p, years)
}

func (s *Service) SalesTrend(p FilterParams, years domain.Years) domain.SalesTrend {
	return BuildSalesTrend(s.snapshot(), p, years)
}

func (s *Service) YearOverYear(p FilterParams, years domain.Years) []domain.YearOverYearRow {
	return BuildYearOverYear(s.snapshot(), p, years)
}

func (s *Service) BranchDistribution(p FilterParams, year int) []domain.BranchShare {
	return BuildBranchDistribution(s.snapshot(), p, year)
}

func (s *Service) Branches(q BranchQuery, years domain.Years) domain.BranchReport {
	return BuildBranchPerformance(s.snapshot(), q, years)
}

func (s *Service) Regions(years domain.Years) domain.RegionalReport {
	return BuildRegionalPerformance(s.snapshot(), years)
}

func (s *Service) Managers(years domain.Years, topN int) domain.ManagerReport {
	return BuildManagerPerformance(s.snapshot(), years, topN)
}

func (s *Service) DailyTrends(p FilterParams, years domain.Years) []domain.DailyTrend {
	return BuildDailyTrends(s.snapshot(), p, years)
}

func (s *Service) Correlation(p FilterParams, years domain.Years) []domain.CorrelationPoint {
	return BuildPerformanceCorrelation(s.snapshot(), p, years)
}

func (s *Service) Outlets(manager string) []domain.OutletOption {
	return ListOutlets(s.snapshot(), manager)
}

func (s *Service) ManagerNames() []string {
	return ListManagers(s.snapshot())
}

// LoadedAt retorna o horário da última carga com sucesso
func (s *Service) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedAt
}
