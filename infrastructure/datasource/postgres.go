package datasource

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/outlet-analytics-api/infrastructure/repository"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
)

// PostgresSource monta o dataset a partir das tabelas do banco
type PostgresSource struct {
	repo repository.DatasetRepository
}

func NewPostgresSource(repo repository.DatasetRepository) *PostgresSource {
	return &PostgresSource{repo: repo}
}

func (s *PostgresSource) Name() string {
	return KindPostgres
}

func (s *PostgresSource) Fetch(ctx context.Context) (*domain.Dataset, error) {
	var (
		ds  domain.Dataset
		err error
	)

	if ds.Sales, err = s.repo.ListSales(ctx); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar vendas")
	}

	if ds.DailyTargets, err = s.repo.ListDailyTargets(ctx); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar metas diárias")
	}

	if ds.MonthlyTargets, err = s.repo.ListMonthlyTargets(ctx); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar metas mensais")
	}

	if ds.YearlyTargets, err = s.repo.ListYearlyTargets(ctx); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar metas anuais")
	}

	if ds.Areas, err = s.repo.ListAreas(ctx); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar áreas")
	}

	return &ds, nil
}
