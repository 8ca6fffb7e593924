//go:generate mockgen -source=dataset.go -destination=mocks/dataset.go -package=mocks

// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/outlet-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
)

const (
	salesTable          = "sales s"
	dailyTargetsTable   = "daily_targets dt"
	monthlyTargetsTable = "monthly_targets mt"
	yearlyTargetsTable  = "yearly_targets yt"
	areasTable          = "areas a"
)

// DatasetRepository lê as tabelas que compõem o dataset do painel
type DatasetRepository interface {
	ListSales(ctx context.Context) ([]domain.Sale, error)
	ListDailyTargets(ctx context.Context) ([]domain.DailyTarget, error)
	ListMonthlyTargets(ctx context.Context) ([]domain.MonthlyTarget, error)
	ListYearlyTargets(ctx context.Context) ([]domain.YearlyTarget, error)
	ListAreas(ctx context.Context) ([]domain.Area, error)
}

type datasetRepository struct {
	conn postgres.Queryer
}

func NewDatasetRepository(conn postgres.Queryer) DatasetRepository {
	return &datasetRepository{
		conn: conn,
	}
}

func salesQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"s.outlet_name",
			"s.sale_date",
			"s.bill_amount",
			"s.bill_count",
			"s.year",
			"s.month",
			"s.day",
			"s.visitors",
		).
		From(salesTable).
		OrderBy("s.sale_date ASC", "s.outlet_name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func dailyTargetsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("dt.outlet_name", "dt.target_date", "dt.target").
		From(dailyTargetsTable).
		OrderBy("dt.target_date ASC", "dt.outlet_name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func monthlyTargetsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("mt.outlet_name", "mt.target_date", "mt.target_amount", "mt.year", "mt.month").
		From(monthlyTargetsTable).
		OrderBy("mt.year ASC", "mt.month ASC", "mt.outlet_name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func yearlyTargetsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("yt.outlet_name", "yt.target_amount", "COALESCE(yt.year, 0)").
		From(yearlyTargetsTable).
		OrderBy("yt.outlet_name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func areasQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("a.outlet_name", "a.area_manager", "COALESCE(a.type, '')").
		From(areasTable).
		Where(squirrel.Eq{"a.active": true}).
		OrderBy("a.outlet_name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *datasetRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	rows, err := r.query(ctx, salesQuery())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		var (
			sale domain.Sale
			date time.Time
		)

		if err := rows.Scan(
			&sale.Outlet,
			&date,
			&sale.BillAmount,
			&sale.BillCount,
			&sale.Year,
			&sale.Month,
			&sale.Day,
			&sale.Visitors,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}

		sale.Date = date.Format(time.DateOnly)
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar vendas: %w", err)
	}

	return sales, nil
}

func (r *datasetRepository) ListDailyTargets(ctx context.Context) ([]domain.DailyTarget, error) {
	rows, err := r.query(ctx, dailyTargetsQuery())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targets := make([]domain.DailyTarget, 0)
	for rows.Next() {
		var (
			target domain.DailyTarget
			date   time.Time
		)

		if err := rows.Scan(&target.Outlet, &date, &target.Target); err != nil {
			return nil, fmt.Errorf("erro ao ler meta diária: %w", err)
		}

		target.Date = date.Format(time.DateOnly)
		targets = append(targets, target)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar metas diárias: %w", err)
	}

	return targets, nil
}

func (r *datasetRepository) ListMonthlyTargets(ctx context.Context) ([]domain.MonthlyTarget, error) {
	rows, err := r.query(ctx, monthlyTargetsQuery())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targets := make([]domain.MonthlyTarget, 0)
	for rows.Next() {
		var (
			target domain.MonthlyTarget
			date   sql.NullTime
		)

		if err := rows.Scan(&target.Outlet, &date, &target.TargetAmount, &target.Year, &target.Month); err != nil {
			return nil, fmt.Errorf("erro ao ler meta mensal: %w", err)
		}

		if date.Valid {
			target.Date = date.Time.Format(time.DateOnly)
		}
		targets = append(targets, target)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar metas mensais: %w", err)
	}

	return targets, nil
}

func (r *datasetRepository) ListYearlyTargets(ctx context.Context) ([]domain.YearlyTarget, error) {
	rows, err := r.query(ctx, yearlyTargetsQuery())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targets := make([]domain.YearlyTarget, 0)
	for rows.Next() {
		var target domain.YearlyTarget
		if err := rows.Scan(&target.Outlet, &target.TargetAmount, &target.Year); err != nil {
			return nil, fmt.Errorf("erro ao ler meta anual: %w", err)
		}

		targets = append(targets, target)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar metas anuais: %w", err)
	}

	return targets, nil
}

func (r *datasetRepository) ListAreas(ctx context.Context) ([]domain.Area, error) {
	rows, err := r.query(ctx, areasQuery())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := make([]domain.Area, 0)
	for rows.Next() {
		var area domain.Area
		if err := rows.Scan(&area.Outlet, &area.Manager, &area.Type); err != nil {
			return nil, fmt.Errorf("erro ao ler área: %w", err)
		}

		areas = append(areas, area)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar áreas: %w", err)
	}

	return areas, nil
}

func (r *datasetRepository) query(ctx context.Context, builder squirrel.SelectBuilder) (*sql.Rows, error) {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return rows, nil
}
