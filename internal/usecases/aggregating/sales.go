package aggregating

import (
	"time"

	"github.com/samber/lo"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
)

// BuildSalesSummary resume as vendas do ano corrente contra o ano anterior e
// identifica o melhor e o pior dia.
func BuildSalesSummary(ds *domain.Dataset, p FilterParams, years domain.Years) domain.SalesSummary {
	filtered := filterDataset(ds, p.WithoutYear())

	byYear := totalsByYear(filtered.Sales)
	current := byYear(years.Current)
	previous := byYear(years.Previous)
	growth := domain.YoYGrowthPercent(current.Sales, previous.Sales)

	summary := domain.SalesSummary{
		Years:             years,
		CurrentYearSales:  current.Sales,
		PreviousYearSales: previous.Sales,
		GrowthPercentage:  growth,
		GrowthTrend:       domain.ClassifyGrowth(growth),
	}

	days := GroupAndSum(recordsOfYear(filtered.Sales, years.Current), ByDate, SalesAmount).Rows()
	if len(days) == 0 {
		return summary
	}

	SortRowsByDate(days)
	daysTotal := SumOf(days, Metric[*Row[time.Time]]{
		Value: func(day *Row[time.Time]) float64 { return day.Sum(MetricSales) },
	})
	summary.DailyAverage = domain.SafeDiv(daysTotal.InexactFloat64(), float64(len(days)))

	best, worst := days[0], days[0]
	for _, day := range days[1:] {
		if day.Decimal(MetricSales).GreaterThan(best.Decimal(MetricSales)) {
			best = day
		}
		if day.Decimal(MetricSales).LessThan(worst.Decimal(MetricSales)) {
			worst = day
		}
	}

	summary.BestDay = best.Sum(MetricSales)
	summary.BestDayDate = best.Key.Format(time.DateOnly)
	summary.WorstDay = worst.Sum(MetricSales)
	summary.WorstDayDate = worst.Key.Format(time.DateOnly)

	return summary
}

// BuildSalesTrend monta a série diária em ordem cronológica. As vendas de cada
// data vão para a coluna do seu ano; datas inválidas são contadas em Skipped,
// inclusive as de vendas sem ano informado.
func BuildSalesTrend(ds *domain.Dataset, p FilterParams, years domain.Years) domain.SalesTrend {
	filtered := filterDataset(ds, p.WithoutYear())

	// sem ano conhecido a data é inválida e a venda segue para ser contada no agrupamento
	sales := lo.Filter(filtered.Sales, func(s domain.Sale, _ int) bool {
		year, ok := s.RecordYear()
		return !ok || year == years.Current || year == years.Previous
	})

	groups := GroupAndSum(sales, ByDate,
		salesOfYear("current", years.Current, func(s domain.Sale) float64 { return s.BillAmount }),
		salesOfYear("previous", years.Previous, func(s domain.Sale) float64 { return s.BillAmount }),
		salesOfYear(MetricVisitors, years.Current, func(s domain.Sale) float64 { return float64(s.Visitors) }),
	)
	targets := GroupAndSum(filtered.DailyTargets, DailyTargetByDate, DailyTargetAmount)

	rows := groups.Rows()
	SortRowsByDate(rows)

	points := make([]domain.TrendPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, domain.TrendPoint{
			Date:              row.Key.Format(time.DateOnly),
			CurrentYearSales:  row.Sum("current"),
			PreviousYearSales: row.Sum("previous"),
			Target:            targets.Get(row.Key).Sum(MetricTarget),
			Visitors:          int(row.Decimal(MetricVisitors).IntPart()),
		})
	}

	return domain.SalesTrend{
		Years:   years,
		Points:  points,
		Skipped: groups.Skipped,
	}
}

// salesOfYear soma o valor somente para vendas do ano informado
func salesOfYear(name string, year int, value func(domain.Sale) float64) Metric[domain.Sale] {
	return Metric[domain.Sale]{
		Name: name,
		Value: func(s domain.Sale) float64 {
			if y, ok := s.RecordYear(); ok && y == year {
				return value(s)
			}
			return 0
		},
	}
}

// BuildYearOverYear compara as vendas de cada loja entre os dois anos, na
// ordem em que as lojas aparecem nas vendas.
func BuildYearOverYear(ds *domain.Dataset, p FilterParams, years domain.Years) []domain.YearOverYearRow {
	filtered := filterDataset(ds, p.WithoutYear())
	totals := newOutletTotals(filtered.Sales)

	outlets := GroupAndSum(filtered.Sales, ByOutlet[domain.Sale])

	rows := make([]domain.YearOverYearRow, 0, outlets.Len())
	for _, outlet := range outlets.Rows() {
		current := totals.get(outlet.Key, years.Current)
		previous := totals.get(outlet.Key, years.Previous)
		growth := domain.YoYGrowthPercent(current.Sales, previous.Sales)

		rows = append(rows, domain.YearOverYearRow{
			Outlet:            outlet.Key,
			Name:              domain.DisplayName(outlet.Key),
			PreviousYearSales: previous.Sales,
			CurrentYearSales:  current.Sales,
			Growth:            growth,
			Difference:        current.Sales - previous.Sales,
			Trend:             domain.ClassifyGrowth(growth),
		})
	}

	return rows
}

// BuildBranchDistribution calcula a participação de cada loja nas vendas do ano
func BuildBranchDistribution(ds *domain.Dataset, p FilterParams, year int) []domain.BranchShare {
	filtered := filterDataset(ds, p.WithoutYear())

	groups := GroupAndSum(recordsOfYear(filtered.Sales, year), ByOutlet[domain.Sale], SalesAmount)
	total := groups.Total(MetricSales).InexactFloat64()

	shares := make([]domain.BranchShare, 0, groups.Len())
	for _, row := range groups.Rows() {
		value := row.Sum(MetricSales)
		shares = append(shares, domain.BranchShare{
			Name:     domain.DisplayName(row.Key),
			FullName: row.Key,
			Value:    value,
			Share:    domain.SharePercent(value, total),
		})
	}

	return shares
}
