package aggregating

import (
	"sort"

	"github.com/samber/lo"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
)

// DefaultManagerTopN é a quantidade de gerentes exibida no ranking
const DefaultManagerTopN = 6

// BuildManagerPerformance consolida as lojas de cada gerente e ordena pelo
// atingimento da meta anual. Lojas com vendas mas sem gerente (sem área
// cadastrada ou com gerente em branco) não entram no ranking e são listadas em
// UnmappedOutlets.
func BuildManagerPerformance(ds *domain.Dataset, years domain.Years, topN int) domain.ManagerReport {
	report := domain.ManagerReport{
		Managers:        make([]domain.ManagerPerformance, 0),
		UnmappedOutlets: make([]string, 0),
	}
	if ds == nil {
		return report
	}

	totals := newOutletTotals(ds.Sales)
	areas := uniqueAreas(ds.Areas)
	byManager := func(a domain.Area) (string, bool) { return a.Manager, a.HasManager() }

	groups := GroupAndSum(areas, byManager,
		Metric[domain.Area]{Name: MetricSales, Value: func(a domain.Area) float64 {
			return totals.get(a.Outlet, years.Current).Sales
		}},
		Metric[domain.Area]{Name: MetricVisitors, Value: func(a domain.Area) float64 {
			return float64(totals.get(a.Outlet, years.Current).Visitors)
		}},
		Metric[domain.Area]{Name: MetricInvoices, Value: func(a domain.Area) float64 {
			return float64(totals.get(a.Outlet, years.Current).Invoices)
		}},
		Metric[domain.Area]{Name: MetricTarget, Value: func(a domain.Area) float64 {
			return yearlyTargetOf(ds.YearlyTargets, a.Outlet, years.Current)
		}},
	)

	managers := make([]domain.ManagerPerformance, 0, groups.Len())
	for _, row := range groups.Rows() {
		sales := row.Sum(MetricSales)
		visitors := row.Sum(MetricVisitors)
		invoices := row.Sum(MetricInvoices)
		target := row.Sum(MetricTarget)

		managers = append(managers, domain.ManagerPerformance{
			Manager:           row.Key,
			Sales:             sales,
			Visitors:          int(visitors),
			Invoices:          int(invoices),
			Target:            target,
			Branches:          row.Count,
			Achievement:       domain.AchievementPercent(sales, target),
			AvgSalesPerBranch: domain.SafeDiv(sales, float64(row.Count)),
			Efficiency:        domain.Efficiency(sales, visitors),
			ConversionRate:    domain.ConversionRate(invoices, visitors),
		})
	}

	report.Managers = RankTopN(managers, func(m domain.ManagerPerformance) float64 { return m.Achievement }, topN)

	managed := lo.SliceToMap(lo.Filter(areas, func(a domain.Area, _ int) bool { return a.HasManager() }),
		func(a domain.Area) (string, struct{}) { return a.Outlet, struct{}{} })
	report.UnmappedOutlets = lo.Uniq(lo.FilterMap(ds.Sales, func(s domain.Sale, _ int) (string, bool) {
		_, ok := managed[s.Outlet]
		return s.Outlet, !ok
	}))

	return report
}

// BuildDailyTrends calcula as médias por dia do mês para o ano corrente
func BuildDailyTrends(ds *domain.Dataset, p FilterParams, years domain.Years) []domain.DailyTrend {
	sales := recordsOfYear(filterDataset(ds, p.WithoutYear()).Sales, years.Current)

	rows := GroupAndSum(sales, ByDayOfMonth, SalesAmount, SalesVisitors, SalesInvoices).Rows()
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })

	trends := make([]domain.DailyTrend, 0, len(rows))
	for _, row := range rows {
		trends = append(trends, domain.DailyTrend{
			Day:         row.Key,
			AvgSales:    row.Avg(MetricSales),
			AvgVisitors: row.Avg(MetricVisitors),
			AvgInvoices: row.Avg(MetricInvoices),
			Efficiency:  domain.Efficiency(row.Sum(MetricSales), row.Sum(MetricVisitors)),
		})
	}

	return trends
}

// BuildPerformanceCorrelation relaciona visitantes e vendas de cada registro do ano corrente
func BuildPerformanceCorrelation(ds *domain.Dataset, p FilterParams, years domain.Years) []domain.CorrelationPoint {
	sales := recordsOfYear(filterDataset(ds, p.WithoutYear()).Sales, years.Current)

	return lo.Map(sales, func(s domain.Sale, _ int) domain.CorrelationPoint {
		return domain.CorrelationPoint{
			Outlet:     domain.DisplayName(s.Outlet),
			Date:       s.Date,
			Visitors:   s.Visitors,
			Sales:      s.BillAmount,
			Invoices:   s.BillCount,
			Efficiency: domain.Efficiency(s.BillAmount, float64(s.Visitors)),
		}
	})
}

// ListOutlets lista as lojas cadastradas, opcionalmente apenas as de um gerente
func ListOutlets(ds *domain.Dataset, manager string) []domain.OutletOption {
	if ds == nil {
		return make([]domain.OutletOption, 0)
	}

	areas := lo.Filter(uniqueAreas(ds.Areas), func(a domain.Area, _ int) bool {
		return manager == "" || a.Manager == manager
	})

	return lo.Map(areas, func(a domain.Area, _ int) domain.OutletOption {
		return domain.OutletOption{
			Outlet:      a.Outlet,
			DisplayName: domain.DisplayName(a.Outlet),
			Manager:     a.Manager,
			Region:      domain.RegionOf(a.Outlet),
		}
	})
}

// ListManagers lista os gerentes distintos na ordem em que aparecem nas áreas.
// Áreas com gerente em branco ficam de fora, como no ranking de gerentes.
func ListManagers(ds *domain.Dataset) []string {
	if ds == nil {
		return make([]string, 0)
	}

	managers := lo.FilterMap(uniqueAreas(ds.Areas), func(a domain.Area, _ int) (string, bool) {
		return a.Manager, a.HasManager()
	})

	return lo.Uniq(managers)
}
