package aggregating

import (
	"strings"

	"github.com/samber/lo"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
)

// BranchQuery são os filtros da tela de lojas. Campos vazios não filtram.
type BranchQuery struct {
	Search  string
	Region  string
	Manager string
}

func (q BranchQuery) matches(branch domain.BranchPerformance) bool {
	if q.Search != "" {
		search := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(branch.Name), search) &&
			!strings.Contains(strings.ToLower(branch.Manager), search) {
			return false
		}
	}

	if q.Region != "" && branch.Region != q.Region {
		return false
	}

	if q.Manager != "" && branch.Manager != q.Manager {
		return false
	}

	return true
}

// BuildBranchPerformance monta uma linha por loja cadastrada nas áreas. Lojas sem
// vendas aparecem com valores zerados.
func BuildBranchPerformance(ds *domain.Dataset, q BranchQuery, years domain.Years) domain.BranchReport {
	report := domain.BranchReport{
		Years:    years,
		Branches: make([]domain.BranchPerformance, 0),
	}
	if ds == nil {
		return report
	}

	totals := newOutletTotals(ds.Sales)

	for _, area := range uniqueAreas(ds.Areas) {
		current := totals.get(area.Outlet, years.Current)
		previous := totals.get(area.Outlet, years.Previous)
		target := yearlyTargetOf(ds.YearlyTargets, area.Outlet, years.Current)
		growth := domain.YoYGrowthPercent(current.Sales, previous.Sales)

		branch := domain.BranchPerformance{
			Name:              area.Outlet,
			DisplayName:       domain.DisplayName(area.Outlet),
			Manager:           area.Manager,
			Region:            domain.RegionOf(area.Outlet),
			CurrentYearSales:  current.Sales,
			PreviousYearSales: previous.Sales,
			Growth:            growth,
			GrowthTrend:       domain.ClassifyGrowth(growth),
			Visitors:          current.Visitors,
			Invoices:          current.Invoices,
			Target:            target,
			Achievement:       domain.AchievementPercent(current.Sales, target),
			AvgInvoiceValue:   domain.AvgInvoiceValue(current.Sales, float64(current.Invoices)),
			ConversionRate:    domain.ConversionRate(float64(current.Invoices), float64(current.Visitors)),
		}

		if q.matches(branch) {
			report.Branches = append(report.Branches, branch)
		}
	}

	report.Summary = summarizeBranches(report.Branches)

	return report
}

func summarizeBranches(branches []domain.BranchPerformance) domain.BranchSummary {
	sales := SumOf(branches, Metric[domain.BranchPerformance]{
		Value: func(b domain.BranchPerformance) float64 { return b.CurrentYearSales },
	}).InexactFloat64()
	target := SumOf(branches, Metric[domain.BranchPerformance]{
		Value: func(b domain.BranchPerformance) float64 { return b.Target },
	}).InexactFloat64()
	growth := lo.SumBy(branches, func(b domain.BranchPerformance) float64 { return b.Growth })

	return domain.BranchSummary{
		TotalBranches: len(branches),
		TotalSales:    sales,
		TotalTarget:   target,
		Achievement:   domain.AchievementPercent(sales, target),
		AvgGrowth:     domain.SafeDiv(growth, float64(len(branches))),
		TopPerformers: lo.CountBy(branches, func(b domain.BranchPerformance) bool { return b.Achievement > 100 }),
	}
}

// TopBranches retorna as n lojas com maior venda no ano corrente
func TopBranches(branches []domain.BranchPerformance, n int) []domain.BranchPerformance {
	return RankTopN(branches, func(b domain.BranchPerformance) float64 { return b.CurrentYearSales }, n)
}

// BuildRegionalDistribution conta as lojas cadastradas por região, na ordem da
// tabela de regiões. Regiões sem lojas não aparecem.
func BuildRegionalDistribution(ds *domain.Dataset) []domain.RegionBranches {
	distribution := make([]domain.RegionBranches, 0)
	if ds == nil {
		return distribution
	}

	groups := GroupAndSum(uniqueAreas(ds.Areas), ByRegion[domain.Area])
	for _, region := range domain.Regions() {
		if row := groups.Get(region); row != nil {
			distribution = append(distribution, domain.RegionBranches{Region: region, Branches: row.Count})
		}
	}

	return distribution
}

// BuildRegionalPerformance consolida vendas do ano corrente e metas anuais por
// região. Vendas de lojas sem área cadastrada vão para UnmappedSales.
func BuildRegionalPerformance(ds *domain.Dataset, years domain.Years) domain.RegionalReport {
	report := domain.RegionalReport{
		Distribution: BuildRegionalDistribution(ds),
		Performance:  make([]domain.RegionPerformance, 0),
	}
	if ds == nil {
		return report
	}

	totals := newOutletTotals(ds.Sales)
	managers := ds.ManagerIndex()

	areas := uniqueAreas(ds.Areas)
	groups := GroupAndSum(areas, ByRegion[domain.Area],
		Metric[domain.Area]{Name: MetricSales, Value: func(a domain.Area) float64 {
			return totals.get(a.Outlet, years.Current).Sales
		}},
		Metric[domain.Area]{Name: MetricTarget, Value: func(a domain.Area) float64 {
			return yearlyTargetOf(ds.YearlyTargets, a.Outlet, years.Current)
		}},
	)

	for _, region := range domain.Regions() {
		row := groups.Get(region)
		if row == nil {
			continue
		}

		sales := row.Sum(MetricSales)
		target := row.Sum(MetricTarget)
		report.Performance = append(report.Performance, domain.RegionPerformance{
			Region:         region,
			Branches:       row.Count,
			Sales:          sales,
			Target:         target,
			Achievement:    domain.AchievementPercent(sales, target),
			SalesPerBranch: domain.SafeDiv(sales, float64(row.Count)),
		})
	}

	unmapped := lo.Filter(recordsOfYear(ds.Sales, years.Current), func(s domain.Sale, _ int) bool {
		_, ok := managers.ManagerOf(s.Outlet)
		return !ok
	})
	report.UnmappedSales = SumOf(unmapped, SalesAmount).InexactFloat64()

	return report
}

// uniqueAreas remove áreas repetidas da mesma loja. A loja fica na posição da
// primeira ocorrência com o gerente da última, igual ao ManagerIndex.
func uniqueAreas(areas []domain.Area) []domain.Area {
	managers := (&domain.Dataset{Areas: areas}).ManagerIndex()

	return lo.Map(lo.UniqBy(areas, func(a domain.Area) string { return a.Outlet }), func(a domain.Area, _ int) domain.Area {
		a.Manager = managers[a.Outlet]
		return a
	})
}
