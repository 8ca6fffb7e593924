package aggregating

import (
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
)

// BuildKPIs monta os indicadores gerais do painel. As metas passam pelos
// mesmos filtros de loja e gerente aplicados às vendas.
func BuildKPIs(ds *domain.Dataset, p FilterParams, years domain.Years) domain.KPIReport {
	filtered := filterDataset(ds, p.WithoutYear())

	byYear := totalsByYear(filtered.Sales)
	current := byYear(years.Current)
	previous := byYear(years.Previous)

	growth := domain.YoYGrowthPercent(current.Sales, previous.Sales)

	dailyTarget := SumOf(recordsOfYear(filtered.DailyTargets, years.Current), DailyTargetAmount).InexactFloat64()
	monthlyTarget := SumOf(recordsOfYear(filtered.MonthlyTargets, years.Current), MonthlyTargetAmount).InexactFloat64()
	yearlyTarget := totalYearlyTarget(filtered.YearlyTargets, years.Current)

	branches := len(uniqueAreas(filtered.Areas))

	return domain.KPIReport{
		Years:                 years,
		CurrentYearSales:      current.Sales,
		PreviousYearSales:     previous.Sales,
		GrowthPercentage:      growth,
		GrowthTrend:           domain.ClassifyGrowth(growth),
		TotalVisitors:         current.Visitors,
		TotalInvoices:         current.Invoices,
		AvgInvoiceValue:       domain.AvgInvoiceValue(current.Sales, float64(current.Invoices)),
		ConversionRate:        domain.ConversionRate(float64(current.Invoices), float64(current.Visitors)),
		AvgVisitorsPerInvoice: domain.SafeDiv(float64(current.Visitors), float64(current.Invoices)),
		TotalBranches:         branches,
		AvgSalesPerBranch:     domain.SafeDiv(current.Sales, float64(branches)),
		TotalDailyTarget:      dailyTarget,
		TotalMonthlyTarget:    monthlyTarget,
		TotalYearlyTarget:     yearlyTarget,
		DailyAchievement:      domain.AchievementPercent(current.Sales, dailyTarget),
		MonthlyAchievement:    domain.AchievementPercent(current.Sales, monthlyTarget),
		YearlyAchievement:     domain.AchievementPercent(current.Sales, yearlyTarget),
	}
}
