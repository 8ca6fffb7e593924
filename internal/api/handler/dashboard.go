package handler

import (
	"net/http"

	"github.com/vfg2006/outlet-analytics-api/internal/domain"
	"github.com/vfg2006/outlet-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/outlet-analytics-api/pkg/utils"
)

// GetKPIs retorna os indicadores gerais do painel
func GetKPIs(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, years, err := parseFilters(r, service.Years())
		if err != nil {
			writeInvalidFormat(w, r, err)
			return
		}

		writeReport(w, r, service, roundKPIs(service.KPIs(params, years)))
	}
}

// roundKPIs arredonda os valores exibidos nos cards
func roundKPIs(kpis domain.KPIReport) domain.KPIReport {
	for _, value := range []*float64{
		&kpis.CurrentYearSales,
		&kpis.PreviousYearSales,
		&kpis.GrowthPercentage,
		&kpis.AvgInvoiceValue,
		&kpis.ConversionRate,
		&kpis.AvgVisitorsPerInvoice,
		&kpis.AvgSalesPerBranch,
		&kpis.TotalDailyTarget,
		&kpis.TotalMonthlyTarget,
		&kpis.TotalYearlyTarget,
		&kpis.DailyAchievement,
		&kpis.MonthlyAchievement,
		&kpis.YearlyAchievement,
	} {
		*value = utils.RoundWithTwoDecimalPlace(*value)
	}

	return kpis
}
