package handler

import (
	"net/http"

	"github.com/vfg2006/outlet-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/outlet-analytics-api/pkg/utils"
)

func GetSalesSummary(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, years, err := parseFilters(r, service.Years())
		if err != nil {
			writeInvalidFormat(w, r, err)
			return
		}

		summary := service.SalesSummary(params, years)
		summary.GrowthPercentage = utils.RoundWithTwoDecimalPlace(summary.GrowthPercentage)
		summary.DailyAverage = utils.RoundWithTwoDecimalPlace(summary.DailyAverage)

		writeReport(w, r, service, summary)
	}
}

// GetSalesTrend retorna a série diária de vendas dos dois anos
func GetSalesTrend(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, years, err := parseFilters(r, service.Years())
		if err != nil {
			writeInvalidFormat(w, r, err)
			return
		}

		writeReport(w, r, service, service.SalesTrend(params, years))
	}
}

func GetYearOverYear(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, years, err := parseFilters(r, service.Years())
		if err != nil {
			writeInvalidFormat(w, r, err)
			return
		}

		rows := service.YearOverYear(params, years)
		for i := range rows {
			rows[i].Growth = utils.RoundWithTwoDecimalPlace(rows[i].Growth)
		}

		writeReport(w, r, service, rows)
	}
}

// GetBranchDistribution retorna a participação de cada loja nas vendas do ano
func GetBranchDistribution(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, years, err := parseFilters(r, service.Years())
		if err != nil {
			writeInvalidFormat(w, r, err)
			return
		}

		shares := service.BranchDistribution(params, years.Current)
		writeReport(w, r, service, map[string]any{
			"year":   years.Current,
			"shares": shares,
		})
	}
}
