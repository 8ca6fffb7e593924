package handler

import (
	"net/http"

	"github.com/vfg2006/outlet-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/outlet-analytics-api/pkg/utils"
)

// GetManagers retorna o ranking de gerentes pelo atingimento da meta
func GetManagers(service aggregating.Aggregator, defaultTop int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, years, err := parseFilters(r, service.Years())
		if err != nil {
			writeInvalidFormat(w, r, err)
			return
		}

		top, err := utils.ParsePositiveInt(r.URL.Query().Get("top"), defaultTop)
		if err != nil {
			writeInvalidFormat(w, r, err)
			return
		}

		writeReport(w, r, service, service.Managers(years, top))
	}
}

func GetDailyTrends(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, years, err := parseFilters(r, service.Years())
		if err != nil {
			writeInvalidFormat(w, r, err)
			return
		}

		writeReport(w, r, service, service.DailyTrends(params, years))
	}
}

func GetCorrelation(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, years, err := parseFilters(r, service.Years())
		if err != nil {
			writeInvalidFormat(w, r, err)
			return
		}

		writeReport(w, r, service, service.Correlation(params, years))
	}
}

// GetOutlets retorna as listas de filtro de lojas e gerentes
func GetOutlets(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeReport(w, r, service, map[string]any{
			"outlets":  service.Outlets(r.URL.Query().Get("manager")),
			"managers": service.ManagerNames(),
		})
	}
}
