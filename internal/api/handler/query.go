package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
	"github.com/vfg2006/outlet-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/outlet-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/outlet-analytics-api/pkg/log"
	"github.com/vfg2006/outlet-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DatasetReadyHeader sinaliza ao cliente que a resposta foi calculada sem dataset
const DatasetReadyHeader = "X-Dataset-Ready"

// parseFilters lê outlet, manager e year da query. Com year informado o ano
// de comparação passa a ser year-1.
func parseFilters(r *http.Request, defaults domain.Years) (aggregating.FilterParams, domain.Years, error) {
	query := r.URL.Query()
	params := aggregating.FilterParams{}

	if outlet := query.Get("outlet"); outlet != "" {
		params = params.WithOutlet(outlet)
	}

	if manager := query.Get("manager"); manager != "" {
		params = params.WithManager(manager)
	}

	year, err := utils.ParseYear(query.Get("year"))
	if err != nil {
		return params, defaults, err
	}

	years := defaults
	if year != nil {
		params = params.WithYear(*year)
		years = domain.Years{Current: *year, Previous: *year - 1}
	}

	return params, years, nil
}

// writeReport escreve o relatório em JSON e marca a resposta quando o dataset ainda não foi carregado
func writeReport(w http.ResponseWriter, r *http.Request, service aggregating.Aggregator, report any) {
	if !service.Ready() {
		w.Header().Set(DatasetReadyHeader, "false")
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func writeInvalidFormat(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Warn("Parâmetro inválido")
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
}
