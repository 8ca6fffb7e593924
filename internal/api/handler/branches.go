package handler

import (
	"net/http"

	"github.com/vfg2006/outlet-analytics-api/internal/domain"
	"github.com/vfg2006/outlet-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/outlet-analytics-api/internal/usecases/exporting"
	"github.com/vfg2006/outlet-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/outlet-analytics-api/pkg/log"
	"github.com/vfg2006/outlet-analytics-api/pkg/utils"
)

type branchesResponse struct {
	domain.BranchReport
	Top []domain.BranchPerformance `json:"top"`
}

func parseBranchQuery(r *http.Request) aggregating.BranchQuery {
	query := r.URL.Query()

	return aggregating.BranchQuery{
		Search:  query.Get("search"),
		Region:  query.Get("region"),
		Manager: query.Get("manager"),
	}
}

// GetBranches retorna o desempenho das lojas e as maiores vendas para o gráfico
func GetBranches(service aggregating.Aggregator, defaultTop int) http.HandlerFunc {
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

		report := service.Branches(parseBranchQuery(r), years)
		writeReport(w, r, service, branchesResponse{
			BranchReport: report,
			Top:          aggregating.TopBranches(report.Branches, top),
		})
	}
}

func GetRegions(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, years, err := parseFilters(r, service.Years())
		if err != nil {
			writeInvalidFormat(w, r, err)
			return
		}

		writeReport(w, r, service, service.Regions(years))
	}
}

// ExportBranches gera a planilha XLSX do desempenho das lojas
func ExportBranches(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, years, err := parseFilters(r, service.Years())
		if err != nil {
			writeInvalidFormat(w, r, err)
			return
		}

		export, err := exporting.BranchReport(service.Branches(parseBranchQuery(r), years))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar planilha de lojas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}

		if !service.Ready() {
			w.Header().Set(DatasetReadyHeader, "false")
		}
		w.Header().Set("Content-Type", exporting.ContentType)
		w.Header().Set("Content-Disposition", "attachment; filename=\""+export.FileName+"\"")
		if _, err := w.Write(export.Content); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar planilha")
		}
	}
}
