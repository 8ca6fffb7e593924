package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/outlet-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/outlet-analytics-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDatasetRefresh = "dataset-refresh"
	CronJobTypeAll            = "all"
)

// CronJob é implementado pelos serviços agendados que aceitam execução manual
type CronJob interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DatasetRefreshService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDatasetRefresh, CronJobTypeAll:
			if services.DatasetRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga do dataset não disponível", nil)
				return
			}
			if !services.DatasetRefreshService.TriggerManualSync(r.Context()) {
				apiErrors.WriteError(w, apiErrors.ErrSyncRunning, "Recarga do dataset já em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset-refresh, all", nil)
			return
		}

		logger.WithField("job_type", cronType).Info("Cron job iniciada manualmente")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DatasetRefreshService != nil {
			status[CronJobTypeDatasetRefresh] = services.DatasetRefreshService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(status)
	}
}
