package handler

import (
	"net/http"

	"github.com/vfg2006/outlet-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/outlet-analytics-api/pkg/log"
)

// HealthcheckHandler responde a liveness com o estado do dataset carregado
func HealthcheckHandler(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"status":  "ok",
			"dataset": service.Status(),
		}); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao responder healthcheck")
		}
	})
}
