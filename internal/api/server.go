package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/outlet-analytics-api/internal/api/handler"
	"github.com/vfg2006/outlet-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/outlet-analytics-api/internal/config"
	"github.com/vfg2006/outlet-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/outlet-analytics-api/pkg/log"
	"github.com/vfg2006/outlet-analytics-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com todas as rotas e a cadeia de middlewares
func NewHandler(cfg *config.Config, service aggregating.Aggregator, cronServices handler.CronJobServices) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(service)...),
		router.WithRoutes(handler.Dashboard(service)...),
		router.WithRoutes(handler.Sales(service)...),
		router.WithRoutes(handler.Branches(service, cfg.Dashboard.BranchTopN)...),
		router.WithRoutes(handler.Analytics(service, cfg.Dashboard.ManagerTopN)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	for _, route := range rt.Routes() {
		log.L.Debugf("Rota registrada: %s", route)
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.CORSOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, service aggregating.Aggregator, cronServices handler.CronJobServices) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, service, cronServices),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	log.L.WithFields(log.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}
