package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/outlet-analytics-api/internal/config"
	"github.com/vfg2006/outlet-analytics-api/pkg/log"
)

// Loader recarrega o dataset a partir da origem configurada
type Loader interface {
	Load(ctx context.Context) error
}

// DatasetRefreshConfig representa a configuração do agendador de recarga do dataset
type DatasetRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetRefreshService agenda a recarga completa do dataset. Cada execução
// troca o snapshot inteiro; uma falha mantém o snapshot anterior.
type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	config    DatasetRefreshConfig
	loader    Loader

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	runs                int
}

func NewDatasetRefreshService(loader Loader, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.DatasetRefresh.CronSchedule,
		SyncEnabled:  appConfig.DatasetRefresh.Enabled,
	}

	log.L.WithFields(log.Fields{
		"job_cron":    refreshConfig.CronSchedule,
		"job_enabled": refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		loader:    loader,
	}
}

// Start inicia o agendador. O agendador para quando o contexto é cancelado.
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Recarga agendada do dataset desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()
	log.L.WithField("job_cron", s.config.CronSchedule).Info("Agendador de recarga do dataset iniciado")

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// tryAcquire marca a recarga como em andamento. Retorna false se já houver uma.
func (s *DatasetRefreshService) tryAcquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()

	return true
}

func (s *DatasetRefreshService) refresh(ctx context.Context) {
	if !s.tryAcquire() {
		log.ForContext(ctx).Info("Recarga do dataset já em andamento, ignorando")
		return
	}

	s.run(ctx)
}

func (s *DatasetRefreshService) run(ctx context.Context) {
	err := s.loader.Load(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.runs++
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"job_runs":     s.runs,
		"job_duration": s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
		"job_failed":   err != nil,
	}).Info("Recarga do dataset concluída")
}

// TriggerManualSync dispara uma recarga em segundo plano. Retorna false quando
// já existe uma recarga em andamento.
func (s *DatasetRefreshService) TriggerManualSync(ctx context.Context) bool {
	if !s.tryAcquire() {
		log.ForContext(ctx).Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return false
	}

	log.ForContext(ctx).Info("Iniciando recarga manual do dataset")
	go s.run(context.WithoutCancel(ctx))

	return true
}

// GetStatus retorna o status atual da recarga
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"sync_runs":              s.runs,
		"last_sync_error":        s.lastSyncError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
