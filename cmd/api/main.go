package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/outlet-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/outlet-analytics-api/internal/api"
	"github.com/vfg2006/outlet-analytics-api/internal/api/handler"
	"github.com/vfg2006/outlet-analytics-api/internal/config"
	"github.com/vfg2006/outlet-analytics-api/internal/scheduler"
	"github.com/vfg2006/outlet-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/outlet-analytics-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, err := datasource.New(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao criar a origem de dados")
	}

	service := aggregating.NewService(cfg, source)

	// Sem dataset a API sobe e responde com valores neutros até a próxima recarga
	if err := service.Load(ctx); err != nil {
		log.L.WithError(err).Warn("Dataset não carregado na inicialização")
	}

	datasetRefreshService := scheduler.NewDatasetRefreshService(service, cfg)
	if err := datasetRefreshService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	}

	server := api.New(cfg, service, handler.CronJobServices{
		DatasetRefreshService: datasetRefreshService,
	})

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// chdirToSource muda para o diretório do main para que o .env local seja encontrado
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}
