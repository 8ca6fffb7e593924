package datasource

//go:generate mockgen -source=source.go -destination=mocks/source.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/outlet-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/outlet-analytics-api/infrastructure/repository"
	"github.com/vfg2006/outlet-analytics-api/internal/config"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
)

// Source carrega o dataset completo de uma origem
type Source interface {
	Fetch(ctx context.Context) (*domain.Dataset, error)
	Name() string
}

const (
	KindFile     = "file"
	KindHTTP     = "http"
	KindPostgres = "postgres"
	KindSample   = "sample"
)

const defaultTimeout = 30 * time.Second

var ErrUnknownKind = errors.New("tipo de origem de dados desconhecido")

// New cria a origem configurada em DATASOURCE_KIND. A conexão com o banco só
// é aberta para o tipo postgres.
func New(ctx context.Context, cfg *config.Config) (Source, error) {
	switch cfg.DataSource.Kind {
	case KindFile:
		return NewFileSource(cfg.DataSource.Path), nil
	case KindHTTP:
		if cfg.DataSource.URL == "" {
			return nil, errors.New("DATASOURCE_URL é obrigatório para origem http")
		}
		return NewHTTPSource(cfg.DataSource.URL, cfg.DataSource.Timeout), nil
	case KindPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao conectar no banco de dados")
		}
		return NewPostgresSource(repository.NewDatasetRepository(conn)), nil
	case KindSample, "":
		return NewSampleSource(), nil
	default:
		return nil, errors.Wrap(ErrUnknownKind, fmt.Sprintf("kind=%q", cfg.DataSource.Kind))
	}
}
