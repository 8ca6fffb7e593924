package datasource

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
)

// FileSource lê o dataset de um arquivo JSON local
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return KindFile + ":" + s.path
}

func (s *FileSource) Fetch(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo do dataset %s", s.path)
	}

	return Decode(raw)
}
