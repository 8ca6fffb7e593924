package datasource

import (
	"context"
	_ "embed"

	"github.com/vfg2006/outlet-analytics-api/internal/domain"
)

//go:embed sample.json
var sampleJSON []byte

// SampleDataset retorna uma cópia nova da amostra embutida (três lojas, julho de 2024 e 2025)
func SampleDataset() *domain.Dataset {
	ds, err := Decode(sampleJSON)
	if err != nil {
		panic(err)
	}

	return ds
}

// SampleSource serve a amostra embutida, usada em desenvolvimento e testes
type SampleSource struct{}

func NewSampleSource() *SampleSource {
	return &SampleSource{}
}

func (s *SampleSource) Name() string {
	return KindSample
}

func (s *SampleSource) Fetch(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return SampleDataset(), nil
}
