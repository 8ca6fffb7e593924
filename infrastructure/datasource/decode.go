package datasource

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Schema identifica o formato do JSON recebido
type Schema string

const (
	SchemaFetched Schema = "fetched"
	SchemaSample  Schema = "sample"
)

var ErrEmptyPayload = errors.New("payload do dataset vazio")

type schemaProbe struct {
	Sales []map[string]jsoniter.RawMessage `json:"sales"`
	Areas []map[string]jsoniter.RawMessage `json:"areas"`
}

// DetectSchema identifica o formato pelas chaves das vendas e, na falta delas,
// pelas chaves das áreas. Sem pistas assume o formato publicado.
func DetectSchema(raw []byte) (Schema, error) {
	var probe schemaProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return "", errors.Wrap(err, "erro ao identificar o formato do dataset")
	}

	for _, sale := range probe.Sales {
		if _, ok := sale["Sales Amount"]; ok {
			return SchemaSample, nil
		}
		if _, ok := sale["Bill Amount"]; ok {
			return SchemaFetched, nil
		}
	}

	for _, area := range probe.Areas {
		if _, ok := area["Area Manager"]; ok {
			return SchemaSample, nil
		}
		if _, ok := area["area manager"]; ok {
			return SchemaFetched, nil
		}
	}

	return SchemaFetched, nil
}

// Decode converte qualquer um dos formatos conhecidos para o modelo canônico
func Decode(raw []byte) (*domain.Dataset, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyPayload
	}

	schema, err := DetectSchema(raw)
	if err != nil {
		return nil, err
	}

	switch schema {
	case SchemaSample:
		var payload SamplePayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar dataset de amostra")
		}
		return payload.Dataset(), nil
	default:
		var payload FetchedPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar dataset publicado")
		}
		return payload.Dataset(), nil
	}
}
