package utils

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	minYear = 2000
	maxYear = 2100
)

// ParseYear converte o parâmetro de ano da query. Vazio retorna nil.
func ParseYear(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	year, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("ano inválido: %q", value)
	}

	if year < minYear || year > maxYear {
		return nil, fmt.Errorf("ano fora do intervalo %d-%d: %d", minYear, maxYear, year)
	}

	return &year, nil
}

// ParsePositiveInt converte um parâmetro inteiro positivo. Vazio retorna o padrão.
func ParsePositiveInt(value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("valor inválido: %q", value)
	}

	return n, nil
}
