package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Só minúsculas e dígitos, o ID aparece em nomes de arquivo exportados
const (
	idAlphabet = "abcdefghijkmnpqrstuvwxyz23456789"
	idLength   = 8
)

// GenerateID gera um identificador curto para exportações e registros semeados
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
