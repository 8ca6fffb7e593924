package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "Zero", value: 0, expected: 0},
		{name: "Arredonda para cima", value: 92.76190476, expected: 92.76},
		{name: "Metade para longe do zero", value: 1.005, expected: 1.01},
		{name: "Negativo", value: -20.5446, expected: -20.54},
		{name: "Inteiro", value: 4870000, expected: 4870000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.value))
		})
	}
}

func TestParseYear(t *testing.T) {
	year, err := ParseYear("")
	require.NoError(t, err)
	assert.Nil(t, year)

	year, err = ParseYear(" 2025 ")
	require.NoError(t, err)
	assert.Equal(t, 2025, *year)

	_, err = ParseYear("abc")
	assert.Error(t, err)

	_, err = ParseYear("1999")
	assert.Error(t, err)
}

func TestParsePositiveInt(t *testing.T) {
	n, err := ParsePositiveInt("", 6)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	n, err = ParsePositiveInt("3", 6)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = ParsePositiveInt("0", 6)
	assert.Error(t, err)

	_, err = ParsePositiveInt("x", 6)
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, first, 8)
	assert.Regexp(t, `^[a-z2-9]{8}$`, first)

	second, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
