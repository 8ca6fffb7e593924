package aggregating

import "sort"

// RankTopN ordena uma cópia das linhas pela pontuação (maior primeiro) e
// retorna as n primeiras. A ordenação é estável: empates mantêm a ordem de
// entrada. n <= 0 retorna todas as linhas.
func RankTopN[T any](rows []T, score func(T) float64, n int) []T {
	ranked := make([]T, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked
}
