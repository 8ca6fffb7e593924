package domain

import "math"

// Trend classifica o sinal do crescimento
type Trend string

const (
	TrendIncrease Trend = "increase"
	TrendDecrease Trend = "decrease"
	TrendNeutral  Trend = "neutral"
)

// ClassifyGrowth aplica a convenção única do projeto: somente crescimento
// estritamente positivo é aumento, zero é neutro.
func ClassifyGrowth(growth float64) Trend {
	switch {
	case growth > 0:
		return TrendIncrease
	case growth < 0:
		return TrendDecrease
	default:
		return TrendNeutral
	}
}

// SafeDiv divide n por d retornando zero quando o denominador não é positivo
func SafeDiv(n, d float64) float64 {
	if d <= 0 || math.IsNaN(d) || math.IsNaN(n) {
		return 0
	}

	result := n / d
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0
	}

	return result
}

// AchievementPercent calcula o atingimento da meta em porcentagem
func AchievementPercent(actual, target float64) float64 {
	return SafeDiv(actual, target) * 100
}

// YoYGrowthPercent calcula o crescimento em relação ao ano anterior
func YoYGrowthPercent(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}

	return SafeDiv(current-previous, previous) * 100
}

// ConversionRate calcula a porcentagem de visitantes que geraram nota
func ConversionRate(invoices, visitors float64) float64 {
	return SafeDiv(invoices, visitors) * 100
}

// AvgInvoiceValue calcula o ticket médio
func AvgInvoiceValue(salesAmount, invoiceCount float64) float64 {
	return SafeDiv(salesAmount, invoiceCount)
}

// Efficiency calcula a venda por visitante
func Efficiency(salesAmount, visitors float64) float64 {
	return SafeDiv(salesAmount, visitors)
}

// SharePercent calcula a participação de part sobre total
func SharePercent(part, total float64) float64 {
	return SafeDiv(part, total) * 100
}
