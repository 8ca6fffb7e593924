package domain

// KPIReport reúne os indicadores gerais do painel
type KPIReport struct {
	Years                 Years   `json:"years"`
	CurrentYearSales      float64 `json:"current_year_sales"`
	PreviousYearSales     float64 `json:"previous_year_sales"`
	GrowthPercentage      float64 `json:"growth_percentage"`
	GrowthTrend           Trend   `json:"growth_trend"`
	TotalVisitors         int     `json:"total_visitors"`
	TotalInvoices         int     `json:"total_invoices"`
	AvgInvoiceValue       float64 `json:"avg_invoice_value"`
	ConversionRate        float64 `json:"conversion_rate"`
	AvgVisitorsPerInvoice float64 `json:"avg_visitors_per_invoice"`
	TotalBranches         int     `json:"total_branches"`
	AvgSalesPerBranch     float64 `json:"avg_sales_per_branch"`
	TotalDailyTarget      float64 `json:"total_daily_target"`
	TotalMonthlyTarget    float64 `json:"total_monthly_target"`
	TotalYearlyTarget     float64 `json:"total_yearly_target"`
	DailyAchievement      float64 `json:"daily_achievement"`
	MonthlyAchievement    float64 `json:"monthly_achievement"`
	YearlyAchievement     float64 `json:"yearly_achievement"`
}

// SalesSummary é o resumo da página de vendas
type SalesSummary struct {
	Years             Years   `json:"years"`
	CurrentYearSales  float64 `json:"current_year_sales"`
	PreviousYearSales float64 `json:"previous_year_sales"`
	GrowthPercentage  float64 `json:"growth_percentage"`
	GrowthTrend       Trend   `json:"growth_trend"`
	DailyAverage      float64 `json:"daily_average"`
	BestDay           float64 `json:"best_day"`
	BestDayDate       string  `json:"best_day_date"`
	WorstDay          float64 `json:"worst_day"`
	WorstDayDate      string  `json:"worst_day_date"`
}

// TrendPoint é um ponto da série diária de vendas
type TrendPoint struct {
	Date              string  `json:"date"`
	CurrentYearSales  float64 `json:"current_year_sales"`
	PreviousYearSales float64 `json:"previous_year_sales"`
	Target            float64 `json:"target"`
	Visitors          int     `json:"visitors"`
}

// SalesTrend é a série cronológica de vendas. Skipped conta os registros
// descartados por data inválida.
type SalesTrend struct {
	Years   Years        `json:"years"`
	Points  []TrendPoint `json:"points"`
	Skipped int          `json:"skipped"`
}

// BranchPerformance é a linha de desempenho de uma loja
type BranchPerformance struct {
	Name              string  `json:"name"`
	DisplayName       string  `json:"display_name"`
	Manager           string  `json:"manager"`
	Region            string  `json:"region"`
	CurrentYearSales  float64 `json:"current_year_sales"`
	PreviousYearSales float64 `json:"previous_year_sales"`
	Growth            float64 `json:"growth"`
	GrowthTrend       Trend   `json:"growth_trend"`
	Visitors          int     `json:"visitors"`
	Invoices          int     `json:"invoices"`
	Target            float64 `json:"target"`
	Achievement       float64 `json:"achievement"`
	AvgInvoiceValue   float64 `json:"avg_invoice_value"`
	ConversionRate    float64 `json:"conversion_rate"`
}

// BranchSummary resume as lojas filtradas
type BranchSummary struct {
	TotalBranches int     `json:"total_branches"`
	TotalSales    float64 `json:"total_sales"`
	TotalTarget   float64 `json:"total_target"`
	Achievement   float64 `json:"achievement"`
	AvgGrowth     float64 `json:"avg_growth"`
	TopPerformers int     `json:"top_performers"`
}

type BranchReport struct {
	Years    Years               `json:"years"`
	Branches []BranchPerformance `json:"branches"`
	Summary  BranchSummary       `json:"summary"`
}

// RegionBranches conta as lojas por região
type RegionBranches struct {
	Region   string `json:"region"`
	Branches int    `json:"branches"`
}

// RegionPerformance consolida vendas e metas por região
type RegionPerformance struct {
	Region         string  `json:"region"`
	Branches       int     `json:"branches"`
	Sales          float64 `json:"sales"`
	Target         float64 `json:"target"`
	Achievement    float64 `json:"achievement"`
	SalesPerBranch float64 `json:"sales_per_branch"`
}

type RegionalReport struct {
	Distribution []RegionBranches    `json:"distribution"`
	Performance  []RegionPerformance `json:"performance"`
	// Vendas de lojas sem área cadastrada ficam fora de qualquer região
	UnmappedSales float64 `json:"unmapped_sales"`
}

// ManagerPerformance consolida o desempenho das lojas de um gerente
type ManagerPerformance struct {
	Manager           string  `json:"manager"`
	Sales             float64 `json:"sales"`
	Visitors          int     `json:"visitors"`
	Invoices          int     `json:"invoices"`
	Target            float64 `json:"target"`
	Branches          int     `json:"branches"`
	Achievement       float64 `json:"achievement"`
	AvgSalesPerBranch float64 `json:"avg_sales_per_branch"`
	Efficiency        float64 `json:"efficiency"`
	ConversionRate    float64 `json:"conversion_rate"`
}

type ManagerReport struct {
	Managers []ManagerPerformance `json:"managers"`
	// Lojas com vendas mas sem área cadastrada, fora do ranking de gerentes
	UnmappedOutlets []string `json:"unmapped_outlets"`
}

// DailyTrend é a média por dia do mês
type DailyTrend struct {
	Day         int     `json:"day"`
	AvgSales    float64 `json:"avg_sales"`
	AvgVisitors float64 `json:"avg_visitors"`
	AvgInvoices float64 `json:"avg_invoices"`
	Efficiency  float64 `json:"efficiency"`
}

// CorrelationPoint relaciona visitantes e vendas de um registro diário
type CorrelationPoint struct {
	Outlet     string  `json:"outlet"`
	Date       string  `json:"date"`
	Visitors   int     `json:"visitors"`
	Sales      float64 `json:"sales"`
	Invoices   int     `json:"invoices"`
	Efficiency float64 `json:"efficiency"`
}

// BranchShare é a participação de uma loja nas vendas do ano
type BranchShare struct {
	Name     string  `json:"name"`
	FullName string  `json:"full_name"`
	Value    float64 `json:"value"`
	Share    float64 `json:"share"`
}

// YearOverYearRow compara as vendas de uma loja entre os dois anos
type YearOverYearRow struct {
	Outlet            string  `json:"outlet"`
	Name              string  `json:"name"`
	PreviousYearSales float64 `json:"previous_year_sales"`
	CurrentYearSales  float64 `json:"current_year_sales"`
	Growth            float64 `json:"growth"`
	Difference        float64 `json:"difference"`
	Trend             Trend   `json:"trend"`
}

// OutletOption é um item da lista de filtro de lojas
type OutletOption struct {
	Outlet      string `json:"outlet"`
	DisplayName string `json:"display_name"`
	Manager     string `json:"manager"`
	Region      string `json:"region"`
}
