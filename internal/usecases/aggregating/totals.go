package aggregating

import (
	"github.com/samber/lo"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
)

// salesTotals acumula as métricas de venda de um conjunto de registros
type salesTotals struct {
	Sales    float64
	Visitors int
	Invoices int
	Records  int
}

func totalsOf[K comparable](row *Row[K]) salesTotals {
	if row == nil {
		return salesTotals{}
	}

	return salesTotals{
		Sales:    row.Sum(MetricSales),
		Visitors: int(row.Decimal(MetricVisitors).IntPart()),
		Invoices: int(row.Decimal(MetricInvoices).IntPart()),
		Records:  row.Count,
	}
}

// totalsByYear agrupa as vendas por ano e devolve os totais do ano pedido
func totalsByYear(sales []domain.Sale) func(year int) salesTotals {
	groups := GroupAndSum(sales, ByYear[domain.Sale], SalesAmount, SalesVisitors, SalesInvoices)

	return func(year int) salesTotals {
		return totalsOf(groups.Get(year))
	}
}

// outletTotals indexa os totais de venda por loja e ano
type outletTotals struct {
	groups *Groups[OutletYear]
}

func newOutletTotals(sales []domain.Sale) outletTotals {
	return outletTotals{
		groups: GroupAndSum(sales, ByOutletYear[domain.Sale], SalesAmount, SalesVisitors, SalesInvoices),
	}
}

func (o outletTotals) get(outlet string, year int) salesTotals {
	return totalsOf(o.groups.Get(OutletYear{Outlet: outlet, Year: year}))
}

// yearlyTargetOf retorna a meta anual da loja no ano. A meta do próprio ano
// vence a meta sem ano; entre metas do mesmo tipo vale a primeira.
func yearlyTargetOf(targets []domain.YearlyTarget, outlet string, year int) float64 {
	var fallback *domain.YearlyTarget

	for i := range targets {
		target := &targets[i]
		if target.Outlet != outlet {
			continue
		}

		if target.Year == year {
			return target.TargetAmount
		}
		if target.Year == 0 && fallback == nil {
			fallback = target
		}
	}

	if fallback == nil {
		return 0
	}

	return fallback.TargetAmount
}

// totalYearlyTarget soma uma meta anual por loja, resolvida por yearlyTargetOf
func totalYearlyTarget(targets []domain.YearlyTarget, year int) float64 {
	outlets := lo.Uniq(lo.Map(targets, func(t domain.YearlyTarget, _ int) string { return t.Outlet }))

	return SumOf(outlets, Metric[string]{
		Value: func(outlet string) float64 { return yearlyTargetOf(targets, outlet, year) },
	}).InexactFloat64()
}

// recordsOfYear mantém apenas os registros com ano conhecido e igual ao pedido
func recordsOfYear[T domain.OutletRecord](records []T, year int) []T {
	return lo.Filter(records, func(record T, _ int) bool {
		y, ok := record.RecordYear()
		return ok && y == year
	})
}
