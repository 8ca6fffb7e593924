package aggregating

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
)

// KeyFunc extrai a chave de agrupamento. O segundo retorno false indica que o
// registro não possui chave válida e será contado em Groups.Skipped.
type KeyFunc[T any, K comparable] func(T) (K, bool)

// Metric define um campo numérico somado em cada grupo
type Metric[T any] struct {
	Name  string
	Value func(T) float64
}

// Row é o resultado agregado de um grupo
type Row[K comparable] struct {
	Key   K
	Count int
	sums  map[string]decimal.Decimal
}

// Decimal retorna a soma exata da métrica
func (r *Row[K]) Decimal(name string) decimal.Decimal {
	if r == nil {
		return decimal.Zero
	}

	return r.sums[name]
}

// Sum retorna a soma da métrica como float64
func (r *Row[K]) Sum(name string) float64 {
	return r.Decimal(name).InexactFloat64()
}

// Avg retorna a média da métrica por registro do grupo
func (r *Row[K]) Avg(name string) float64 {
	if r == nil || r.Count == 0 {
		return 0
	}

	return r.Decimal(name).Div(decimal.NewFromInt(int64(r.Count))).InexactFloat64()
}

// Groups mantém os grupos na ordem em que as chaves apareceram pela primeira vez
type Groups[K comparable] struct {
	index   map[K]*Row[K]
	order   []K
	Skipped int
}

func (g *Groups[K]) Len() int {
	if g == nil {
		return 0
	}

	return len(g.order)
}

// Get retorna o grupo da chave ou nil quando nenhum registro contribuiu para ela
func (g *Groups[K]) Get(key K) *Row[K] {
	if g == nil {
		return nil
	}

	return g.index[key]
}

// Rows retorna os grupos na ordem de inserção
func (g *Groups[K]) Rows() []*Row[K] {
	if g == nil {
		return nil
	}

	rows := make([]*Row[K], 0, len(g.order))
	for _, key := range g.order {
		rows = append(rows, g.index[key])
	}

	return rows
}

// Total soma a métrica em todos os grupos
func (g *Groups[K]) Total(name string) decimal.Decimal {
	total := decimal.Zero
	for _, row := range g.Rows() {
		total = total.Add(row.Decimal(name))
	}

	return total
}

// GroupAndSum agrupa os registros pela chave e soma as métricas de cada grupo.
// Somente chaves com pelo menos um registro aparecem no resultado. Registros
// duplicados são somados.
func GroupAndSum[T any, K comparable](records []T, key func(T) (K, bool), metrics ...Metric[T]) *Groups[K] {
	groups := &Groups[K]{
		index: make(map[K]*Row[K]),
		order: make([]K, 0),
	}

	for _, record := range records {
		k, ok := key(record)
		if !ok {
			groups.Skipped++
			continue
		}

		row, exists := groups.index[k]
		if !exists {
			row = &Row[K]{Key: k, sums: make(map[string]decimal.Decimal, len(metrics))}
			groups.index[k] = row
			groups.order = append(groups.order, k)
		}

		row.Count++
		for _, metric := range metrics {
			row.sums[metric.Name] = row.sums[metric.Name].Add(decimal.NewFromFloat(metric.Value(record)))
		}
	}

	return groups
}

// SumOf soma a métrica sobre todos os registros, sem agrupar
func SumOf[T any](records []T, metric Metric[T]) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(decimal.NewFromFloat(metric.Value(record)))
	}

	return total
}

// SortRowsByDate ordena grupos com chave de data em ordem cronológica
func SortRowsByDate(rows []*Row[time.Time]) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Key.Before(rows[j].Key)
	})
}

// Métricas de venda
const (
	MetricSales    = "sales"
	MetricVisitors = "visitors"
	MetricInvoices = "invoices"
	MetricTarget   = "target"
)

var (
	SalesAmount   = Metric[domain.Sale]{Name: MetricSales, Value: func(s domain.Sale) float64 { return s.BillAmount }}
	SalesVisitors = Metric[domain.Sale]{Name: MetricVisitors, Value: func(s domain.Sale) float64 { return float64(s.Visitors) }}
	SalesInvoices = Metric[domain.Sale]{Name: MetricInvoices, Value: func(s domain.Sale) float64 { return float64(s.BillCount) }}

	DailyTargetAmount   = Metric[domain.DailyTarget]{Name: MetricTarget, Value: func(t domain.DailyTarget) float64 { return t.Target }}
	MonthlyTargetAmount = Metric[domain.MonthlyTarget]{Name: MetricTarget, Value: func(t domain.MonthlyTarget) float64 { return t.TargetAmount }}
)

// Chaves de agrupamento

func ByOutlet[T domain.OutletRecord](record T) (string, bool) {
	return record.OutletName(), true
}

func ByRegion[T domain.OutletRecord](record T) (string, bool) {
	return domain.RegionOf(record.OutletName()), true
}

// ByManager agrupa pelo gerente da loja. Lojas sem área ficam de fora (Skipped).
func ByManager[T domain.OutletRecord](managers domain.ManagerIndex) KeyFunc[T, string] {
	return func(record T) (string, bool) {
		return managers.ManagerOf(record.OutletName())
	}
}

func ByYear[T domain.OutletRecord](record T) (int, bool) {
	return record.RecordYear()
}

// ByDate agrupa pela data de calendário. Datas inválidas ficam de fora (Skipped).
func ByDate(sale domain.Sale) (time.Time, bool) {
	date, err := domain.ParseDate(sale.Date)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

func DailyTargetByDate(target domain.DailyTarget) (time.Time, bool) {
	date, err := domain.ParseDate(target.Date)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

func ByDayOfMonth(sale domain.Sale) (int, bool) {
	if sale.Day >= 1 && sale.Day <= 31 {
		return sale.Day, true
	}

	date, err := domain.ParseDate(sale.Date)
	if err != nil {
		return 0, false
	}

	return date.Day(), true
}

// OutletYear é a chave composta loja + ano
type OutletYear struct {
	Outlet string
	Year   int
}

func ByOutletYear[T domain.OutletRecord](record T) (OutletYear, bool) {
	year, ok := record.RecordYear()
	if !ok {
		return OutletYear{}, false
	}

	return OutletYear{Outlet: record.OutletName(), Year: year}, true
}
