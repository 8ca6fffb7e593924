package aggregating

import (
	"github.com/samber/lo"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
)

// FilterParams define os filtros opcionais da tela. Campos nil não são aplicados.
type FilterParams struct {
	Outlet  *string
	Manager *string
	Year    *int
}

func (p FilterParams) IsEmpty() bool {
	return p.Outlet == nil && p.Manager == nil && p.Year == nil
}

func (p FilterParams) WithOutlet(outlet string) FilterParams {
	p.Outlet = &outlet
	return p
}

func (p FilterParams) WithManager(manager string) FilterParams {
	p.Manager = &manager
	return p
}

func (p FilterParams) WithYear(year int) FilterParams {
	p.Year = &year
	return p
}

// WithoutYear remove o filtro de ano, usado pelos relatórios que comparam anos
func (p FilterParams) WithoutYear() FilterParams {
	p.Year = nil
	return p
}

// FilterRecords retorna os registros que atendem a todos os filtros informados.
// O filtro por gerente faz o join pela área da loja; lojas sem área nunca
// casam com um gerente. O filtro de ano só descarta registros cujo ano é conhecido.
func FilterRecords[T domain.OutletRecord](records []T, managers domain.ManagerIndex, p FilterParams) []T {
	return lo.Filter(records, func(record T, _ int) bool {
		if p.Outlet != nil && record.OutletName() != *p.Outlet {
			return false
		}

		if p.Manager != nil {
			manager, ok := managers.ManagerOf(record.OutletName())
			if !ok || manager != *p.Manager {
				return false
			}
		}

		if p.Year != nil {
			if year, known := record.RecordYear(); known && year != *p.Year {
				return false
			}
		}

		return true
	})
}

// filterDataset aplica os filtros de loja/gerente (e ano, se houver) a todas as coleções
func filterDataset(ds *domain.Dataset, p FilterParams) *domain.Dataset {
	if ds == nil {
		return &domain.Dataset{}
	}

	managers := ds.ManagerIndex()

	return &domain.Dataset{
		DailyTargets:   FilterRecords(ds.DailyTargets, managers, p),
		Sales:          FilterRecords(ds.Sales, managers, p),
		Areas:          FilterRecords(ds.Areas, managers, p),
		MonthlyTargets: FilterRecords(ds.MonthlyTargets, managers, p),
		YearlyTargets:  FilterRecords(ds.YearlyTargets, managers, p),
	}
}
