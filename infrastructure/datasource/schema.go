package datasource

import (
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
)

// FetchedPayload é o formato publicado em /data.json
type FetchedPayload struct {
	DailyTargets []struct {
		Outlet string  `json:"Outlet Name"`
		Date   string  `json:"DATE"`
		Day    int     `json:"DAY"`
		Target float64 `json:"target"`
	} `json:"daily target"`
	Sales []struct {
		Outlet     string  `json:"Outlet Name"`
		Date       string  `json:"DATE"`
		BillAmount float64 `json:"Bill Amount"`
		BillCount  int     `json:"No Of Bills"`
		Year       int     `json:"YEAR"`
		Month      int     `json:"MONTH"`
		Day        int     `json:"DAY"`
		Visitors   int     `json:"visitors"`
	} `json:"sales"`
	Areas []struct {
		Outlet  string `json:"Outlet Name"`
		Manager string `json:"area manager"`
		Type    string `json:"type"`
	} `json:"areas"`
	MonthlyTargets []struct {
		Outlet       string  `json:"Outlet Name"`
		Date         string  `json:"DATE"`
		TargetAmount float64 `json:"Target Amount"`
		Year         int     `json:"YEAR"`
		Month        int     `json:"MONTH"`
	} `json:"monthly target"`
	YearlyTargets []struct {
		Outlet       string  `json:"Outlet Name"`
		TargetAmount float64 `json:"Target Amount"`
		Year         int     `json:"YEAR"`
	} `json:"yearly target"`
}

// SamplePayload é o formato da amostra estática. Difere do publicado nos
// nomes das chaves e não traz ano nas metas anuais.
type SamplePayload struct {
	DailyTargets []struct {
		Outlet string  `json:"Outlet Name"`
		Date   string  `json:"DATE"`
		Target float64 `json:"Target"`
	} `json:"daily target"`
	Sales []struct {
		Outlet      string  `json:"Outlet Name"`
		Date        string  `json:"DATE"`
		SalesAmount float64 `json:"Sales Amount"`
		Visitors    int     `json:"Visitors"`
		Invoices    int     `json:"Invoices"`
		Year        int     `json:"Year"`
		Month       int     `json:"Month"`
		Day         int     `json:"Day"`
	} `json:"sales"`
	Areas []struct {
		Outlet  string `json:"Outlet Name"`
		Manager string `json:"Area Manager"`
	} `json:"areas"`
	MonthlyTargets []struct {
		Outlet       string  `json:"Outlet Name"`
		Date         string  `json:"DATE"`
		TargetAmount float64 `json:"Target Amount"`
		Year         int     `json:"Year"`
		Month        int     `json:"Month"`
	} `json:"monthly target"`
	YearlyTargets []struct {
		Outlet       string  `json:"Outlet Name"`
		TargetAmount float64 `json:"Target Amount"`
	} `json:"yearly target"`
}

// Dataset converte o formato publicado para o modelo canônico
func (p FetchedPayload) Dataset() *domain.Dataset {
	ds := newDataset(len(p.DailyTargets), len(p.Sales), len(p.Areas), len(p.MonthlyTargets), len(p.YearlyTargets))

	for _, t := range p.DailyTargets {
		ds.DailyTargets = append(ds.DailyTargets, domain.DailyTarget{Outlet: t.Outlet, Date: t.Date, Target: t.Target})
	}

	for _, s := range p.Sales {
		ds.Sales = append(ds.Sales, domain.Sale{
			Outlet:     s.Outlet,
			Date:       s.Date,
			BillAmount: s.BillAmount,
			BillCount:  s.BillCount,
			Year:       s.Year,
			Month:      s.Month,
			Day:        s.Day,
			Visitors:   s.Visitors,
		})
	}

	for _, a := range p.Areas {
		ds.Areas = append(ds.Areas, domain.Area{Outlet: a.Outlet, Manager: a.Manager, Type: a.Type})
	}

	for _, t := range p.MonthlyTargets {
		ds.MonthlyTargets = append(ds.MonthlyTargets, domain.MonthlyTarget{
			Outlet:       t.Outlet,
			Date:         t.Date,
			TargetAmount: t.TargetAmount,
			Year:         t.Year,
			Month:        t.Month,
		})
	}

	for _, t := range p.YearlyTargets {
		ds.YearlyTargets = append(ds.YearlyTargets, domain.YearlyTarget{Outlet: t.Outlet, TargetAmount: t.TargetAmount, Year: t.Year})
	}

	return ds
}

// Dataset converte o formato da amostra para o modelo canônico
func (p SamplePayload) Dataset() *domain.Dataset {
	ds := newDataset(len(p.DailyTargets), len(p.Sales), len(p.Areas), len(p.MonthlyTargets), len(p.YearlyTargets))

	for _, t := range p.DailyTargets {
		ds.DailyTargets = append(ds.DailyTargets, domain.DailyTarget{Outlet: t.Outlet, Date: t.Date, Target: t.Target})
	}

	for _, s := range p.Sales {
		ds.Sales = append(ds.Sales, domain.Sale{
			Outlet:     s.Outlet,
			Date:       s.Date,
			BillAmount: s.SalesAmount,
			BillCount:  s.Invoices,
			Year:       s.Year,
			Month:      s.Month,
			Day:        s.Day,
			Visitors:   s.Visitors,
		})
	}

	for _, a := range p.Areas {
		ds.Areas = append(ds.Areas, domain.Area{Outlet: a.Outlet, Manager: a.Manager})
	}

	for _, t := range p.MonthlyTargets {
		ds.MonthlyTargets = append(ds.MonthlyTargets, domain.MonthlyTarget{
			Outlet:       t.Outlet,
			Date:         t.Date,
			TargetAmount: t.TargetAmount,
			Year:         t.Year,
			Month:        t.Month,
		})
	}

	// Sem ano a meta anual vale para qualquer ano
	for _, t := range p.YearlyTargets {
		ds.YearlyTargets = append(ds.YearlyTargets, domain.YearlyTarget{Outlet: t.Outlet, TargetAmount: t.TargetAmount})
	}

	return ds
}

func newDataset(daily, sales, areas, monthly, yearly int) *domain.Dataset {
	return &domain.Dataset{
		DailyTargets:   make([]domain.DailyTarget, 0, daily),
		Sales:          make([]domain.Sale, 0, sales),
		Areas:          make([]domain.Area, 0, areas),
		MonthlyTargets: make([]domain.MonthlyTarget, 0, monthly),
		YearlyTargets:  make([]domain.YearlyTarget, 0, yearly),
	}
}
