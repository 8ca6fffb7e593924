package domain

import "time"

// Dataset é o conjunto canônico carregado da origem de dados. Depois de
// carregado é tratado como somente leitura.
type Dataset struct {
	DailyTargets   []DailyTarget   `json:"daily_targets"`
	Sales          []Sale          `json:"sales"`
	Areas          []Area          `json:"areas"`
	MonthlyTargets []MonthlyTarget `json:"monthly_targets"`
	YearlyTargets  []YearlyTarget  `json:"yearly_targets"`
}

// ManagerIndex monta o índice loja -> gerente. Quando uma loja aparece mais
// de uma vez a última área vence.
func (d *Dataset) ManagerIndex() ManagerIndex {
	if d == nil {
		return ManagerIndex{}
	}

	idx := make(ManagerIndex, len(d.Areas))
	for _, area := range d.Areas {
		idx[area.Outlet] = area.Manager
	}

	return idx
}

func (d *Dataset) IsEmpty() bool {
	if d == nil {
		return true
	}

	return len(d.Sales) == 0 && len(d.Areas) == 0 && len(d.DailyTargets) == 0 &&
		len(d.MonthlyTargets) == 0 && len(d.YearlyTargets) == 0
}

// Years define o ano corrente e o ano de comparação usados nos relatórios
type Years struct {
	Current  int `json:"current"`
	Previous int `json:"previous"`
}

// DefaultYears retorna o par de anos padrão (ano corrente e o anterior)
func DefaultYears(now time.Time) Years {
	return Years{Current: now.Year(), Previous: now.Year() - 1}
}

// DatasetStatus descreve o estado do snapshot carregado
type DatasetStatus struct {
	Ready    bool      `json:"ready"`
	LoadedAt time.Time `json:"loaded_at"`
	Sales    int       `json:"sales"`
	Outlets  int       `json:"outlets"`
	Source   string    `json:"source"`
}
