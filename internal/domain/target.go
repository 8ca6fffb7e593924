package domain

// DailyTarget representa a meta diária de uma loja
type DailyTarget struct {
	Outlet string  `json:"outlet"`
	Date   string  `json:"date"`
	Target float64 `json:"target"`
}

func (t DailyTarget) OutletName() string { return t.Outlet }

func (t DailyTarget) RecordYear() (int, bool) { return yearFromDate(t.Date) }

// MonthlyTarget representa a meta mensal de uma loja (Date é sempre o primeiro dia do mês)
type MonthlyTarget struct {
	Outlet       string  `json:"outlet"`
	Date         string  `json:"date"`
	TargetAmount float64 `json:"target_amount"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
}

func (t MonthlyTarget) OutletName() string { return t.Outlet }

func (t MonthlyTarget) RecordYear() (int, bool) {
	if t.Year > 0 {
		return t.Year, true
	}

	return yearFromDate(t.Date)
}

// YearlyTarget representa a meta anual de uma loja. Year zero indica que a
// origem dos dados não informou o ano.
type YearlyTarget struct {
	Outlet       string  `json:"outlet"`
	TargetAmount float64 `json:"target_amount"`
	Year         int     `json:"year,omitempty"`
}

func (t YearlyTarget) OutletName() string { return t.Outlet }

func (t YearlyTarget) RecordYear() (int, bool) { return t.Year, t.Year > 0 }
