package domain

import (
	"strings"
	"time"
)

// OutletRecord é implementado por todo registro que carrega o nome da loja
// e que pode (ou não) conhecer o ano a que pertence
type OutletRecord interface {
	OutletName() string
	RecordYear() (int, bool)
}

// Sale representa as vendas consolidadas de uma loja em um dia
type Sale struct {
	Outlet     string  `json:"outlet"`
	Date       string  `json:"date"` // Formato yyyy-mm-dd
	BillAmount float64 `json:"bill_amount"`
	BillCount  int     `json:"bill_count"`
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	Day        int     `json:"day"`
	Visitors   int     `json:"visitors"`
}

func (s Sale) OutletName() string { return s.Outlet }

func (s Sale) RecordYear() (int, bool) {
	if s.Year > 0 {
		return s.Year, true
	}

	return yearFromDate(s.Date)
}

// ParseDate converte uma data ISO (yyyy-mm-dd) em time.Time
func ParseDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(value))
}

func yearFromDate(value string) (int, bool) {
	date, err := ParseDate(value)
	if err != nil {
		return 0, false
	}

	return date.Year(), true
}
