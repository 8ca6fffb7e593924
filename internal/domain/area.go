package domain

import (
	"regexp"
	"strings"
)

// Area associa uma loja ao seu gerente de área
type Area struct {
	Outlet  string `json:"outlet"`
	Manager string `json:"manager"`
	Type    string `json:"type,omitempty"`
}

func (a Area) OutletName() string { return a.Outlet }

func (Area) RecordYear() (int, bool) { return 0, false }

// HasManager indica se a loja tem gerente atribuído. Nome em branco conta como sem gerente.
func (a Area) HasManager() bool {
	return strings.TrimSpace(a.Manager) != ""
}

// ManagerIndex é o join loja -> gerente construído a partir das áreas
type ManagerIndex map[string]string

// ManagerOf retorna o gerente da loja e se a loja possui área cadastrada
func (idx ManagerIndex) ManagerOf(outlet string) (string, bool) {
	manager, ok := idx[outlet]
	return manager, ok
}

var outletPrefix = regexp.MustCompile(`^\d+-`)

// DisplayName remove o prefixo numérico ("01-") usado apenas para ordenação visual
func DisplayName(outlet string) string {
	return outletPrefix.ReplaceAllString(outlet, "")
}
