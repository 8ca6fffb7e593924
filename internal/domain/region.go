package domain

import "strings"

// DefaultRegion agrupa as lojas que não casam com nenhuma palavra-chave
const DefaultRegion = "Other Regions"

type regionRule struct {
	region   string
	keywords []string
}

// regionTable é a única fonte da regra loja -> região. A primeira regra que
// casar vence, por isso a ordem importa.
var regionTable = []regionRule{
	{region: "Riyadh", keywords: []string{"Riyadh"}},
	{region: "Jeddah", keywords: []string{"Jeddah"}},
	{region: "Eastern Province", keywords: []string{"Dammam", "Khobar", "Dhahran"}},
	{region: "Mecca", keywords: []string{"Mecca"}},
	{region: "Medina", keywords: []string{"Medina"}},
}

// RegionOf deriva a região a partir do nome da loja
func RegionOf(outlet string) string {
	for _, rule := range regionTable {
		for _, keyword := range rule.keywords {
			if strings.Contains(outlet, keyword) {
				return rule.region
			}
		}
	}

	return DefaultRegion
}

// Regions lista todas as regiões conhecidas na ordem da tabela, terminando pela região padrão
func Regions() []string {
	regions := make([]string, 0, len(regionTable)+1)
	for _, rule := range regionTable {
		regions = append(regions, rule.region)
	}

	return append(regions, DefaultRegion)
}
