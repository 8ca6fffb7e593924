// Package exporting gera planilhas XLSX a partir dos relatórios do painel
package exporting

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
	"github.com/vfg2006/outlet-analytics-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	branchesSheet = "Lojas"
	summarySheet  = "Resumo"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var branchHeader = []any{
	"Loja", "Nome", "Gerente", "Região",
	"Vendas ano anterior", "Vendas ano corrente", "Crescimento (%)",
	"Visitantes", "Notas", "Meta anual", "Atingimento (%)", "Ticket médio", "Conversão (%)",
}

// Export é um arquivo pronto para download
type Export struct {
	FileName string
	Content  []byte
}

// BranchReport gera a planilha de desempenho das lojas com uma aba de resumo
func BranchReport(report domain.BranchReport) (*Export, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", branchesSheet); err != nil {
		return nil, errors.Wrap(err, "erro ao criar aba de lojas")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar estilo do cabeçalho")
	}

	if err := f.SetSheetRow(branchesSheet, "A1", &branchHeader); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever cabeçalho")
	}
	lastCol, _ := excelize.ColumnNumberToName(len(branchHeader))
	if err := f.SetCellStyle(branchesSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, errors.Wrap(err, "erro ao aplicar estilo do cabeçalho")
	}

	for i, branch := range report.Branches {
		row := []any{
			branch.Name,
			branch.DisplayName,
			branch.Manager,
			branch.Region,
			utils.RoundWithTwoDecimalPlace(branch.PreviousYearSales),
			utils.RoundWithTwoDecimalPlace(branch.CurrentYearSales),
			utils.RoundWithTwoDecimalPlace(branch.Growth),
			branch.Visitors,
			branch.Invoices,
			utils.RoundWithTwoDecimalPlace(branch.Target),
			utils.RoundWithTwoDecimalPlace(branch.Achievement),
			utils.RoundWithTwoDecimalPlace(branch.AvgInvoiceValue),
			utils.RoundWithTwoDecimalPlace(branch.ConversionRate),
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(branchesSheet, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "erro ao escrever a loja %s", branch.Name)
		}
	}

	if err := writeSummary(f, report); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar planilha")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar nome do arquivo")
	}

	return &Export{
		FileName: fmt.Sprintf("lojas-%d-%s.xlsx", report.Years.Current, id),
		Content:  buf.Bytes(),
	}, nil
}

func writeSummary(f *excelize.File, report domain.BranchReport) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return errors.Wrap(err, "erro ao criar aba de resumo")
	}

	summary := report.Summary
	rows := [][]any{
		{"Ano corrente", report.Years.Current},
		{"Ano anterior", report.Years.Previous},
		{"Lojas", summary.TotalBranches},
		{"Vendas", utils.RoundWithTwoDecimalPlace(summary.TotalSales)},
		{"Meta", utils.RoundWithTwoDecimalPlace(summary.TotalTarget)},
		{"Atingimento (%)", utils.RoundWithTwoDecimalPlace(summary.Achievement)},
		{"Crescimento médio (%)", utils.RoundWithTwoDecimalPlace(summary.AvgGrowth)},
		{"Lojas acima da meta", summary.TopPerformers},
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return errors.Wrap(err, "erro ao escrever resumo")
		}
	}

	return nil
}
