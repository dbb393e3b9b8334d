package financial

import (
	"agrofacil-backend/internal/auth"
	"agrofacil-backend/internal/logging"
	"agrofacil-backend/internal/report"
	"agrofacil-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/reports/financial/export
// Gera o relatório financeiro em XLSX: aba "Resumo Mensal" com os 12 baldes
// e aba "Categorias" com o quebra por categoria.
func ExportHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		txs, err := s.ListTransactions(userID)
		if err != nil {
			return mapStoreErr(err)
		}

		buckets := report.MonthlyRollup(txs)
		categories := report.CategoryBreakdown(txs)
		totals := report.ComputeTotals(txs)

		f := excelize.NewFile()
		defer f.Close()

		const monthlySheet = "Resumo Mensal"
		f.SetSheetName("Sheet1", monthlySheet)

		headers := []interface{}{"Mês", "Receitas (R$)", "Despesas (R$)", "Lucro (R$)"}
		if err := f.SetSheetRow(monthlySheet, "A1", &headers); err != nil {
			logging.LogError("financial", "export", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o relatório")
		}
		for i, b := range buckets {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			row := []interface{}{b.Month, b.Income.InexactFloat64(), b.Expense.InexactFloat64(), b.Profit.InexactFloat64()}
			if err := f.SetSheetRow(monthlySheet, cell, &row); err != nil {
				logging.LogError("financial", "export", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o relatório")
			}
		}
		totalsRow := []interface{}{"Total", totals.TotalIncome.InexactFloat64(), totals.TotalExpense.InexactFloat64(), totals.NetProfit.InexactFloat64()}
		cell, _ := excelize.CoordinatesToCellName(1, 14)
		if err := f.SetSheetRow(monthlySheet, cell, &totalsRow); err != nil {
			logging.LogError("financial", "export", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o relatório")
		}

		const categorySheet = "Categorias"
		if _, err := f.NewSheet(categorySheet); err != nil {
			logging.LogError("financial", "export", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o relatório")
		}
		catHeaders := []interface{}{"Categoria", "Receitas (R$)", "Despesas (R$)", "Total (R$)"}
		if err := f.SetSheetRow(categorySheet, "A1", &catHeaders); err != nil {
			logging.LogError("financial", "export", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o relatório")
		}
		for i, cat := range categories {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			row := []interface{}{cat.Name, cat.Income.InexactFloat64(), cat.Expense.InexactFloat64(), cat.Total.InexactFloat64()}
			if err := f.SetSheetRow(categorySheet, cell, &row); err != nil {
				logging.LogError("financial", "export", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o relatório")
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			logging.LogError("financial", "export", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o relatório")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-financeiro.xlsx"`)
		return c.Send(buf.Bytes())
	}
}
