package report

import (
	"sort"

	"agrofacil-backend/internal/models"

	"github.com/shopspring/decimal"
)

var monthLabels = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// MonthBucket é um dos 12 baldes fixos de calendário (índice 0–11), somando
// transações pelo mês da data independentemente do ano.
type MonthBucket struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// CategoryTotal acumula receitas e despesas por categoria de texto livre.
// Total (receita+despesa) alimenta o gráfico de proporção.
type CategoryTotal struct {
	Name    string          `json:"name"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Total   decimal.Decimal `json:"total"`
}

type FinancialTotals struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetProfit    decimal.Decimal `json:"net_profit"` // pode ser negativo
}

// MonthlyRollup particiona as transações de forma exaustiva e disjunta nos
// 12 baldes. Invariante: a soma das receitas dos baldes é igual ao total de
// receitas do período.
func MonthlyRollup(transactions []models.Transaction) [12]MonthBucket {
	var buckets [12]MonthBucket
	for i := range buckets {
		buckets[i] = MonthBucket{
			Month:   monthLabels[i],
			Income:  decimal.Zero,
			Expense: decimal.Zero,
			Profit:  decimal.Zero,
		}
	}

	for _, tx := range transactions {
		m := int(tx.Date.Month()) - 1 // time.Month é 1-based
		switch tx.Type {
		case models.TransactionIncome:
			buckets[m].Income = buckets[m].Income.Add(tx.Amount)
		case models.TransactionExpense:
			buckets[m].Expense = buckets[m].Expense.Add(tx.Amount)
		}
	}

	for i := range buckets {
		buckets[i].Profit = buckets[i].Income.Sub(buckets[i].Expense)
	}
	return buckets
}

// CategoryBreakdown agrupa por categoria com ordem determinística
// (total decrescente, nome como desempate).
func CategoryBreakdown(transactions []models.Transaction) []CategoryTotal {
	byName := make(map[string]*CategoryTotal)
	for _, tx := range transactions {
		cat, ok := byName[tx.Category]
		if !ok {
			cat = &CategoryTotal{
				Name:    tx.Category,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			byName[tx.Category] = cat
		}
		switch tx.Type {
		case models.TransactionIncome:
			cat.Income = cat.Income.Add(tx.Amount)
		case models.TransactionExpense:
			cat.Expense = cat.Expense.Add(tx.Amount)
		}
	}

	result := make([]CategoryTotal, 0, len(byName))
	for _, cat := range byName {
		cat.Total = cat.Income.Add(cat.Expense)
		result = append(result, *cat)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].Name < result[j].Name
	})
	return result
}

func ComputeTotals(transactions []models.Transaction) FinancialTotals {
	totals := FinancialTotals{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionIncome:
			totals.TotalIncome = totals.TotalIncome.Add(tx.Amount)
		case models.TransactionExpense:
			totals.TotalExpense = totals.TotalExpense.Add(tx.Amount)
		}
	}
	totals.NetProfit = totals.TotalIncome.Sub(totals.TotalExpense)
	return totals
}
