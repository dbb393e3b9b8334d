package report

import (
	"testing"
	"time"

	"agrofacil-backend/internal/models"

	"github.com/shopspring/decimal"
)

func tx(typ models.TransactionType, category string, amount float64, month time.Month) models.Transaction {
	return models.Transaction{
		Type:     typ,
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
		Date:     time.Date(2026, month, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestMonthlyRollupScenario(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TransactionIncome, "Venda de Soja", 1000, time.March),
		tx(models.TransactionExpense, "Compra de Fertilizante", 400, time.March),
	}

	buckets := MonthlyRollup(transactions)

	march := buckets[2]
	if !march.Income.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("income(2) = %s, want 1000", march.Income)
	}
	if !march.Expense.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expense(2) = %s, want 400", march.Expense)
	}
	if !march.Profit.Equal(decimal.NewFromInt(600)) {
		t.Errorf("profit(2) = %s, want 600", march.Profit)
	}

	for i, b := range buckets {
		if i == 2 {
			continue
		}
		if !b.Income.IsZero() || !b.Expense.IsZero() || !b.Profit.IsZero() {
			t.Errorf("bucket %d (%s) deveria estar zerado, got %+v", i, b.Month, b)
		}
	}

	totals := ComputeTotals(transactions)
	if !totals.NetProfit.Equal(decimal.NewFromInt(600)) {
		t.Errorf("NetProfit = %s, want 600", totals.NetProfit)
	}
}

func TestMonthlyRollupPartitionsByCalendarMonth(t *testing.T) {
	// Anos diferentes caem no mesmo balde: só o mês do calendário importa.
	transactions := []models.Transaction{
		{Type: models.TransactionIncome, Category: "Soja", Amount: decimal.NewFromInt(100), Date: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{Type: models.TransactionIncome, Category: "Soja", Amount: decimal.NewFromInt(200), Date: time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC)},
		{Type: models.TransactionIncome, Category: "Milho", Amount: decimal.NewFromInt(50), Date: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)},
		{Type: models.TransactionExpense, Category: "Diesel", Amount: decimal.NewFromInt(30), Date: time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC)},
	}

	buckets := MonthlyRollup(transactions)

	if !buckets[6].Income.Equal(decimal.NewFromInt(300)) {
		t.Errorf("julho income = %s, want 300", buckets[6].Income)
	}
	if !buckets[0].Income.Equal(decimal.NewFromInt(50)) {
		t.Errorf("janeiro income = %s, want 50", buckets[0].Income)
	}
	if !buckets[11].Expense.Equal(decimal.NewFromInt(30)) {
		t.Errorf("dezembro expense = %s, want 30", buckets[11].Expense)
	}

	// Invariante: soma dos baldes == totais gerais (partição exaustiva e disjunta).
	totals := ComputeTotals(transactions)
	sumIncome := decimal.Zero
	sumExpense := decimal.Zero
	for _, b := range buckets {
		sumIncome = sumIncome.Add(b.Income)
		sumExpense = sumExpense.Add(b.Expense)
	}
	if !sumIncome.Equal(totals.TotalIncome) {
		t.Errorf("Σ income(m) = %s, want %s", sumIncome, totals.TotalIncome)
	}
	if !sumExpense.Equal(totals.TotalExpense) {
		t.Errorf("Σ expense(m) = %s, want %s", sumExpense, totals.TotalExpense)
	}
}

func TestMonthlyRollupEmpty(t *testing.T) {
	buckets := MonthlyRollup(nil)
	for i, b := range buckets {
		if b.Month != monthLabels[i] {
			t.Errorf("bucket %d label = %q, want %q", i, b.Month, monthLabels[i])
		}
		if !b.Income.IsZero() || !b.Expense.IsZero() || !b.Profit.IsZero() {
			t.Errorf("bucket %d não está zerado: %+v", i, b)
		}
	}
}

func TestCategoryBreakdown(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TransactionIncome, "Venda de Soja", 1000, time.March),
		tx(models.TransactionIncome, "Venda de Soja", 500, time.April),
		tx(models.TransactionExpense, "Venda de Soja", 100, time.April),
		tx(models.TransactionExpense, "Diesel", 300, time.May),
	}

	cats := CategoryBreakdown(transactions)
	if len(cats) != 2 {
		t.Fatalf("len = %d, want 2", len(cats))
	}

	soja := cats[0]
	if soja.Name != "Venda de Soja" {
		t.Fatalf("primeira categoria = %q, want maior total primeiro", soja.Name)
	}
	if !soja.Income.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("Income = %s, want 1500", soja.Income)
	}
	if !soja.Expense.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expense = %s, want 100", soja.Expense)
	}
	// Total = receita + despesa alimenta o gráfico de proporção.
	if !soja.Total.Equal(decimal.NewFromInt(1600)) {
		t.Errorf("Total = %s, want 1600", soja.Total)
	}

	diesel := cats[1]
	if diesel.Name != "Diesel" || !diesel.Total.Equal(decimal.NewFromInt(300)) {
		t.Errorf("segunda categoria = %+v", diesel)
	}
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	if cats := CategoryBreakdown(nil); len(cats) != 0 {
		t.Errorf("len = %d, want 0", len(cats))
	}
}

func TestComputeTotalsNegativeProfit(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TransactionIncome, "Venda de Milho", 200, time.June),
		tx(models.TransactionExpense, "Maquinário", 900, time.June),
	}
	totals := ComputeTotals(transactions)
	if !totals.NetProfit.Equal(decimal.NewFromInt(-700)) {
		t.Errorf("NetProfit = %s, want -700", totals.NetProfit)
	}
}
