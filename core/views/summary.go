package views

import (
	"cmp"
	"slices"
	"time"

	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/shopspring/decimal"
)

// DefaultMonthlyBudget is the reference amount for budget utilisation.
var DefaultMonthlyBudget = decimal.NewFromInt(5000)

var hundred = decimal.NewFromInt(100)

// Summary holds the figures for one calendar month.
type Summary struct {
	MonthlyIncome     decimal.Decimal
	MonthlyExpenses   decimal.Decimal
	MonthlySavings    decimal.Decimal
	BudgetUsedPercent decimal.Decimal
}

// MonthlySummary sums the expenses and incomes dated in the same calendar
// month and year as now, evaluated in now's location. Records with a zero
// date are skipped. BudgetUsedPercent measures the total of all expenses,
// regardless of date, against budget. It is rounded to one decimal place and
// is zero when budget is not positive.
func MonthlySummary(expenses []expensesrepo.Expense, incomes []incomesrepo.Income, now time.Time, budget decimal.Decimal) Summary {
	s := Summary{
		MonthlyIncome:     decimal.Zero,
		MonthlyExpenses:   decimal.Zero,
		BudgetUsedPercent: decimal.Zero,
	}

	for _, e := range expenses {
		if sameMonth(e.Date, now) {
			s.MonthlyExpenses = s.MonthlyExpenses.Add(e.Amount)
		}
	}
	for _, i := range incomes {
		if sameMonth(i.Date, now) {
			s.MonthlyIncome = s.MonthlyIncome.Add(i.Amount)
		}
	}

	s.MonthlySavings = s.MonthlyIncome.Sub(s.MonthlyExpenses)
	if budget.IsPositive() {
		s.BudgetUsedPercent = TotalExpenses(expenses).Div(budget).Mul(hundred).Round(1)
	}
	return s
}

func sameMonth(t time.Time, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	t = t.In(now.Location())
	return t.Year() == now.Year() && t.Month() == now.Month()
}

// TotalExpenses sums every expense amount.
func TotalExpenses(expenses []expensesrepo.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// CategoryTotal is the spend in one expense category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// CategoryTotals groups expenses by category, largest total first. Ties
// are ordered by category name.
func CategoryTotals(expenses []expensesrepo.Expense) []CategoryTotal {
	idx := make(map[string]int)
	var out []CategoryTotal
	for _, e := range expenses {
		i, ok := idx[e.Category]
		if !ok {
			i = len(out)
			idx[e.Category] = i
			out = append(out, CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(e.Amount)
		out[i].Count++
	}

	slices.SortFunc(out, func(a, b CategoryTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}
