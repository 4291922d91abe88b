package views

import (
	"slices"
	"strings"
	"time"

	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TypeExpense = "Expense"
	TypeIncome  = "Income"
)

// Transaction is an expense or an income in the merged ledger view.
// CategoryOrSource holds the expense category or the income source.
// Status and PaymentMethod are empty for incomes.
type Transaction struct {
	ID               string
	Date             time.Time
	Type             string
	CategoryOrSource string
	Description      string
	Amount           decimal.Decimal
	Status           string
	PaymentMethod    string
}

// IsExpense reports whether the transaction came from an expense.
func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// MergeTransactions tags and concatenates expenses then incomes and sorts
// the result by date, newest first. Equal dates keep their input order.
func MergeTransactions(expenses []expensesrepo.Expense, incomes []incomesrepo.Income) []Transaction {
	out := make([]Transaction, 0, len(expenses)+len(incomes))
	for _, e := range expenses {
		out = append(out, Transaction{
			ID:               e.ID,
			Date:             e.Date,
			Type:             TypeExpense,
			CategoryOrSource: e.Category,
			Description:      e.Description,
			Amount:           e.Amount,
			Status:           e.Status,
			PaymentMethod:    e.PaymentMethod,
		})
	}
	for _, i := range incomes {
		out = append(out, Transaction{
			ID:               i.ID,
			Date:             i.Date,
			Type:             TypeIncome,
			CategoryOrSource: i.Source,
			Description:      i.Source,
			Amount:           i.Amount,
		})
	}

	slices.SortStableFunc(out, func(a, b Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

// FilterTransactions applies a category filter to expenses only; incomes
// always pass it. The query matches the expense description or the income
// source, ignoring case.
func FilterTransactions(txs []Transaction, category string, query string) []Transaction {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if t.IsExpense() && category != "" && category != FilterAll && t.CategoryOrSource != category {
			continue
		}
		if q != "" {
			text := t.Description
			if !t.IsExpense() {
				text = t.CategoryOrSource
			}
			if !strings.Contains(strings.ToLower(text), q) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
