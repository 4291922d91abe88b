package viewsbridge

import (
	"github.com/jrazmi/dashboard/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/dashboard/core/scaffolding/fop"
	"github.com/jrazmi/dashboard/core/views"
	"github.com/jrazmi/dashboard/sdk/validation"
)

// Transaction is the wire form of a ledger row.
type Transaction struct {
	ID               string  `json:"_id"`
	Date             string  `json:"date"`
	Type             string  `json:"type"`
	CategoryOrSource string  `json:"categoryOrSource"`
	Description      string  `json:"description"`
	Amount           float64 `json:"amount"`
	Status           string  `json:"status,omitempty"`
	PaymentMethod    string  `json:"paymentMethod,omitempty"`
}

// Summary is the wire form of the monthly figures.
type Summary struct {
	MonthlyIncome     float64 `json:"monthlyIncome"`
	MonthlyExpenses   float64 `json:"monthlyExpenses"`
	MonthlySavings    float64 `json:"monthlySavings"`
	BudgetUsedPercent float64 `json:"budgetUsedPercent"`
}

// Completion is the wire form of the task completion stats.
type Completion struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Active         int     `json:"active"`
	CompletionRate float64 `json:"completionRate"`
}

// TransactionsResponse is the body of GET /transactions.
type TransactionsResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Data    []Transaction `json:"data"`
	Summary Summary       `json:"summary"`
}

// Dashboard is the data of GET /dashboard.
type Dashboard struct {
	Completion Completion             `json:"completion"`
	Summary    Summary                `json:"summary"`
	Tasks      []tasksrepobridge.Task `json:"tasks"`
	Page       fop.PageInfo           `json:"page"`
	Recent     []Transaction          `json:"recentTransactions"`
}

func toTransactions(txs []views.Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	for i, t := range txs {
		out[i] = Transaction{
			ID:               t.ID,
			Date:             validation.FormatTimePtrToString(&t.Date),
			Type:             t.Type,
			CategoryOrSource: t.CategoryOrSource,
			Description:      t.Description,
			Amount:           t.Amount.InexactFloat64(),
			Status:           t.Status,
			PaymentMethod:    t.PaymentMethod,
		}
	}
	return out
}

func toSummary(s views.Summary) Summary {
	return Summary{
		MonthlyIncome:     s.MonthlyIncome.InexactFloat64(),
		MonthlyExpenses:   s.MonthlyExpenses.InexactFloat64(),
		MonthlySavings:    s.MonthlySavings.InexactFloat64(),
		BudgetUsedPercent: s.BudgetUsedPercent.InexactFloat64(),
	}
}

func toCompletion(c views.Completion) Completion {
	return Completion(c)
}
