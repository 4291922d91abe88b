package expensesrepobridge

import (
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/views"
	"github.com/jrazmi/dashboard/sdk/validation"
	"github.com/shopspring/decimal"
)

// Expense is the wire form of an expense.
type Expense struct {
	ID            string  `json:"_id"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"paymentMethod"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// CategoryStat is one row of GET /expenses/stats.
type CategoryStat struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// CreateExpenseInput is the body of POST /expenses.
type CreateExpenseInput struct {
	Description   string           `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	Category      string           `json:"category"`
	Date          *string          `json:"date"`
	PaymentMethod string           `json:"paymentMethod"`
	Status        string           `json:"status"`
	Notes         string           `json:"notes"`
}

func (in CreateExpenseInput) Validate() error {
	var errs validation.Errors
	errs.Date("date", in.Date)
	return errs.Err()
}

// UpdateExpenseInput is the body of PUT /expenses/{expense_id}.
type UpdateExpenseInput struct {
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	Category      *string          `json:"category"`
	Date          *string          `json:"date"`
	PaymentMethod *string          `json:"paymentMethod"`
	Status        *string          `json:"status"`
	Notes         *string          `json:"notes"`
}

func (in UpdateExpenseInput) Validate() error {
	var errs validation.Errors
	errs.Date("date", in.Date)
	return errs.Err()
}

// ToExpense renders a stored expense.
func ToExpense(e expensesrepo.Expense) Expense {
	return Expense{
		ID:            e.ID,
		Description:   e.Description,
		Amount:        e.Amount.InexactFloat64(),
		Category:      e.Category,
		Date:          validation.FormatTimePtrToString(&e.Date),
		PaymentMethod: e.PaymentMethod,
		Status:        e.Status,
		Notes:         e.Notes,
		CreatedAt:     validation.FormatTimePtrToString(&e.CreatedAt),
		UpdatedAt:     validation.FormatTimePtrToString(&e.UpdatedAt),
	}
}

// ToExpenses renders a list of stored expenses.
func ToExpenses(expenses []expensesrepo.Expense) []Expense {
	out := make([]Expense, len(expenses))
	for i, e := range expenses {
		out[i] = ToExpense(e)
	}
	return out
}

func toStats(totals []views.CategoryTotal) []CategoryStat {
	out := make([]CategoryStat, len(totals))
	for i, t := range totals {
		out[i] = CategoryStat{Category: t.Category, Total: t.Total.InexactFloat64(), Count: t.Count}
	}
	return out
}

func (in CreateExpenseInput) toRepository() expensesrepo.CreateExpense {
	var errs validation.Errors
	return expensesrepo.CreateExpense{
		Description:   in.Description,
		Amount:        in.Amount,
		Category:      in.Category,
		Date:          errs.Date("date", in.Date),
		PaymentMethod: in.PaymentMethod,
		Status:        in.Status,
		Notes:         in.Notes,
	}
}

func (in UpdateExpenseInput) toRepository() expensesrepo.UpdateExpense {
	var errs validation.Errors
	return expensesrepo.UpdateExpense{
		Description:   in.Description,
		Amount:        in.Amount,
		Category:      in.Category,
		Date:          errs.Date("date", in.Date),
		PaymentMethod: in.PaymentMethod,
		Status:        in.Status,
		Notes:         in.Notes,
	}
}
