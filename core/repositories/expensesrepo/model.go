package expensesrepo

import (
	"strings"
	"time"

	"github.com/jrazmi/dashboard/sdk/validation"
	"github.com/shopspring/decimal"
)

// Field limits.
const (
	MaxDescriptionLen = 200
	MaxNotesLen       = 500
)

// Defaults applied on create.
const (
	DefaultCategory      = "Other"
	DefaultPaymentMethod = "Cash"
	DefaultStatus        = "Paid"
)

var (
	Categories = []string{
		"Food", "Transport", "Entertainment", "Utilities", "Healthcare", "Shopping",
		"Education", "Software", "Office", "Marketing", "Operations", "Other",
	}
	PaymentMethods = []string{"Cash", "Credit Card", "Debit Card", "Bank Transfer", "Other"}
	Statuses       = []string{"Paid", "Pending", "Cancelled"}
)

// Expense is money spent.
type Expense struct {
	ID            string          `db:"expense_id"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	Category      string          `db:"category"`
	Date          time.Time       `db:"date"`
	PaymentMethod string          `db:"payment_method"`
	Status        string          `db:"status"`
	Notes         string          `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// CreateExpense contains fields for creating a new expense.
type CreateExpense struct {
	Description   string
	Amount        *decimal.Decimal
	Category      string
	Date          *time.Time
	PaymentMethod string
	Status        string
	Notes         string
}

func (c *CreateExpense) normalize(now time.Time) {
	c.Description = strings.TrimSpace(c.Description)
	c.Notes = strings.TrimSpace(c.Notes)
	if c.Category == "" {
		c.Category = DefaultCategory
	}
	if c.PaymentMethod == "" {
		c.PaymentMethod = DefaultPaymentMethod
	}
	if c.Status == "" {
		c.Status = DefaultStatus
	}
	if c.Date == nil || c.Date.IsZero() {
		c.Date = &now
	}
}

// Validate checks the field constraints.
func (c CreateExpense) Validate() error {
	var errs validation.Errors
	errs.Required("description", c.Description, "Please add a description")
	errs.MaxLen("description", c.Description, MaxDescriptionLen)
	if c.Amount == nil {
		errs.Add("amount", "Please add an amount")
	} else {
		errs.NonNegative("amount", *c.Amount)
	}
	errs.OneOf("category", c.Category, Categories)
	errs.OneOf("paymentMethod", c.PaymentMethod, PaymentMethods)
	errs.OneOf("status", c.Status, Statuses)
	errs.MaxLen("notes", c.Notes, MaxNotesLen)
	return errs.Err()
}

// UpdateExpense contains fields for updating an existing expense.
type UpdateExpense struct {
	Description   *string
	Amount        *decimal.Decimal
	Category      *string
	Date          *time.Time
	PaymentMethod *string
	Status        *string
	Notes         *string
}

// Apply merges the update onto e.
func (u UpdateExpense) Apply(e Expense) Expense {
	if u.Description != nil {
		e.Description = strings.TrimSpace(*u.Description)
	}
	if u.Amount != nil {
		e.Amount = *u.Amount
	}
	if u.Category != nil {
		e.Category = *u.Category
	}
	if u.Date != nil && !u.Date.IsZero() {
		e.Date = *u.Date
	}
	if u.PaymentMethod != nil {
		e.PaymentMethod = *u.PaymentMethod
	}
	if u.Status != nil {
		e.Status = *u.Status
	}
	if u.Notes != nil {
		e.Notes = strings.TrimSpace(*u.Notes)
	}
	return e
}

func validateExpense(e Expense) error {
	return CreateExpense{
		Description:   e.Description,
		Amount:        &e.Amount,
		Category:      e.Category,
		Date:          &e.Date,
		PaymentMethod: e.PaymentMethod,
		Status:        e.Status,
		Notes:         e.Notes,
	}.Validate()
}
