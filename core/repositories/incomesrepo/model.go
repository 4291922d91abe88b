package incomesrepo

import (
	"strings"
	"time"

	"github.com/jrazmi/dashboard/sdk/validation"
	"github.com/shopspring/decimal"
)

// MaxSourceLen bounds the source text.
const MaxSourceLen = 200

// Income is money received.
type Income struct {
	ID        string          `db:"income_id"`
	Source    string          `db:"source"`
	Amount    decimal.Decimal `db:"amount"`
	Date      time.Time       `db:"date"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// CreateIncome contains fields for creating a new income.
type CreateIncome struct {
	Source string
	Amount *decimal.Decimal
	Date   *time.Time
}

func (c *CreateIncome) normalize(now time.Time) {
	c.Source = strings.TrimSpace(c.Source)
	if c.Date == nil || c.Date.IsZero() {
		c.Date = &now
	}
}

// Validate checks the field constraints.
func (c CreateIncome) Validate() error {
	var errs validation.Errors
	errs.Required("source", c.Source, "Please add a source")
	errs.MaxLen("source", c.Source, MaxSourceLen)
	if c.Amount == nil {
		errs.Add("amount", "Please add an amount")
	} else {
		errs.NonNegative("amount", *c.Amount)
	}
	return errs.Err()
}

// UpdateIncome contains fields for updating an existing income.
type UpdateIncome struct {
	Source *string
	Amount *decimal.Decimal
	Date   *time.Time
}

// Apply merges the update onto i.
func (u UpdateIncome) Apply(i Income) Income {
	if u.Source != nil {
		i.Source = strings.TrimSpace(*u.Source)
	}
	if u.Amount != nil {
		i.Amount = *u.Amount
	}
	if u.Date != nil && !u.Date.IsZero() {
		i.Date = *u.Date
	}
	return i
}

func validateIncome(i Income) error {
	return CreateIncome{Source: i.Source, Amount: &i.Amount, Date: &i.Date}.Validate()
}
