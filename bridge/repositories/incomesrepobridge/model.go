package incomesrepobridge

import (
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/jrazmi/dashboard/sdk/validation"
	"github.com/shopspring/decimal"
)

// Income is the wire form of an income.
type Income struct {
	ID        string  `json:"_id"`
	Source    string  `json:"source"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// CreateIncomeInput is the body of POST /income.
type CreateIncomeInput struct {
	Source string           `json:"source"`
	Amount *decimal.Decimal `json:"amount"`
	Date   *string          `json:"date"`
}

func (in CreateIncomeInput) Validate() error {
	var errs validation.Errors
	errs.Date("date", in.Date)
	return errs.Err()
}

// UpdateIncomeInput is the body of PUT /income/{income_id}.
type UpdateIncomeInput struct {
	Source *string          `json:"source"`
	Amount *decimal.Decimal `json:"amount"`
	Date   *string          `json:"date"`
}

func (in UpdateIncomeInput) Validate() error {
	var errs validation.Errors
	errs.Date("date", in.Date)
	return errs.Err()
}

func toIncome(i incomesrepo.Income) Income {
	return Income{
		ID:        i.ID,
		Source:    i.Source,
		Amount:    i.Amount.InexactFloat64(),
		Date:      validation.FormatTimePtrToString(&i.Date),
		CreatedAt: validation.FormatTimePtrToString(&i.CreatedAt),
		UpdatedAt: validation.FormatTimePtrToString(&i.UpdatedAt),
	}
}

func toIncomes(incomes []incomesrepo.Income) []Income {
	out := make([]Income, len(incomes))
	for i, in := range incomes {
		out[i] = toIncome(in)
	}
	return out
}

func (in CreateIncomeInput) toRepository() incomesrepo.CreateIncome {
	var errs validation.Errors
	return incomesrepo.CreateIncome{
		Source: in.Source,
		Amount: in.Amount,
		Date:   errs.Date("date", in.Date),
	}
}

func (in UpdateIncomeInput) toRepository() incomesrepo.UpdateIncome {
	var errs validation.Errors
	return incomesrepo.UpdateIncome{
		Source: in.Source,
		Amount: in.Amount,
		Date:   errs.Date("date", in.Date),
	}
}
