// Package expensesrepo provides access to expense storage.
package expensesrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jrazmi/dashboard/core/repositories"
	"github.com/jrazmi/dashboard/core/scaffolding/fop"
	"github.com/jrazmi/dashboard/sdk/logger"
)

// Set of error values for CRUD operations on expense resource
var (
	ErrNotFound = repositories.NotFound("expense")
)

// Storer defines the data storage interface for Expense.
type Storer interface {
	Create(ctx context.Context, input CreateExpense) (Expense, error)
	Get(ctx context.Context, expenseID string) (Expense, error)
	List(ctx context.Context, filter QueryFilter, orderBy fop.Order) ([]Expense, error)
	Update(ctx context.Context, expense Expense) (Expense, error)
	Delete(ctx context.Context, expenseID string) error
}

// Repository provides access to expense storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
	now    func() time.Time
}

// NewRepository creates a new Expense repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		now:    time.Now,
	}
}

// Create validates input and stores a new expense. A missing date
// defaults to now.
func (r *Repository) Create(ctx context.Context, input CreateExpense) (Expense, error) {
	input.normalize(r.now())
	if err := input.Validate(); err != nil {
		return Expense{}, err
	}

	expense, err := r.storer.Create(ctx, input)
	if err != nil {
		return Expense{}, fmt.Errorf("expense repository create: %w", err)
	}

	r.log.InfoContext(ctx, "expense created", "expense_id", expense.ID)
	return expense, nil
}

func (r *Repository) Get(ctx context.Context, expenseID string) (Expense, error) {
	expense, err := r.storer.Get(ctx, expenseID)
	if err != nil {
		return Expense{}, fmt.Errorf("expense repository get: %w", err)
	}
	return expense, nil
}

func (r *Repository) List(ctx context.Context, filter QueryFilter, orderBy fop.Order) ([]Expense, error) {
	expenses, err := r.storer.List(ctx, filter, orderBy)
	if err != nil {
		return nil, fmt.Errorf("expense repository list: %w", err)
	}
	return expenses, nil
}

// Update applies a partial update. Validation runs on the merged record.
func (r *Repository) Update(ctx context.Context, expenseID string, input UpdateExpense) (Expense, error) {
	current, err := r.storer.Get(ctx, expenseID)
	if err != nil {
		return Expense{}, fmt.Errorf("expense repository update: %w", err)
	}

	next := input.Apply(current)
	if err := validateExpense(next); err != nil {
		return Expense{}, err
	}

	expense, err := r.storer.Update(ctx, next)
	if err != nil {
		return Expense{}, fmt.Errorf("expense repository update: %w", err)
	}
	return expense, nil
}

func (r *Repository) Delete(ctx context.Context, expenseID string) error {
	if err := r.storer.Delete(ctx, expenseID); err != nil {
		return fmt.Errorf("expense repository delete: %w", err)
	}
	r.log.InfoContext(ctx, "expense deleted", "expense_id", expenseID)
	return nil
}
