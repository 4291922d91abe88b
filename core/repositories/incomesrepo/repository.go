// Package incomesrepo provides access to income storage.
package incomesrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jrazmi/dashboard/core/repositories"
	"github.com/jrazmi/dashboard/core/scaffolding/fop"
	"github.com/jrazmi/dashboard/sdk/logger"
)

// Set of error values for CRUD operations on income resource
var (
	ErrNotFound = repositories.NotFound("income")
)

// Storer defines the data storage interface for Income.
type Storer interface {
	Create(ctx context.Context, input CreateIncome) (Income, error)
	Get(ctx context.Context, incomeID string) (Income, error)
	List(ctx context.Context, orderBy fop.Order) ([]Income, error)
	Update(ctx context.Context, income Income) (Income, error)
	Delete(ctx context.Context, incomeID string) error
}

// Repository provides access to income storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
	now    func() time.Time
}

// NewRepository creates a new Income repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		now:    time.Now,
	}
}

func (r *Repository) Create(ctx context.Context, input CreateIncome) (Income, error) {
	input.normalize(r.now())
	if err := input.Validate(); err != nil {
		return Income{}, err
	}

	income, err := r.storer.Create(ctx, input)
	if err != nil {
		return Income{}, fmt.Errorf("income repository create: %w", err)
	}

	r.log.InfoContext(ctx, "income created", "income_id", income.ID)
	return income, nil
}

func (r *Repository) Get(ctx context.Context, incomeID string) (Income, error) {
	income, err := r.storer.Get(ctx, incomeID)
	if err != nil {
		return Income{}, fmt.Errorf("income repository get: %w", err)
	}
	return income, nil
}

func (r *Repository) List(ctx context.Context, orderBy fop.Order) ([]Income, error) {
	incomes, err := r.storer.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("income repository list: %w", err)
	}
	return incomes, nil
}

func (r *Repository) Update(ctx context.Context, incomeID string, input UpdateIncome) (Income, error) {
	current, err := r.storer.Get(ctx, incomeID)
	if err != nil {
		return Income{}, fmt.Errorf("income repository update: %w", err)
	}

	next := input.Apply(current)
	if err := validateIncome(next); err != nil {
		return Income{}, err
	}

	income, err := r.storer.Update(ctx, next)
	if err != nil {
		return Income{}, fmt.Errorf("income repository update: %w", err)
	}
	return income, nil
}

func (r *Repository) Delete(ctx context.Context, incomeID string) error {
	if err := r.storer.Delete(ctx, incomeID); err != nil {
		return fmt.Errorf("income repository delete: %w", err)
	}
	r.log.InfoContext(ctx, "income deleted", "income_id", incomeID)
	return nil
}
