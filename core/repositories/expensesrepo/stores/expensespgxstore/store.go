// Package expensespgxstore implements expensesrepo.Storer over PostgreSQL.
package expensespgxstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/scaffolding/fop"
	"github.com/jrazmi/dashboard/infrastructure/postgresdb"
	"github.com/jrazmi/dashboard/sdk/logger"
)

const columns = `expense_id, description, amount, category, date, payment_method,
	status, notes, created_at, updated_at`

// Store provides database access for Expense.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a new Expense store
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

func (s *Store) Create(ctx context.Context, input expensesrepo.CreateExpense) (expensesrepo.Expense, error) {
	query := `INSERT INTO expenses (expense_id, description, amount, category, date, payment_method, status, notes)
		VALUES (@expense_id, @description, @amount, @category, @date, @payment_method, @status, @notes)
		RETURNING ` + columns

	args := pgx.NamedArgs{
		"expense_id":     uuid.NewString(),
		"description":    input.Description,
		"amount":         input.Amount,
		"category":       input.Category,
		"date":           input.Date,
		"payment_method": input.PaymentMethod,
		"status":         input.Status,
		"notes":          input.Notes,
	}

	return s.queryOne(ctx, query, args, "")
}

func (s *Store) Get(ctx context.Context, expenseID string) (expensesrepo.Expense, error) {
	query := `SELECT ` + columns + ` FROM expenses WHERE expense_id = @expense_id`
	return s.queryOne(ctx, query, pgx.NamedArgs{"expense_id": expenseID}, expenseID)
}

func (s *Store) List(ctx context.Context, filter expensesrepo.QueryFilter, orderBy fop.Order) ([]expensesrepo.Expense, error) {
	buf := bytes.NewBufferString(`SELECT ` + columns + ` FROM expenses`)
	args := pgx.NamedArgs{}

	applyFilter(filter, args, buf)

	if err := postgresdb.AddOrderByClause(buf, orderBy.Field, expensesrepo.OrderByPK, orderBy.Direction); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, buf.String(), args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	expenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[expensesrepo.Expense])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return expenses, nil
}

func (s *Store) Update(ctx context.Context, expense expensesrepo.Expense) (expensesrepo.Expense, error) {
	query := `UPDATE expenses SET
			description = @description,
			amount = @amount,
			category = @category,
			date = @date,
			payment_method = @payment_method,
			status = @status,
			notes = @notes,
			updated_at = NOW()
		WHERE expense_id = @expense_id
		RETURNING ` + columns

	args := pgx.NamedArgs{
		"expense_id":     expense.ID,
		"description":    expense.Description,
		"amount":         expense.Amount,
		"category":       expense.Category,
		"date":           expense.Date,
		"payment_method": expense.PaymentMethod,
		"status":         expense.Status,
		"notes":          expense.Notes,
	}

	return s.queryOne(ctx, query, args, expense.ID)
}

func (s *Store) Delete(ctx context.Context, expenseID string) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = @expense_id`, pgx.NamedArgs{"expense_id": expenseID})
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, expensesrepo.ErrNotFound)
	}
	return nil
}

func (s *Store) queryOne(ctx context.Context, query string, args pgx.NamedArgs, expenseID string) (expensesrepo.Expense, error) {
	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return expensesrepo.Expense{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	expense, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[expensesrepo.Expense])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expensesrepo.Expense{}, fmt.Errorf("expense %s: %w", expenseID, expensesrepo.ErrNotFound)
		}
		return expensesrepo.Expense{}, postgresdb.HandlePgError(err)
	}
	return expense, nil
}

func applyFilter(filter expensesrepo.QueryFilter, data pgx.NamedArgs, buf *bytes.Buffer) {
	if filter.Category != nil && *filter.Category != "" {
		postgresdb.AddWhere(buf, "category = @category")
		data["category"] = *filter.Category
	}
	if filter.SearchTerm != nil && *filter.SearchTerm != "" {
		postgresdb.AddWhere(buf, "description ILIKE @search")
		data["search"] = postgresdb.LikePattern(*filter.SearchTerm)
	}
}
