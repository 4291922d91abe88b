// Package expensessqlitestore implements expensesrepo.Storer over SQLite.
package expensessqlitestore

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/scaffolding/fop"
	"github.com/jrazmi/dashboard/infrastructure/postgresdb"
	"github.com/jrazmi/dashboard/infrastructure/sqlitedb"
	"github.com/jrazmi/dashboard/sdk/logger"
)

const columns = `expense_id, description, amount, category, date, payment_method,
	status, notes, created_at, updated_at`

// Store provides database access for Expense.
type Store struct {
	log *logger.Logger
	db  *sqlitedb.DB
}

// NewStore creates a new Expense store
func NewStore(log *logger.Logger, db *sqlitedb.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

func (s *Store) Create(ctx context.Context, input expensesrepo.CreateExpense) (expensesrepo.Expense, error) {
	now := sqlitedb.FormatTime(time.Now())
	id := uuid.NewString()

	query := `INSERT INTO expenses (expense_id, description, amount, category, date, payment_method,
			status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		id, input.Description, input.Amount.String(), input.Category, sqlitedb.FormatTime(*input.Date),
		input.PaymentMethod, input.Status, input.Notes, now, now)
	if err != nil {
		return expensesrepo.Expense{}, sqlitedb.HandleError(err)
	}

	return s.Get(ctx, id)
}

func (s *Store) Get(ctx context.Context, expenseID string) (expensesrepo.Expense, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM expenses WHERE expense_id = ?`, expenseID)

	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return expensesrepo.Expense{}, fmt.Errorf("expense %s: %w", expenseID, expensesrepo.ErrNotFound)
		}
		return expensesrepo.Expense{}, sqlitedb.HandleError(err)
	}
	return expense, nil
}

func (s *Store) List(ctx context.Context, filter expensesrepo.QueryFilter, orderBy fop.Order) ([]expensesrepo.Expense, error) {
	buf := bytes.NewBufferString(`SELECT ` + columns + ` FROM expenses`)
	var args []any

	if filter.Category != nil && *filter.Category != "" {
		postgresdb.AddWhere(buf, "category = ?")
		args = append(args, *filter.Category)
	}
	if filter.SearchTerm != nil && *filter.SearchTerm != "" {
		postgresdb.AddWhere(buf, `description LIKE ? ESCAPE '\'`)
		args = append(args, postgresdb.LikePattern(*filter.SearchTerm))
	}

	if err := postgresdb.AddOrderByClause(buf, orderBy.Field, expensesrepo.OrderByPK, orderBy.Direction); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, buf.String(), args...)
	if err != nil {
		return nil, sqlitedb.HandleError(err)
	}
	defer rows.Close()

	var expenses []expensesrepo.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (s *Store) Update(ctx context.Context, expense expensesrepo.Expense) (expensesrepo.Expense, error) {
	query := `UPDATE expenses SET description = ?, amount = ?, category = ?, date = ?,
			payment_method = ?, status = ?, notes = ?, updated_at = ?
		WHERE expense_id = ?`

	result, err := s.db.ExecContext(ctx, query,
		expense.Description, expense.Amount.String(), expense.Category, sqlitedb.FormatTime(expense.Date),
		expense.PaymentMethod, expense.Status, expense.Notes, sqlitedb.FormatTime(time.Now()), expense.ID)
	if err != nil {
		return expensesrepo.Expense{}, sqlitedb.HandleError(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return expensesrepo.Expense{}, fmt.Errorf("expense %s: %w", expense.ID, expensesrepo.ErrNotFound)
	}

	return s.Get(ctx, expense.ID)
}

func (s *Store) Delete(ctx context.Context, expenseID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE expense_id = ?`, expenseID)
	if err != nil {
		return sqlitedb.HandleError(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, expensesrepo.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (expensesrepo.Expense, error) {
	var (
		e                     expensesrepo.Expense
		date, created, update string
	)

	if err := row.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &date,
		&e.PaymentMethod, &e.Status, &e.Notes, &created, &update); err != nil {
		return expensesrepo.Expense{}, err
	}

	var err error
	if e.Date, err = sqlitedb.ParseTime(date); err != nil {
		return expensesrepo.Expense{}, fmt.Errorf("parse date: %w", err)
	}
	if e.CreatedAt, err = sqlitedb.ParseTime(created); err != nil {
		return expensesrepo.Expense{}, fmt.Errorf("parse created_at: %w", err)
	}
	if e.UpdatedAt, err = sqlitedb.ParseTime(update); err != nil {
		return expensesrepo.Expense{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return e, nil
}
