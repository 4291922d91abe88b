// Package incomessqlitestore implements incomesrepo.Storer over SQLite.
package incomessqlitestore

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/jrazmi/dashboard/core/scaffolding/fop"
	"github.com/jrazmi/dashboard/infrastructure/postgresdb"
	"github.com/jrazmi/dashboard/infrastructure/sqlitedb"
	"github.com/jrazmi/dashboard/sdk/logger"
)

const columns = `income_id, source, amount, date, created_at, updated_at`

// Store provides database access for Income.
type Store struct {
	log *logger.Logger
	db  *sqlitedb.DB
}

// NewStore creates a new Income store
func NewStore(log *logger.Logger, db *sqlitedb.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

func (s *Store) Create(ctx context.Context, input incomesrepo.CreateIncome) (incomesrepo.Income, error) {
	now := sqlitedb.FormatTime(time.Now())
	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO incomes (income_id, source, amount, date, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, input.Source, input.Amount.String(), sqlitedb.FormatTime(*input.Date), now, now)
	if err != nil {
		return incomesrepo.Income{}, sqlitedb.HandleError(err)
	}

	return s.Get(ctx, id)
}

func (s *Store) Get(ctx context.Context, incomeID string) (incomesrepo.Income, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM incomes WHERE income_id = ?`, incomeID)

	income, err := scanIncome(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return incomesrepo.Income{}, fmt.Errorf("income %s: %w", incomeID, incomesrepo.ErrNotFound)
		}
		return incomesrepo.Income{}, sqlitedb.HandleError(err)
	}
	return income, nil
}

func (s *Store) List(ctx context.Context, orderBy fop.Order) ([]incomesrepo.Income, error) {
	buf := bytes.NewBufferString(`SELECT ` + columns + ` FROM incomes`)

	if err := postgresdb.AddOrderByClause(buf, orderBy.Field, incomesrepo.OrderByPK, orderBy.Direction); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, buf.String())
	if err != nil {
		return nil, sqlitedb.HandleError(err)
	}
	defer rows.Close()

	var incomes []incomesrepo.Income
	for rows.Next() {
		income, err := scanIncome(rows)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}
	return incomes, rows.Err()
}

func (s *Store) Update(ctx context.Context, income incomesrepo.Income) (incomesrepo.Income, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE incomes SET source = ?, amount = ?, date = ?, updated_at = ? WHERE income_id = ?`,
		income.Source, income.Amount.String(), sqlitedb.FormatTime(income.Date), sqlitedb.FormatTime(time.Now()), income.ID)
	if err != nil {
		return incomesrepo.Income{}, sqlitedb.HandleError(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return incomesrepo.Income{}, fmt.Errorf("income %s: %w", income.ID, incomesrepo.ErrNotFound)
	}

	return s.Get(ctx, income.ID)
}

func (s *Store) Delete(ctx context.Context, incomeID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM incomes WHERE income_id = ?`, incomeID)
	if err != nil {
		return sqlitedb.HandleError(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("income %s: %w", incomeID, incomesrepo.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanIncome(row scanner) (incomesrepo.Income, error) {
	var (
		i                     incomesrepo.Income
		date, created, update string
	)

	if err := row.Scan(&i.ID, &i.Source, &i.Amount, &date, &created, &update); err != nil {
		return incomesrepo.Income{}, err
	}

	var err error
	if i.Date, err = sqlitedb.ParseTime(date); err != nil {
		return incomesrepo.Income{}, fmt.Errorf("parse date: %w", err)
	}
	if i.CreatedAt, err = sqlitedb.ParseTime(created); err != nil {
		return incomesrepo.Income{}, fmt.Errorf("parse created_at: %w", err)
	}
	if i.UpdatedAt, err = sqlitedb.ParseTime(update); err != nil {
		return incomesrepo.Income{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return i, nil
}
