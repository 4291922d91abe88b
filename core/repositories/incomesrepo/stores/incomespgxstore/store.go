// Package incomespgxstore implements incomesrepo.Storer over PostgreSQL.
package incomespgxstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/jrazmi/dashboard/core/scaffolding/fop"
	"github.com/jrazmi/dashboard/infrastructure/postgresdb"
	"github.com/jrazmi/dashboard/sdk/logger"
)

const columns = `income_id, source, amount, date, created_at, updated_at`

// Store provides database access for Income.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a new Income store
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

func (s *Store) Create(ctx context.Context, input incomesrepo.CreateIncome) (incomesrepo.Income, error) {
	query := `INSERT INTO incomes (income_id, source, amount, date)
		VALUES (@income_id, @source, @amount, @date)
		RETURNING ` + columns

	args := pgx.NamedArgs{
		"income_id": uuid.NewString(),
		"source":    input.Source,
		"amount":    input.Amount,
		"date":      input.Date,
	}

	return s.queryOne(ctx, query, args, "")
}

func (s *Store) Get(ctx context.Context, incomeID string) (incomesrepo.Income, error) {
	query := `SELECT ` + columns + ` FROM incomes WHERE income_id = @income_id`
	return s.queryOne(ctx, query, pgx.NamedArgs{"income_id": incomeID}, incomeID)
}

func (s *Store) List(ctx context.Context, orderBy fop.Order) ([]incomesrepo.Income, error) {
	buf := bytes.NewBufferString(`SELECT ` + columns + ` FROM incomes`)

	if err := postgresdb.AddOrderByClause(buf, orderBy.Field, incomesrepo.OrderByPK, orderBy.Direction); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, buf.String())
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	incomes, err := pgx.CollectRows(rows, pgx.RowToStructByName[incomesrepo.Income])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return incomes, nil
}

func (s *Store) Update(ctx context.Context, income incomesrepo.Income) (incomesrepo.Income, error) {
	query := `UPDATE incomes SET
			source = @source,
			amount = @amount,
			date = @date,
			updated_at = NOW()
		WHERE income_id = @income_id
		RETURNING ` + columns

	args := pgx.NamedArgs{
		"income_id": income.ID,
		"source":    income.Source,
		"amount":    income.Amount,
		"date":      income.Date,
	}

	return s.queryOne(ctx, query, args, income.ID)
}

func (s *Store) Delete(ctx context.Context, incomeID string) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM incomes WHERE income_id = @income_id`, pgx.NamedArgs{"income_id": incomeID})
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("income %s: %w", incomeID, incomesrepo.ErrNotFound)
	}
	return nil
}

func (s *Store) queryOne(ctx context.Context, query string, args pgx.NamedArgs, incomeID string) (incomesrepo.Income, error) {
	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return incomesrepo.Income{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	income, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[incomesrepo.Income])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return incomesrepo.Income{}, fmt.Errorf("income %s: %w", incomeID, incomesrepo.ErrNotFound)
		}
		return incomesrepo.Income{}, postgresdb.HandlePgError(err)
	}
	return income, nil
}
