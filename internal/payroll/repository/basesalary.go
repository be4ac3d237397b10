package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/Snigdah/E-Banking-System/internal/payroll/salary"
	"github.com/Snigdah/E-Banking-System/pkg/database"
	"github.com/Snigdah/E-Banking-System/pkg/errors"
)

// BaseSalaryRepository handles the singleton base salary record
type BaseSalaryRepository struct {
	db *database.DB
}

// NewBaseSalaryRepository creates a new base salary repository
func NewBaseSalaryRepository(db *database.DB) *BaseSalaryRepository {
	return &BaseSalaryRepository{db: db}
}

// Get loads the base salary record. Returns NotFound when the schedule has
// never been set.
func (r *BaseSalaryRepository) Get(ctx context.Context) (*BaseSalary, error) {
	var bs BaseSalary
	query := `SELECT id, description, amount, updated_at FROM base_salaries WHERE description = $1`

	err := r.db.GetContext(ctx, &bs, query, salary.BaseSalaryDescription)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("base salary")
	}
	if err != nil {
		return nil, err
	}

	return &bs, nil
}

// GetTx loads the base salary record inside a transaction.
func (r *BaseSalaryRepository) GetTx(ctx context.Context, tx *sqlx.Tx) (*BaseSalary, error) {
	var bs BaseSalary
	query := `SELECT id, description, amount, updated_at FROM base_salaries WHERE description = $1`

	err := sqlx.GetContext(ctx, tx, &bs, query, salary.BaseSalaryDescription)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("base salary")
	}
	if err != nil {
		return nil, err
	}

	return &bs, nil
}

// Upsert creates or replaces the base salary amount.
func (r *BaseSalaryRepository) Upsert(ctx context.Context, amount decimal.Decimal) (*BaseSalary, error) {
	var bs BaseSalary
	query := `
		INSERT INTO base_salaries (description, amount)
		VALUES ($1, $2)
		ON CONFLICT (description)
		DO UPDATE SET amount = $2, updated_at = NOW()
		RETURNING id, description, amount, updated_at
	`

	err := r.db.GetContext(ctx, &bs, query, salary.BaseSalaryDescription, amount)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return nil, appErr
		}
		return nil, err
	}

	return &bs, nil
}
