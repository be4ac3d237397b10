package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Snigdah/E-Banking-System/pkg/database"
	"github.com/Snigdah/E-Banking-System/pkg/errors"
)

const employeeColumns = `id, employee_id, name, grade, address, mobile_number, bank_account_id, created_at, updated_at`

// EmployeeRepository handles employee persistence
type EmployeeRepository struct {
	db *database.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *database.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// GetByEmployeeID gets an employee by the 4-digit employee ID
func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	var emp Employee
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`

	err := r.db.GetContext(ctx, &emp, query, employeeID)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("employee")
	}
	if err != nil {
		return nil, err
	}

	return &emp, nil
}

// List lists all employees ordered by employee ID
func (r *EmployeeRepository) List(ctx context.Context) ([]*Employee, error) {
	var employees []*Employee
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY employee_id`

	if err := r.db.SelectContext(ctx, &employees, query); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update updates an employee's name, grade, address and mobile number
func (r *EmployeeRepository) Update(ctx context.Context, emp *Employee) error {
	query := `
		UPDATE employees SET
			name = $2, grade = $3, address = $4, mobile_number = $5,
			updated_at = NOW()
		WHERE employee_id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		emp.EmployeeID, emp.Name, emp.Grade, emp.Address, emp.MobileNumber,
	)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("employee")
	}

	return nil
}

// Delete removes an employee by employee ID
func (r *EmployeeRepository) Delete(ctx context.Context, employeeID string) error {
	query := `DELETE FROM employees WHERE employee_id = $1`

	result, err := r.db.ExecContext(ctx, query, employeeID)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("employee")
	}

	return nil
}

// CountByGrade counts employees holding the given grade
func (r *EmployeeRepository) CountByGrade(ctx context.Context, grade int) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM employees WHERE grade = $1`

	if err := r.db.GetContext(ctx, &count, query, grade); err != nil {
		return 0, err
	}

	return count, nil
}

// CountByGradeTx counts employees holding the given grade inside a transaction.
func (r *EmployeeRepository) CountByGradeTx(ctx context.Context, tx *sqlx.Tx, grade int) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM employees WHERE grade = $1`

	if err := sqlx.GetContext(ctx, tx, &count, query, grade); err != nil {
		return 0, err
	}

	return count, nil
}

// GetByBankAccountIDTx finds the employee owning a bank account, if any.
// Returns nil without error when the account is unowned.
func (r *EmployeeRepository) GetByBankAccountIDTx(ctx context.Context, tx *sqlx.Tx, bankAccountID int64) (*Employee, error) {
	var emp Employee
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE bank_account_id = $1`

	err := sqlx.GetContext(ctx, tx, &emp, query, bankAccountID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &emp, nil
}

// MaxEmployeeIDTx returns the highest allocated employee ID inside a
// transaction, or "0000" when no employees exist.
func (r *EmployeeRepository) MaxEmployeeIDTx(ctx context.Context, tx *sqlx.Tx) (string, error) {
	var maxID string
	query := `SELECT COALESCE(MAX(employee_id), '0000') FROM employees`

	if err := sqlx.GetContext(ctx, tx, &maxID, query); err != nil {
		return "", err
	}

	return maxID, nil
}

// InsertTx inserts a new employee inside a transaction. The unique
// constraint on employee_id guards ID allocation against concurrent
// creation; callers retry allocation on a unique violation.
func (r *EmployeeRepository) InsertTx(ctx context.Context, tx *sqlx.Tx, emp *Employee) error {
	query := `
		INSERT INTO employees (employee_id, name, grade, address, mobile_number, bank_account_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRowxContext(ctx, query,
		emp.EmployeeID, emp.Name, emp.Grade, emp.Address, emp.MobileNumber, emp.BankAccountID,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByEmployeeIDTx gets an employee by employee ID inside a transaction.
func (r *EmployeeRepository) GetByEmployeeIDTx(ctx context.Context, tx *sqlx.Tx, employeeID string) (*Employee, error) {
	var emp Employee
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`

	err := sqlx.GetContext(ctx, tx, &emp, query, employeeID)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("employee")
	}
	if err != nil {
		return nil, err
	}

	return &emp, nil
}

// NextEmployeeID formats max+1 as a zero-padded 4-digit ID.
func NextEmployeeID(maxID string) (string, error) {
	var n int
	if _, err := fmt.Sscanf(maxID, "%d", &n); err != nil {
		return "", fmt.Errorf("malformed employee ID %q: %w", maxID, err)
	}
	return fmt.Sprintf("%04d", n+1), nil
}
