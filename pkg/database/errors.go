package database

import (
	"strings"

	"github.com/lib/pq"

	"github.com/Snigdah/E-Banking-System/pkg/errors"
)

// PostgreSQL error codes relevant to the payroll schema.
const (
	CodeUniqueViolation = "23505"
	CodeCheckViolation  = "23514"
	CodeFKViolation     = "23503"
	CodeNotNull         = "23502"
)

// IsUniqueViolation reports whether err is a unique constraint violation,
// optionally restricted to a specific constraint name.
func IsUniqueViolation(err error, constraint string) bool {
	pqErr, ok := err.(*pq.Error)
	if !ok || pqErr.Code != CodeUniqueViolation {
		return false
	}
	return constraint == "" || strings.Contains(pqErr.Constraint, constraint)
}

// MapPQError converts a PostgreSQL error to an AppError with meaningful messages.
// Returns nil if the error is not a pq.Error.
func MapPQError(err error) *errors.AppError {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return nil
	}

	switch pqErr.Code {
	case CodeCheckViolation:
		return mapCheckConstraint(pqErr)

	case CodeUniqueViolation:
		return errors.Conflict(formatConstraintMessage(pqErr))

	case CodeFKViolation:
		return errors.BadRequest("referenced record does not exist")

	case CodeNotNull:
		col := pqErr.Column
		if col == "" {
			col = "required field"
		}
		return errors.Validation(map[string]string{
			col: "must not be empty",
		})

	default:
		return nil
	}
}

// mapCheckConstraint maps specific CHECK constraint names to user-friendly messages.
func mapCheckConstraint(pqErr *pq.Error) *errors.AppError {
	constraint := pqErr.Constraint

	switch {
	case strings.Contains(constraint, "balance_non_negative"):
		return errors.Validation(map[string]string{
			"currentBalance": "must be zero or positive",
		})

	case strings.Contains(constraint, "account_type_valid"):
		return errors.Validation(map[string]string{
			"accountType": "must be one of: SAVINGS, CURRENT",
		})

	case strings.Contains(constraint, "grade_range"):
		return errors.Validation(map[string]string{
			"grade": "must be between 1 and 6",
		})

	default:
		return errors.BadRequest("data validation failed: " + constraint)
	}
}

// formatConstraintMessage creates a user-friendly message for unique constraint violations.
func formatConstraintMessage(pqErr *pq.Error) string {
	constraint := pqErr.Constraint

	switch {
	case strings.Contains(constraint, "employee_id"):
		return "an employee with this employee ID already exists"
	case strings.Contains(constraint, "account_number"):
		return "an account with this account number already exists"
	case strings.Contains(constraint, "bank_account"):
		return "this bank account already belongs to another employee"
	default:
		return "a record with these values already exists"
	}
}
