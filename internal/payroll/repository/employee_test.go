package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snigdah/E-Banking-System/internal/payroll/repository"
	"github.com/Snigdah/E-Banking-System/pkg/errors"
)

var employeeRows = []string{
	"id", "employee_id", "name", "grade", "address",
	"mobile_number", "bank_account_id", "created_at", "updated_at",
}

func TestEmployeeRepository_GetByEmployeeID(t *testing.T) {
	mock, db := newRepoDB(t)
	defer mock.Close()

	repo := repository.NewEmployeeRepository(db)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`FROM employees WHERE employee_id = $1`).
			WithArgs("0001").
			WillReturnRows(sqlmock.NewRows(employeeRows).
				AddRow(1, "0001", "John Doe", 3, "Dhaka", "01700000000", 5, now, now))

		emp, err := repo.GetByEmployeeID(context.Background(), "0001")
		require.NoError(t, err)
		assert.Equal(t, "0001", emp.EmployeeID)
		assert.Equal(t, 3, emp.Grade)
		assert.Equal(t, int64(5), emp.BankAccountID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM employees WHERE employee_id = $1`).
			WithArgs("9999").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmployeeID(context.Background(), "9999")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrNotFound))
	})

	mock.ExpectationsWereMet(t)
}

func TestEmployeeRepository_CountByGrade(t *testing.T) {
	mock, db := newRepoDB(t)
	defer mock.Close()

	repo := repository.NewEmployeeRepository(db)

	mock.ExpectQuery(`SELECT COUNT(*) FROM employees WHERE grade = $1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountByGrade(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	mock.ExpectationsWereMet(t)
}

func TestEmployeeRepository_Delete(t *testing.T) {
	mock, db := newRepoDB(t)
	defer mock.Close()

	repo := repository.NewEmployeeRepository(db)

	t.Run("deletes", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM employees WHERE employee_id = $1`).
			WithArgs("0001").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), "0001"))
	})

	t.Run("missing employee", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM employees WHERE employee_id = $1`).
			WithArgs("9999").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "9999")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrNotFound))
	})

	mock.ExpectationsWereMet(t)
}

func TestNextEmployeeID(t *testing.T) {
	tests := []struct {
		name    string
		maxID   string
		want    string
		wantErr bool
	}{
		{name: "empty table sentinel", maxID: "0000", want: "0001"},
		{name: "increments", maxID: "0004", want: "0005"},
		{name: "crosses tens", maxID: "0009", want: "0010"},
		{name: "keeps four digits", maxID: "0099", want: "0100"},
		{name: "malformed", maxID: "abcd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repository.NextEmployeeID(tt.maxID)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
