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

var companyAccountRows = []string{
	"id", "account_name", "account_number", "current_balance",
	"bank_name", "branch_name", "paid_balance", "created_at", "updated_at",
}

func TestCompanyAccountRepository_GetByNumberAndName(t *testing.T) {
	mock, db := newRepoDB(t)
	defer mock.Close()

	repo := repository.NewCompanyAccountRepository(db)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`FROM company_accounts WHERE account_number = $1 AND account_name = $2`).
			WithArgs("c0mp4ny001", "Acme Corp").
			WillReturnRows(sqlmock.NewRows(companyAccountRows).
				AddRow(1, "Acme Corp", "c0mp4ny001", "100000.00", "AB Bank", "Gulshan", "25000.00", now, now))

		acct, err := repo.GetByNumberAndName(context.Background(), "c0mp4ny001", "Acme Corp")
		require.NoError(t, err)
		assert.True(t, acct.CurrentBalance.Equal(decimalFromString(t, "100000.00")))
		assert.True(t, acct.PaidBalance.Equal(decimalFromString(t, "25000.00")))
	})

	t.Run("name mismatch", func(t *testing.T) {
		mock.ExpectQuery(`FROM company_accounts WHERE account_number = $1 AND account_name = $2`).
			WithArgs("c0mp4ny001", "Wrong Name").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByNumberAndName(context.Background(), "c0mp4ny001", "Wrong Name")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrNotFound))
	})

	mock.ExpectationsWereMet(t)
}

func TestCompanyAccountRepository_AddFunds(t *testing.T) {
	mock, db := newRepoDB(t)
	defer mock.Close()

	repo := repository.NewCompanyAccountRepository(db)

	t.Run("adds to balance", func(t *testing.T) {
		amount := decimalFromString(t, "5000")

		mock.ExpectQuery(`UPDATE company_accounts`).
			WithArgs("c0mp4ny001", amount).
			WillReturnRows(sqlmock.NewRows([]string{"current_balance"}).AddRow("105000.00"))

		balance, err := repo.AddFunds(context.Background(), "c0mp4ny001", amount)
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimalFromString(t, "105000.00")))
	})

	t.Run("account missing", func(t *testing.T) {
		amount := decimalFromString(t, "5000")

		mock.ExpectQuery(`UPDATE company_accounts`).
			WithArgs("missing123", amount).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.AddFunds(context.Background(), "missing123", amount)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrNotFound))
	})

	mock.ExpectationsWereMet(t)
}

func TestCompanyAccountRepository_Delete(t *testing.T) {
	mock, db := newRepoDB(t)
	defer mock.Close()

	repo := repository.NewCompanyAccountRepository(db)

	t.Run("deletes matching account", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM company_accounts WHERE account_number = $1 AND account_name = $2`).
			WithArgs("c0mp4ny001", "Acme Corp").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), "c0mp4ny001", "Acme Corp")
		require.NoError(t, err)
	})

	t.Run("no match", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM company_accounts WHERE account_number = $1 AND account_name = $2`).
			WithArgs("c0mp4ny001", "Wrong Name").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "c0mp4ny001", "Wrong Name")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrNotFound))
	})

	mock.ExpectationsWereMet(t)
}
