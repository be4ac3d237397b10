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
	"github.com/Snigdah/E-Banking-System/pkg/database"
	"github.com/Snigdah/E-Banking-System/pkg/errors"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
	"github.com/Snigdah/E-Banking-System/pkg/testutil"
)

var bankAccountRows = []string{
	"id", "account_name", "account_number", "current_balance",
	"bank_name", "branch_name", "account_type", "created_at", "updated_at",
}

func newRepoDB(t *testing.T) (*testutil.MockDB, *database.DB) {
	mock := testutil.NewMockDB(t)
	db := database.NewWithDB(mock.DB, logger.New("test", "test"))
	return mock, db
}

func TestBankAccountRepository_GetByNumber(t *testing.T) {
	mock, db := newRepoDB(t)
	defer mock.Close()

	repo := repository.NewBankAccountRepository(db)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`FROM bank_accounts WHERE account_number = $1`).
			WithArgs("a1b2c3d4e5").
			WillReturnRows(sqlmock.NewRows(bankAccountRows).
				AddRow(1, "John Doe", "a1b2c3d4e5", "500.00", "AB Bank", "Mohakhali", "SAVINGS", now, now))

		acct, err := repo.GetByNumber(context.Background(), "a1b2c3d4e5")
		require.NoError(t, err)
		assert.Equal(t, "John Doe", acct.AccountName)
		assert.Equal(t, repository.AccountTypeSavings, acct.AccountType)
		assert.True(t, acct.CurrentBalance.Equal(decimalFromString(t, "500.00")))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM bank_accounts WHERE account_number = $1`).
			WithArgs("missing123").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByNumber(context.Background(), "missing123")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrNotFound))
	})

	mock.ExpectationsWereMet(t)
}

func TestBankAccountRepository_Create(t *testing.T) {
	mock, db := newRepoDB(t)
	defer mock.Close()

	repo := repository.NewBankAccountRepository(db)
	now := time.Now()

	acct := &repository.BankAccount{
		AccountCore: repository.AccountCore{
			AccountName: "John Doe",
			AccountNumber: "a1b2c3d4e5",
			BankName:    "AB Bank",
			BranchName:  "Mohakhali",
		},
		AccountType: repository.AccountTypeCurrent,
	}

	mock.ExpectQuery(`INSERT INTO bank_accounts`).
		WithArgs("John Doe", "a1b2c3d4e5", acct.CurrentBalance, "AB Bank", "Mohakhali", repository.AccountTypeCurrent).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(7, now, now))

	err := repo.Create(context.Background(), acct)
	require.NoError(t, err)
	assert.Equal(t, int64(7), acct.ID)

	mock.ExpectationsWereMet(t)
}

func TestBankAccountRepository_Update_NotFound(t *testing.T) {
	mock, db := newRepoDB(t)
	defer mock.Close()

	repo := repository.NewBankAccountRepository(db)

	mock.ExpectExec(`UPDATE bank_accounts SET`).
		WithArgs("missing123", "John Doe", "AB Bank", "Mohakhali", repository.AccountTypeSavings).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &repository.BankAccount{
		AccountCore: repository.AccountCore{
			AccountName:   "John Doe",
			AccountNumber: "missing123",
			BankName:      "AB Bank",
			BranchName:    "Mohakhali",
		},
		AccountType: repository.AccountTypeSavings,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	mock.ExpectationsWereMet(t)
}

func TestBankAccountRepository_ExistsByNumber(t *testing.T) {
	mock, db := newRepoDB(t)
	defer mock.Close()

	repo := repository.NewBankAccountRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("a1b2c3d4e5").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByNumber(context.Background(), "a1b2c3d4e5")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectationsWereMet(t)
}
