package service_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snigdah/E-Banking-System/internal/payroll/repository"
	"github.com/Snigdah/E-Banking-System/internal/payroll/service"
	"github.com/Snigdah/E-Banking-System/pkg/errors"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
)

func TestCompanyAccountService_AddFunds(t *testing.T) {
	t.Run("adds funds and publishes", func(t *testing.T) {
		mock, db := newServiceDB(t)
		defer mock.Close()

		pub := &recordingPublisher{}
		svc := service.NewCompanyAccountService(repository.NewCompanyAccountRepository(db), pub, logger.New("test", "test"))
		amount := mustDecimal(t, "5000")

		mock.ExpectQuery(`UPDATE company_accounts`).
			WithArgs("c0mp4ny001", amount).
			WillReturnRows(sqlmock.NewRows([]string{"current_balance"}).AddRow("105000"))

		balance, err := svc.AddFunds(context.Background(), "c0mp4ny001", amount)
		require.NoError(t, err)
		assert.True(t, balance.Equal(mustDecimal(t, "105000")))
		assert.Equal(t, []string{"c0mp4ny001"}, pub.funded)

		mock.ExpectationsWereMet(t)
	})

	t.Run("rejects negative amounts without touching the store", func(t *testing.T) {
		mock, db := newServiceDB(t)
		defer mock.Close()

		pub := &recordingPublisher{}
		svc := service.NewCompanyAccountService(repository.NewCompanyAccountRepository(db), pub, logger.New("test", "test"))

		_, err := svc.AddFunds(context.Background(), "c0mp4ny001", mustDecimal(t, "-1"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrBadRequest))
		assert.Empty(t, pub.funded)

		mock.ExpectationsWereMet(t)
	})
}

func TestCompanyAccountService_Create_NegativeInitialBalance(t *testing.T) {
	mock, db := newServiceDB(t)
	defer mock.Close()

	svc := service.NewCompanyAccountService(repository.NewCompanyAccountRepository(db), &recordingPublisher{}, logger.New("test", "test"))

	acct := &repository.CompanyAccount{
		AccountCore: repository.AccountCore{
			AccountName:    "Acme Corp",
			CurrentBalance: mustDecimal(t, "-50"),
			BankName:       "AB Bank",
			BranchName:     "Gulshan",
		},
	}

	err := svc.Create(context.Background(), acct)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrBadRequest))

	mock.ExpectationsWereMet(t)
}
