package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Snigdah/E-Banking-System/internal/payroll/repository"
	"github.com/Snigdah/E-Banking-System/pkg/errors"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
)

// maxAccountNumberAttempts bounds account number regeneration when a
// freshly generated number collides with an existing account.
const maxAccountNumberAttempts = 5

// BankAccountService handles bank account business logic
type BankAccountService struct {
	accountRepo *repository.BankAccountRepository
	logger      *logger.Logger
}

// NewBankAccountService creates a new bank account service
func NewBankAccountService(accountRepo *repository.BankAccountRepository, log *logger.Logger) *BankAccountService {
	return &BankAccountService{
		accountRepo: accountRepo,
		logger:      log,
	}
}

// Create creates a new bank account. The account number is generated
// server-side and the initial balance is always zero.
func (s *BankAccountService) Create(ctx context.Context, acct *repository.BankAccount) error {
	acct.CurrentBalance = decimal.Zero

	for attempt := 0; attempt < maxAccountNumberAttempts; attempt++ {
		number := repository.NewAccountNumber()

		exists, err := s.accountRepo.ExistsByNumber(ctx, number)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		acct.AccountNumber = number
		if err := s.accountRepo.Create(ctx, acct); err != nil {
			return err
		}

		s.logger.Info().
			Str("account_number", acct.AccountNumber).
			Str("account_type", string(acct.AccountType)).
			Msg("bank account created")

		return nil
	}

	return errors.Internal("could not allocate a unique account number")
}

// Search finds a bank account matching both account number and account name
func (s *BankAccountService) Search(ctx context.Context, accountNumber, accountName string) (*repository.BankAccount, error) {
	return s.accountRepo.GetByNumberAndName(ctx, accountNumber, accountName)
}

// List lists all bank accounts
func (s *BankAccountService) List(ctx context.Context) ([]*repository.BankAccount, error) {
	return s.accountRepo.List(ctx)
}

// Update updates a bank account's mutable fields, addressed by account number,
// and returns the updated record.
func (s *BankAccountService) Update(ctx context.Context, acct *repository.BankAccount) (*repository.BankAccount, error) {
	if err := s.accountRepo.Update(ctx, acct); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("account_number", acct.AccountNumber).
		Msg("bank account updated")

	return s.accountRepo.GetByNumber(ctx, acct.AccountNumber)
}
