package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Snigdah/E-Banking-System/internal/payroll/repository"
	"github.com/Snigdah/E-Banking-System/pkg/errors"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
)

// CompanyAccountService handles company account business logic
type CompanyAccountService struct {
	accountRepo *repository.CompanyAccountRepository
	publisher   EventPublisher
	logger      *logger.Logger
}

// NewCompanyAccountService creates a new company account service
func NewCompanyAccountService(accountRepo *repository.CompanyAccountRepository, publisher EventPublisher, log *logger.Logger) *CompanyAccountService {
	return &CompanyAccountService{
		accountRepo: accountRepo,
		publisher:   publisher,
		logger:      log,
	}
}

// Create creates a new company account. The account number is generated
// server-side; the paid balance starts at zero.
func (s *CompanyAccountService) Create(ctx context.Context, acct *repository.CompanyAccount) error {
	if acct.CurrentBalance.IsNegative() {
		return errors.BadRequest("initial balance must be zero or positive")
	}
	acct.PaidBalance = decimal.Zero

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
			Str("initial_balance", acct.CurrentBalance.String()).
			Msg("company account created")

		return nil
	}

	return errors.Internal("could not allocate a unique account number")
}

// Search finds a company account matching both account number and account name
func (s *CompanyAccountService) Search(ctx context.Context, accountNumber, accountName string) (*repository.CompanyAccount, error) {
	return s.accountRepo.GetByNumberAndName(ctx, accountNumber, accountName)
}

// List lists all company accounts
func (s *CompanyAccountService) List(ctx context.Context) ([]*repository.CompanyAccount, error) {
	return s.accountRepo.List(ctx)
}

// Update updates a company account's mutable fields, addressed by account
// number, and returns the updated record.
func (s *CompanyAccountService) Update(ctx context.Context, acct *repository.CompanyAccount) (*repository.CompanyAccount, error) {
	if err := s.accountRepo.Update(ctx, acct); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("account_number", acct.AccountNumber).
		Msg("company account updated")

	return s.accountRepo.GetByNumber(ctx, acct.AccountNumber)
}

// Delete removes a company account matched by account number and name
func (s *CompanyAccountService) Delete(ctx context.Context, accountNumber, accountName string) error {
	if err := s.accountRepo.Delete(ctx, accountNumber, accountName); err != nil {
		return err
	}

	s.logger.Info().
		Str("account_number", accountNumber).
		Msg("company account deleted")

	return nil
}

// AddFunds adds a non-negative amount to a company account's balance and
// returns the new balance.
func (s *CompanyAccountService) AddFunds(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Decimal{}, errors.BadRequest("amount must be zero or positive")
	}

	balance, err := s.accountRepo.AddFunds(ctx, accountNumber, amount)
	if err != nil {
		return decimal.Decimal{}, err
	}

	s.logger.Info().
		Str("account_number", accountNumber).
		Str("amount", amount.String()).
		Str("new_balance", balance.String()).
		Msg("company account funded")

	s.publisher.PublishAccountFunded(ctx, accountNumber, amount, balance)

	return balance, nil
}
