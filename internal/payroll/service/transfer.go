package service

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/Snigdah/E-Banking-System/internal/payroll/repository"
	"github.com/Snigdah/E-Banking-System/internal/payroll/salary"
	"github.com/Snigdah/E-Banking-System/pkg/database"
	"github.com/Snigdah/E-Banking-System/pkg/errors"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
)

// TransferService moves salary payments from a company account to an
// employee's bank account.
type TransferService struct {
	db          *database.DB
	companyRepo *repository.CompanyAccountRepository
	bankRepo    *repository.BankAccountRepository
	empRepo     *repository.EmployeeRepository
	salaryRepo  *repository.BaseSalaryRepository
	publisher   EventPublisher
	logger      *logger.Logger
}

// NewTransferService creates a new transfer service
func NewTransferService(
	db *database.DB,
	companyRepo *repository.CompanyAccountRepository,
	bankRepo *repository.BankAccountRepository,
	empRepo *repository.EmployeeRepository,
	salaryRepo *repository.BaseSalaryRepository,
	publisher EventPublisher,
	log *logger.Logger,
) *TransferService {
	return &TransferService{
		db:          db,
		companyRepo: companyRepo,
		bankRepo:    bankRepo,
		empRepo:     empRepo,
		salaryRepo:  salaryRepo,
		publisher:   publisher,
		logger:      log,
	}
}

// TransferResult carries the post-transfer state of all three balances.
type TransferResult struct {
	Company     *repository.CompanyAccount `json:"companyAccount"`
	Employee    *repository.Employee       `json:"employee"`
	BankAccount *repository.BankAccount    `json:"bankAccount"`
	Amount      decimal.Decimal            `json:"amount"`
}

// TransferSalary pays one employee's total salary out of a company account.
// The whole movement runs in a single transaction: the company row is locked
// first, then the employee's bank account row, so concurrent transfers
// against the same accounts serialize instead of interleaving. Any failure
// rolls back both balances.
func (s *TransferService) TransferSalary(ctx context.Context, companyAccountNumber, employeeID string) (*TransferResult, error) {
	var result TransferResult

	err := s.db.Transaction(ctx, func(tx *sqlx.Tx) error {
		company, err := s.companyRepo.GetByNumberForUpdateTx(ctx, tx, companyAccountNumber)
		if err != nil {
			return err
		}

		emp, err := s.empRepo.GetByEmployeeIDTx(ctx, tx, employeeID)
		if err != nil {
			return err
		}

		bank, err := s.bankRepo.GetByIDForUpdateTx(ctx, tx, emp.BankAccountID)
		if err != nil {
			return err
		}

		base, err := s.salaryRepo.GetTx(ctx, tx)
		if err != nil {
			return err
		}

		amount := salary.Compute(base.Amount, emp.Grade).Total
		if company.CurrentBalance.LessThan(amount) {
			return errors.InsufficientFunds("company account balance is lower than the salary amount")
		}

		updated, err := s.companyRepo.DebitForTransferTx(ctx, tx, company.ID, amount)
		if err != nil {
			return err
		}

		newBalance, err := s.bankRepo.CreditTx(ctx, tx, bank.ID, amount)
		if err != nil {
			return err
		}
		bank.CurrentBalance = newBalance

		result = TransferResult{
			Company:     updated,
			Employee:    emp,
			BankAccount: bank,
			Amount:      amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("company_account", result.Company.AccountNumber).
		Str("employee_id", result.Employee.EmployeeID).
		Str("amount", result.Amount.String()).
		Str("company_balance", result.Company.CurrentBalance.String()).
		Msg("salary transferred")

	s.publisher.PublishSalaryTransferred(ctx, result.Company, result.Employee, result.BankAccount, result.Amount)

	return &result, nil
}
