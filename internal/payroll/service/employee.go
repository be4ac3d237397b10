package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/Snigdah/E-Banking-System/internal/payroll/repository"
	"github.com/Snigdah/E-Banking-System/internal/payroll/salary"
	"github.com/Snigdah/E-Banking-System/pkg/database"
	"github.com/Snigdah/E-Banking-System/pkg/errors"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
)

// maxIDAllocationAttempts bounds retries when two concurrent creations race
// for the same next employee ID. The unique constraint on employee_id keeps
// the losing insert from committing; the loser reallocates and tries again.
const maxIDAllocationAttempts = 3

// EmployeeService handles employee business logic
type EmployeeService struct {
	db           *database.DB
	employeeRepo *repository.EmployeeRepository
	bankRepo     *repository.BankAccountRepository
	salaryRepo   *repository.BaseSalaryRepository
	publisher    EventPublisher
	logger       *logger.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	db *database.DB,
	employeeRepo *repository.EmployeeRepository,
	bankRepo *repository.BankAccountRepository,
	salaryRepo *repository.BaseSalaryRepository,
	publisher EventPublisher,
	log *logger.Logger,
) *EmployeeService {
	return &EmployeeService{
		db:           db,
		employeeRepo: employeeRepo,
		bankRepo:     bankRepo,
		salaryRepo:   salaryRepo,
		publisher:    publisher,
		logger:       log,
	}
}

// CreateEmployeeInput carries the fields needed to register an employee.
// The bank account is referenced by number and name and must already exist.
type CreateEmployeeInput struct {
	Name          string
	Grade         int
	Address       string
	MobileNumber  string
	AccountNumber string
	AccountName   string
}

// EmployeeDetail couples an employee with its bank account and, when the
// base salary schedule is set, the salary breakdown for its grade.
type EmployeeDetail struct {
	Employee    *repository.Employee    `json:"employee"`
	BankAccount *repository.BankAccount `json:"bankAccount"`
	Salary      *salary.Breakdown       `json:"salary,omitempty"`
}

// Create registers a new employee. Inside a single transaction it enforces
// the grade headcount cap, verifies the bank account is not already owned,
// and allocates the next 4-digit employee ID. Allocation races surface as a
// unique violation and are retried with a fresh ID.
func (s *EmployeeService) Create(ctx context.Context, input *CreateEmployeeInput) (*EmployeeDetail, error) {
	if !salary.ValidGrade(input.Grade) {
		return nil, errors.BadRequest(fmt.Sprintf("grade must be between %d and %d", salary.MinGrade, salary.MaxGrade))
	}

	acct, err := s.bankRepo.GetByNumberAndName(ctx, input.AccountNumber, input.AccountName)
	if err != nil {
		return nil, err
	}

	emp := &repository.Employee{
		Name:          input.Name,
		Grade:         input.Grade,
		Address:       input.Address,
		MobileNumber:  input.MobileNumber,
		BankAccountID: acct.ID,
	}

	var lastErr error
	for attempt := 0; attempt < maxIDAllocationAttempts; attempt++ {
		lastErr = s.db.Transaction(ctx, func(tx *sqlx.Tx) error {
			count, err := s.employeeRepo.CountByGradeTx(ctx, tx, input.Grade)
			if err != nil {
				return err
			}
			if count >= int64(salary.CapForGrade(input.Grade)) {
				return errors.CapacityExceeded(fmt.Sprintf("grade %d already has its maximum of %d employee(s)", input.Grade, salary.CapForGrade(input.Grade)))
			}

			owner, err := s.employeeRepo.GetByBankAccountIDTx(ctx, tx, acct.ID)
			if err != nil {
				return err
			}
			if owner != nil {
				return errors.Conflict("this bank account already belongs to another employee")
			}

			maxID, err := s.employeeRepo.MaxEmployeeIDTx(ctx, tx)
			if err != nil {
				return err
			}
			nextID, err := repository.NextEmployeeID(maxID)
			if err != nil {
				return err
			}

			emp.EmployeeID = nextID
			return s.employeeRepo.InsertTx(ctx, tx, emp)
		})

		if lastErr == nil {
			break
		}
		if database.IsUniqueViolation(lastErr, "employee_id") {
			continue
		}
		if appErr := database.MapPQError(lastErr); appErr != nil {
			return nil, appErr
		}
		return nil, lastErr
	}
	if lastErr != nil {
		if appErr := database.MapPQError(lastErr); appErr != nil {
			return nil, appErr
		}
		return nil, lastErr
	}

	s.logger.Info().
		Str("employee_id", emp.EmployeeID).
		Int("grade", emp.Grade).
		Str("account_number", acct.AccountNumber).
		Msg("employee created")

	s.publisher.PublishEmployeeCreated(ctx, emp, acct.AccountNumber)

	return s.detail(ctx, emp, acct)
}

// Get returns an employee with its bank account and salary breakdown
func (s *EmployeeService) Get(ctx context.Context, employeeID string) (*EmployeeDetail, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	acct, err := s.bankRepo.GetByID(ctx, emp.BankAccountID)
	if err != nil {
		return nil, err
	}

	return s.detail(ctx, emp, acct)
}

// List returns all employees with their bank accounts and salary breakdowns
func (s *EmployeeService) List(ctx context.Context) ([]*EmployeeDetail, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	base, err := s.baseSalaryAmount(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]*EmployeeDetail, 0, len(employees))
	for _, emp := range employees {
		acct, err := s.bankRepo.GetByID(ctx, emp.BankAccountID)
		if err != nil {
			return nil, err
		}

		d := &EmployeeDetail{Employee: emp, BankAccount: acct}
		if base != nil {
			b := salary.Compute(*base, emp.Grade)
			d.Salary = &b
		}
		details = append(details, d)
	}

	return details, nil
}

// UpdateEmployeeInput carries the mutable employee fields.
type UpdateEmployeeInput struct {
	Name         string
	Grade        int
	Address      string
	MobileNumber string
}

// Update updates an employee's name, grade, address and mobile number.
// A grade change re-checks the headcount cap for the target grade.
func (s *EmployeeService) Update(ctx context.Context, employeeID string, input *UpdateEmployeeInput) (*EmployeeDetail, error) {
	if !salary.ValidGrade(input.Grade) {
		return nil, errors.BadRequest(fmt.Sprintf("grade must be between %d and %d", salary.MinGrade, salary.MaxGrade))
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if input.Grade != emp.Grade {
		count, err := s.employeeRepo.CountByGrade(ctx, input.Grade)
		if err != nil {
			return nil, err
		}
		if count >= int64(salary.CapForGrade(input.Grade)) {
			return nil, errors.CapacityExceeded(fmt.Sprintf("grade %d already has its maximum of %d employee(s)", input.Grade, salary.CapForGrade(input.Grade)))
		}
	}

	fields := map[string]any{}
	if input.Name != emp.Name {
		fields["name"] = input.Name
	}
	if input.Grade != emp.Grade {
		fields["grade"] = input.Grade
	}
	if input.Address != emp.Address {
		fields["address"] = input.Address
	}
	if input.MobileNumber != emp.MobileNumber {
		fields["mobileNumber"] = input.MobileNumber
	}

	emp.Name = input.Name
	emp.Grade = input.Grade
	emp.Address = input.Address
	emp.MobileNumber = input.MobileNumber

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("employee_id", emp.EmployeeID).
		Msg("employee updated")

	if len(fields) > 0 {
		s.publisher.PublishEmployeeUpdated(ctx, emp, fields)
	}

	acct, err := s.bankRepo.GetByID(ctx, emp.BankAccountID)
	if err != nil {
		return nil, err
	}

	return s.detail(ctx, emp, acct)
}

// Delete removes an employee by employee ID
func (s *EmployeeService) Delete(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.Delete(ctx, employeeID); err != nil {
		return err
	}

	s.logger.Info().
		Str("employee_id", employeeID).
		Msg("employee deleted")

	s.publisher.PublishEmployeeDeleted(ctx, employeeID)

	return nil
}

// detail assembles the employee response, attaching the salary breakdown
// when the base salary schedule has been set.
func (s *EmployeeService) detail(ctx context.Context, emp *repository.Employee, acct *repository.BankAccount) (*EmployeeDetail, error) {
	base, err := s.baseSalaryAmount(ctx)
	if err != nil {
		return nil, err
	}

	d := &EmployeeDetail{Employee: emp, BankAccount: acct}
	if base != nil {
		b := salary.Compute(*base, emp.Grade)
		d.Salary = &b
	}

	return d, nil
}

// baseSalaryAmount loads the base salary amount, treating an unset schedule
// as absent rather than an error.
func (s *EmployeeService) baseSalaryAmount(ctx context.Context) (*decimal.Decimal, error) {
	bs, err := s.salaryRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bs.Amount, nil
}
