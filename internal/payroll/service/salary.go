package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Snigdah/E-Banking-System/internal/payroll/repository"
	"github.com/Snigdah/E-Banking-System/internal/payroll/salary"
	"github.com/Snigdah/E-Banking-System/pkg/errors"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
)

// SalaryService manages the base salary schedule and salary calculation
type SalaryService struct {
	salaryRepo *repository.BaseSalaryRepository
	publisher  EventPublisher
	logger     *logger.Logger
}

// NewSalaryService creates a new salary service
func NewSalaryService(salaryRepo *repository.BaseSalaryRepository, publisher EventPublisher, log *logger.Logger) *SalaryService {
	return &SalaryService{
		salaryRepo: salaryRepo,
		publisher:  publisher,
		logger:     log,
	}
}

// SetBaseSalary creates or replaces the grade-6 base salary amount
func (s *SalaryService) SetBaseSalary(ctx context.Context, amount decimal.Decimal) (*repository.BaseSalary, error) {
	if !amount.IsPositive() {
		return nil, errors.BadRequest("base salary amount must be positive")
	}

	bs, err := s.salaryRepo.Upsert(ctx, amount)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("amount", bs.Amount.String()).
		Msg("base salary set")

	s.publisher.PublishBaseSalaryChanged(ctx, bs.Amount)

	return bs, nil
}

// GetBaseSalary returns the base salary record, or NotFound when never set
func (s *SalaryService) GetBaseSalary(ctx context.Context) (*repository.BaseSalary, error) {
	return s.salaryRepo.Get(ctx)
}

// CalculateForGrade computes the salary breakdown for a grade from the
// stored base salary.
func (s *SalaryService) CalculateForGrade(ctx context.Context, grade int) (*salary.Breakdown, error) {
	if !salary.ValidGrade(grade) {
		return nil, errors.BadRequest(fmt.Sprintf("grade must be between %d and %d", salary.MinGrade, salary.MaxGrade))
	}

	bs, err := s.salaryRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	b := salary.Compute(bs.Amount, grade)
	return &b, nil
}
