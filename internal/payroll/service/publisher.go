package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Snigdah/E-Banking-System/internal/payroll/repository"
)

// EventPublisher publishes payroll domain events after successful mutations.
// Satisfied by events.PayrollEventPublisher; tests substitute a recording fake.
type EventPublisher interface {
	PublishEmployeeCreated(ctx context.Context, emp *repository.Employee, accountNumber string)
	PublishEmployeeUpdated(ctx context.Context, emp *repository.Employee, fields map[string]any)
	PublishEmployeeDeleted(ctx context.Context, employeeID string)
	PublishAccountFunded(ctx context.Context, accountNumber string, amount, newBalance decimal.Decimal)
	PublishSalaryTransferred(ctx context.Context, company *repository.CompanyAccount, emp *repository.Employee, bank *repository.BankAccount, amount decimal.Decimal)
	PublishBaseSalaryChanged(ctx context.Context, amount decimal.Decimal)
}
