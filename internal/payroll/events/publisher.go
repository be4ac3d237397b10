package events

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Snigdah/E-Banking-System/internal/payroll/repository"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
	"github.com/Snigdah/E-Banking-System/pkg/messaging"
)

// PayrollEventPublisher publishes payroll-related events
type PayrollEventPublisher struct {
	publisher *messaging.Publisher
	logger    *logger.Logger
}

// NewPayrollEventPublisher creates a new payroll event publisher
func NewPayrollEventPublisher(rmq *messaging.RabbitMQ, log *logger.Logger) (*PayrollEventPublisher, error) {
	publisher, err := messaging.NewPublisher(rmq, messaging.ExchangePayrollEvents, "payroll-service", log)
	if err != nil {
		return nil, err
	}

	return &PayrollEventPublisher{
		publisher: publisher,
		logger:    log,
	}, nil
}

// PublishEmployeeCreated publishes an employee created event
func (p *PayrollEventPublisher) PublishEmployeeCreated(ctx context.Context, emp *repository.Employee, accountNumber string) {
	data := messaging.EmployeeCreatedEvent{
		EmployeeID:    emp.EmployeeID,
		Name:          emp.Name,
		Grade:         emp.Grade,
		AccountNumber: accountNumber,
	}

	if err := p.publisher.Publish(ctx, messaging.EventEmployeeCreated, data); err != nil {
		p.logger.Error().Err(err).Str("employee_id", emp.EmployeeID).Msg("failed to publish employee created event")
	}
}

// PublishEmployeeUpdated publishes an employee updated event
func (p *PayrollEventPublisher) PublishEmployeeUpdated(ctx context.Context, emp *repository.Employee, fields map[string]any) {
	data := messaging.EmployeeUpdatedEvent{
		EmployeeID: emp.EmployeeID,
		Fields:     fields,
	}

	if err := p.publisher.Publish(ctx, messaging.EventEmployeeUpdated, data); err != nil {
		p.logger.Error().Err(err).Str("employee_id", emp.EmployeeID).Msg("failed to publish employee updated event")
	}
}

// PublishEmployeeDeleted publishes an employee deleted event
func (p *PayrollEventPublisher) PublishEmployeeDeleted(ctx context.Context, employeeID string) {
	data := messaging.EmployeeDeletedEvent{
		EmployeeID: employeeID,
	}

	if err := p.publisher.Publish(ctx, messaging.EventEmployeeDeleted, data); err != nil {
		p.logger.Error().Err(err).Str("employee_id", employeeID).Msg("failed to publish employee deleted event")
	}
}

// PublishAccountFunded publishes a company account funded event
func (p *PayrollEventPublisher) PublishAccountFunded(ctx context.Context, accountNumber string, amount, newBalance decimal.Decimal) {
	data := messaging.AccountFundedEvent{
		AccountNumber: accountNumber,
		Amount:        amount.String(),
		NewBalance:    newBalance.String(),
	}

	if err := p.publisher.Publish(ctx, messaging.EventAccountFunded, data); err != nil {
		p.logger.Error().Err(err).Str("account_number", accountNumber).Msg("failed to publish account funded event")
	}
}

// PublishSalaryTransferred publishes a salary transferred event
func (p *PayrollEventPublisher) PublishSalaryTransferred(ctx context.Context, company *repository.CompanyAccount, emp *repository.Employee, bank *repository.BankAccount, amount decimal.Decimal) {
	data := messaging.SalaryTransferredEvent{
		CompanyAccountNumber:  company.AccountNumber,
		EmployeeID:            emp.EmployeeID,
		Amount:                amount.String(),
		CompanyBalance:        company.CurrentBalance.String(),
		CompanyPaidBalance:    company.PaidBalance.String(),
		EmployeeBankBalance:   bank.CurrentBalance.String(),
		EmployeeAccountNumber: bank.AccountNumber,
	}

	if err := p.publisher.Publish(ctx, messaging.EventSalaryTransferred, data); err != nil {
		p.logger.Error().Err(err).
			Str("employee_id", emp.EmployeeID).
			Str("company_account", company.AccountNumber).
			Msg("failed to publish salary transferred event")
	}
}

// PublishBaseSalaryChanged publishes a base salary changed event
func (p *PayrollEventPublisher) PublishBaseSalaryChanged(ctx context.Context, amount decimal.Decimal) {
	data := messaging.BaseSalaryChangedEvent{
		Amount: amount.String(),
	}

	if err := p.publisher.Publish(ctx, messaging.EventBaseSalaryChanged, data); err != nil {
		p.logger.Error().Err(err).Msg("failed to publish base salary changed event")
	}
}
