package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Snigdah/E-Banking-System/internal/payroll/repository"
	"github.com/Snigdah/E-Banking-System/pkg/database"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
	"github.com/Snigdah/E-Banking-System/pkg/testutil"
)

// recordingPublisher captures published events instead of touching RabbitMQ.
type recordingPublisher struct {
	created     []string
	updated     []string
	deleted     []string
	funded      []string
	transferred []string
	baseChanged int
}

func (p *recordingPublisher) PublishEmployeeCreated(_ context.Context, emp *repository.Employee, _ string) {
	p.created = append(p.created, emp.EmployeeID)
}

func (p *recordingPublisher) PublishEmployeeUpdated(_ context.Context, emp *repository.Employee, _ map[string]any) {
	p.updated = append(p.updated, emp.EmployeeID)
}

func (p *recordingPublisher) PublishEmployeeDeleted(_ context.Context, employeeID string) {
	p.deleted = append(p.deleted, employeeID)
}

func (p *recordingPublisher) PublishAccountFunded(_ context.Context, accountNumber string, _, _ decimal.Decimal) {
	p.funded = append(p.funded, accountNumber)
}

func (p *recordingPublisher) PublishSalaryTransferred(_ context.Context, _ *repository.CompanyAccount, emp *repository.Employee, _ *repository.BankAccount, _ decimal.Decimal) {
	p.transferred = append(p.transferred, emp.EmployeeID)
}

func (p *recordingPublisher) PublishBaseSalaryChanged(_ context.Context, _ decimal.Decimal) {
	p.baseChanged++
}

func newServiceDB(t *testing.T) (*testutil.MockDB, *database.DB) {
	mock := testutil.NewMockDB(t)
	db := database.NewWithDB(mock.DB, logger.New("test", "test"))
	return mock, db
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
