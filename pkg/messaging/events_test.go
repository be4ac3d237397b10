package messaging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snigdah/E-Banking-System/pkg/messaging"
)

func TestNewEvent(t *testing.T) {
	data := messaging.SalaryTransferredEvent{
		CompanyAccountNumber:  "c0mp4ny001",
		EmployeeID:            "0001",
		Amount:                "20250",
		CompanyBalance:        "0",
		CompanyPaidBalance:    "20250",
		EmployeeBankBalance:   "20250",
		EmployeeAccountNumber: "a1b2c3d4e5",
	}

	event, err := messaging.NewEvent(messaging.EventSalaryTransferred, "payroll-service", "corr-1", data)
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, messaging.EventSalaryTransferred, event.Type)
	assert.Equal(t, "payroll-service", event.Source)
	assert.Equal(t, "corr-1", event.CorrelationID)
	assert.False(t, event.Timestamp.IsZero())

	var parsed messaging.SalaryTransferredEvent
	require.NoError(t, event.UnmarshalData(&parsed))
	assert.Equal(t, data, parsed)
}

func TestEventTypeRouting(t *testing.T) {
	// Topic routing keys follow the payroll.<entity>.<action> convention
	// expected by exchange bindings.
	for _, eventType := range []string{
		messaging.EventEmployeeCreated,
		messaging.EventEmployeeUpdated,
		messaging.EventEmployeeDeleted,
		messaging.EventAccountFunded,
		messaging.EventSalaryTransferred,
		messaging.EventBaseSalaryChanged,
	} {
		assert.Regexp(t, `^payroll\.[a-z]+\.[a-z_]+$`, eventType)
	}
}
