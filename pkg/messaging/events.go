package messaging

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types
const (
	// Employee events
	EventEmployeeCreated = "payroll.employee.created"
	EventEmployeeUpdated = "payroll.employee.updated"
	EventEmployeeDeleted = "payroll.employee.deleted"

	// Account events
	EventAccountFunded = "payroll.account.funded"

	// Salary events
	EventSalaryTransferred = "payroll.salary.transferred"
	EventBaseSalaryChanged = "payroll.salary.base_changed"
)

// Exchange names
const (
	ExchangePayrollEvents = "payroll.events"
)

// Event is the base event structure
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source, correlationID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            GenerateEventID(),
		Type:          eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Data:          dataBytes,
	}, nil
}

// UnmarshalData unmarshals the event data into the provided struct
func (e *Event) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// EmployeeCreatedEvent is published when an employee is created
type EmployeeCreatedEvent struct {
	EmployeeID    string `json:"employee_id"`
	Name          string `json:"name"`
	Grade         int    `json:"grade"`
	AccountNumber string `json:"account_number"`
}

// EmployeeUpdatedEvent is published when an employee is updated
type EmployeeUpdatedEvent struct {
	EmployeeID string         `json:"employee_id"`
	Fields     map[string]any `json:"fields"` // Changed fields
}

// EmployeeDeletedEvent is published when an employee is deleted
type EmployeeDeletedEvent struct {
	EmployeeID string `json:"employee_id"`
}

// AccountFundedEvent is published when funds are added to a company account
type AccountFundedEvent struct {
	AccountNumber string `json:"account_number"`
	Amount        string `json:"amount"`
	NewBalance    string `json:"new_balance"`
}

// SalaryTransferredEvent is published after a successful salary transfer
type SalaryTransferredEvent struct {
	CompanyAccountNumber  string `json:"company_account_number"`
	EmployeeID            string `json:"employee_id"`
	Amount                string `json:"amount"`
	CompanyBalance        string `json:"company_balance"`
	CompanyPaidBalance    string `json:"company_paid_balance"`
	EmployeeBankBalance   string `json:"employee_bank_balance"`
	EmployeeAccountNumber string `json:"employee_account_number"`
}

// BaseSalaryChangedEvent is published when the base salary amount is set
type BaseSalaryChangedEvent struct {
	Amount string `json:"amount"`
}

// GenerateEventID generates a unique event ID
func GenerateEventID() string {
	return fmt.Sprintf("%d-%d", time.Now().UnixNano(), time.Now().Nanosecond()%10000)
}
