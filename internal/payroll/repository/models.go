package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Snigdah/E-Banking-System/pkg/errors"
)

// AccountType is the closed set of bank account types.
type AccountType string

const (
	AccountTypeSavings AccountType = "SAVINGS"
	AccountTypeCurrent AccountType = "CURRENT"
)

// ParseAccountType validates a string against the closed account type set.
// Any other value is rejected at the boundary.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToUpper(s) {
	case string(AccountTypeSavings):
		return AccountTypeSavings, nil
	case string(AccountTypeCurrent):
		return AccountTypeCurrent, nil
	default:
		return "", errors.BadRequest("invalid account type. Supported types are SAVINGS and CURRENT")
	}
}

// AccountCore holds the fields shared by bank and company accounts.
// It is embedded by value in both account variants.
type AccountCore struct {
	AccountName    string          `db:"account_name" json:"accountName"`
	AccountNumber  string          `db:"account_number" json:"accountNumber"`
	CurrentBalance decimal.Decimal `db:"current_balance" json:"currentBalance"`
	BankName       string          `db:"bank_name" json:"bankName"`
	BranchName     string          `db:"branch_name" json:"branchName"`
}

// BankAccount is an individual employee-owned account.
type BankAccount struct {
	ID int64 `db:"id" json:"-"`
	AccountCore
	AccountType AccountType `db:"account_type" json:"accountType"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

// CompanyAccount is a disbursement account. PaidBalance accumulates the
// total amount paid out through salary transfers.
type CompanyAccount struct {
	ID int64 `db:"id" json:"-"`
	AccountCore
	PaidBalance decimal.Decimal `db:"paid_balance" json:"paidBalance"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// Employee is an employee record linked to exactly one bank account.
type Employee struct {
	ID            int64     `db:"id" json:"-"`
	EmployeeID    string    `db:"employee_id" json:"employeeId"`
	Name          string    `db:"name" json:"name"`
	Grade         int       `db:"grade" json:"grade"`
	Address       string    `db:"address" json:"address"`
	MobileNumber  string    `db:"mobile_number" json:"mobileNumber"`
	BankAccountID int64     `db:"bank_account_id" json:"-"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// BaseSalary is the singleton salary schedule record. Description is fixed
// to "lowest_grade_salary"; Amount is the grade-6 basic pay.
type BaseSalary struct {
	ID          int64           `db:"id" json:"-"`
	Description string          `db:"description" json:"description"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// NewAccountNumber produces a 10-character account number from a random
// 128-bit identifier with the hyphens stripped. Collisions are statistically
// unlikely; callers verify against the store before commit and regenerate on
// conflict.
func NewAccountNumber() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:10]
}
