package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/Snigdah/E-Banking-System/pkg/database"
	"github.com/Snigdah/E-Banking-System/pkg/errors"
)

const companyAccountColumns = `id, account_name, account_number, current_balance, bank_name, branch_name, paid_balance, created_at, updated_at`

// CompanyAccountRepository handles company account persistence
type CompanyAccountRepository struct {
	db *database.DB
}

// NewCompanyAccountRepository creates a new company account repository
func NewCompanyAccountRepository(db *database.DB) *CompanyAccountRepository {
	return &CompanyAccountRepository{db: db}
}

// Create inserts a new company account
func (r *CompanyAccountRepository) Create(ctx context.Context, acct *CompanyAccount) error {
	query := `
		INSERT INTO company_accounts (account_name, account_number, current_balance, bank_name, branch_name, paid_balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		acct.AccountName, acct.AccountNumber, acct.CurrentBalance,
		acct.BankName, acct.BranchName, acct.PaidBalance,
	).Scan(&acct.ID, &acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	return nil
}

// GetByNumber gets a company account by account number
func (r *CompanyAccountRepository) GetByNumber(ctx context.Context, accountNumber string) (*CompanyAccount, error) {
	var acct CompanyAccount
	query := `SELECT ` + companyAccountColumns + ` FROM company_accounts WHERE account_number = $1`

	err := r.db.GetContext(ctx, &acct, query, accountNumber)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("company account")
	}
	if err != nil {
		return nil, err
	}

	return &acct, nil
}

// GetByNumberAndName gets a company account by account number and account name
func (r *CompanyAccountRepository) GetByNumberAndName(ctx context.Context, accountNumber, accountName string) (*CompanyAccount, error) {
	var acct CompanyAccount
	query := `SELECT ` + companyAccountColumns + ` FROM company_accounts WHERE account_number = $1 AND account_name = $2`

	err := r.db.GetContext(ctx, &acct, query, accountNumber, accountName)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("company account")
	}
	if err != nil {
		return nil, err
	}

	return &acct, nil
}

// List lists all company accounts
func (r *CompanyAccountRepository) List(ctx context.Context) ([]*CompanyAccount, error) {
	var accounts []*CompanyAccount
	query := `SELECT ` + companyAccountColumns + ` FROM company_accounts ORDER BY account_name, account_number`

	if err := r.db.SelectContext(ctx, &accounts, query); err != nil {
		return nil, err
	}

	return accounts, nil
}

// Update updates the mutable fields of a company account, addressed by account number
func (r *CompanyAccountRepository) Update(ctx context.Context, acct *CompanyAccount) error {
	query := `
		UPDATE company_accounts SET
			account_name = $2, bank_name = $3, branch_name = $4,
			updated_at = NOW()
		WHERE account_number = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		acct.AccountNumber, acct.AccountName, acct.BankName, acct.BranchName,
	)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("company account")
	}

	return nil
}

// Delete removes a company account matched by account number and name
func (r *CompanyAccountRepository) Delete(ctx context.Context, accountNumber, accountName string) error {
	query := `DELETE FROM company_accounts WHERE account_number = $1 AND account_name = $2`

	result, err := r.db.ExecContext(ctx, query, accountNumber, accountName)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("company account")
	}

	return nil
}

// AddFunds atomically adds an amount to a company account's balance and
// returns the new balance.
func (r *CompanyAccountRepository) AddFunds(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	query := `
		UPDATE company_accounts
		SET current_balance = current_balance + $2, updated_at = NOW()
		WHERE account_number = $1
		RETURNING current_balance
	`

	err := r.db.QueryRowxContext(ctx, query, accountNumber, amount).Scan(&balance)
	if err == sql.ErrNoRows {
		return decimal.Decimal{}, errors.NotFound("company account")
	}
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return decimal.Decimal{}, appErr
		}
		return decimal.Decimal{}, err
	}

	return balance, nil
}

// ExistsByNumber reports whether an account with this number exists.
func (r *CompanyAccountRepository) ExistsByNumber(ctx context.Context, accountNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM company_accounts WHERE account_number = $1)`

	if err := r.db.GetContext(ctx, &exists, query, accountNumber); err != nil {
		return false, err
	}

	return exists, nil
}

// GetByNumberForUpdateTx loads a company account inside a transaction and
// takes a row lock on it, serializing concurrent transfers against the same
// account.
func (r *CompanyAccountRepository) GetByNumberForUpdateTx(ctx context.Context, tx *sqlx.Tx, accountNumber string) (*CompanyAccount, error) {
	var acct CompanyAccount
	query := `SELECT ` + companyAccountColumns + ` FROM company_accounts WHERE account_number = $1 FOR UPDATE`

	err := sqlx.GetContext(ctx, tx, &acct, query, accountNumber)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("company account")
	}
	if err != nil {
		return nil, err
	}

	return &acct, nil
}

// DebitForTransferTx subtracts amount from the account's current balance and
// adds it to the paid balance inside a transaction. The caller must hold the
// row lock and have verified sufficient funds.
func (r *CompanyAccountRepository) DebitForTransferTx(ctx context.Context, tx *sqlx.Tx, id int64, amount decimal.Decimal) (*CompanyAccount, error) {
	var acct CompanyAccount
	query := `
		UPDATE company_accounts
		SET current_balance = current_balance - $2,
		    paid_balance = paid_balance + $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + companyAccountColumns

	err := sqlx.GetContext(ctx, tx, &acct, query, id, amount)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("company account")
	}
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return nil, appErr
		}
		return nil, err
	}

	return &acct, nil
}
