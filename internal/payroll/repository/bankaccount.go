package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/Snigdah/E-Banking-System/pkg/database"
	"github.com/Snigdah/E-Banking-System/pkg/errors"
)

const bankAccountColumns = `id, account_name, account_number, current_balance, bank_name, branch_name, account_type, created_at, updated_at`

// BankAccountRepository handles bank account persistence
type BankAccountRepository struct {
	db *database.DB
}

// NewBankAccountRepository creates a new bank account repository
func NewBankAccountRepository(db *database.DB) *BankAccountRepository {
	return &BankAccountRepository{db: db}
}

// Create inserts a new bank account
func (r *BankAccountRepository) Create(ctx context.Context, acct *BankAccount) error {
	query := `
		INSERT INTO bank_accounts (account_name, account_number, current_balance, bank_name, branch_name, account_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		acct.AccountName, acct.AccountNumber, acct.CurrentBalance,
		acct.BankName, acct.BranchName, acct.AccountType,
	).Scan(&acct.ID, &acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	return nil
}

// GetByID gets a bank account by its internal ID
func (r *BankAccountRepository) GetByID(ctx context.Context, id int64) (*BankAccount, error) {
	var acct BankAccount
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE id = $1`

	err := r.db.GetContext(ctx, &acct, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("bank account")
	}
	if err != nil {
		return nil, err
	}

	return &acct, nil
}

// GetByNumber gets a bank account by account number
func (r *BankAccountRepository) GetByNumber(ctx context.Context, accountNumber string) (*BankAccount, error) {
	var acct BankAccount
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE account_number = $1`

	err := r.db.GetContext(ctx, &acct, query, accountNumber)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("bank account")
	}
	if err != nil {
		return nil, err
	}

	return &acct, nil
}

// GetByNumberAndName gets a bank account by account number and account name
func (r *BankAccountRepository) GetByNumberAndName(ctx context.Context, accountNumber, accountName string) (*BankAccount, error) {
	var acct BankAccount
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE account_number = $1 AND account_name = $2`

	err := r.db.GetContext(ctx, &acct, query, accountNumber, accountName)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("bank account")
	}
	if err != nil {
		return nil, err
	}

	return &acct, nil
}

// List lists all bank accounts
func (r *BankAccountRepository) List(ctx context.Context) ([]*BankAccount, error) {
	var accounts []*BankAccount
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts ORDER BY account_name, account_number`

	if err := r.db.SelectContext(ctx, &accounts, query); err != nil {
		return nil, err
	}

	return accounts, nil
}

// Update updates the mutable fields of a bank account, addressed by account number
func (r *BankAccountRepository) Update(ctx context.Context, acct *BankAccount) error {
	query := `
		UPDATE bank_accounts SET
			account_name = $2, bank_name = $3, branch_name = $4, account_type = $5,
			updated_at = NOW()
		WHERE account_number = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		acct.AccountNumber, acct.AccountName, acct.BankName, acct.BranchName, acct.AccountType,
	)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("bank account")
	}

	return nil
}

// ExistsByNumber reports whether an account with this number exists.
// Used by the account number generator to detect collisions before commit.
func (r *BankAccountRepository) ExistsByNumber(ctx context.Context, accountNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM bank_accounts WHERE account_number = $1)`

	if err := r.db.GetContext(ctx, &exists, query, accountNumber); err != nil {
		return false, err
	}

	return exists, nil
}

// GetByIDForUpdateTx loads a bank account inside a transaction and takes a
// row lock on it for the remainder of the transaction.
func (r *BankAccountRepository) GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id int64) (*BankAccount, error) {
	var acct BankAccount
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE id = $1 FOR UPDATE`

	err := sqlx.GetContext(ctx, tx, &acct, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("bank account")
	}
	if err != nil {
		return nil, err
	}

	return &acct, nil
}

// CreditTx adds amount to a bank account's balance inside a transaction.
func (r *BankAccountRepository) CreditTx(ctx context.Context, tx *sqlx.Tx, id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	query := `
		UPDATE bank_accounts
		SET current_balance = current_balance + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING current_balance
	`

	err := tx.QueryRowxContext(ctx, query, id, amount).Scan(&balance)
	if err == sql.ErrNoRows {
		return decimal.Decimal{}, errors.NotFound("bank account")
	}
	if err != nil {
		return decimal.Decimal{}, err
	}

	return balance, nil
}
