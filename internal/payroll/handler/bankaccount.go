package handler

import (
	"net/http"

	"github.com/Snigdah/E-Banking-System/internal/payroll/repository"
	"github.com/Snigdah/E-Banking-System/internal/payroll/service"
	"github.com/Snigdah/E-Banking-System/pkg/httputil"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
)

// BankAccountHandler handles bank account endpoints
type BankAccountHandler struct {
	service *service.BankAccountService
	logger  *logger.Logger
}

// NewBankAccountHandler creates a new bank account handler
func NewBankAccountHandler(svc *service.BankAccountService, log *logger.Logger) *BankAccountHandler {
	return &BankAccountHandler{
		service: svc,
		logger:  log,
	}
}

// CreateBankAccountRequest is the request structure for opening a bank account
type CreateBankAccountRequest struct {
	AccountName string `json:"accountName" validate:"required,min=2,max=100"`
	BankName    string `json:"bankName" validate:"required,min=2,max=100"`
	BranchName  string `json:"branchName" validate:"required,min=2,max=100"`
	AccountType string `json:"accountType" validate:"required"`
}

// SearchAccountRequest identifies an account by number and holder name
type SearchAccountRequest struct {
	AccountNumber string `json:"accountNumber" validate:"required,len=10"`
	AccountName   string `json:"accountName" validate:"required"`
}

// UpdateBankAccountRequest is the request structure for updating a bank account
type UpdateBankAccountRequest struct {
	AccountNumber string `json:"accountNumber" validate:"required,len=10"`
	AccountName   string `json:"accountName" validate:"required,min=2,max=100"`
	BankName      string `json:"bankName" validate:"required,min=2,max=100"`
	BranchName    string `json:"branchName" validate:"required,min=2,max=100"`
	AccountType   string `json:"accountType" validate:"required"`
}

// Create opens a new bank account with a server-generated account number
func (h *BankAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBankAccountRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	accountType, err := repository.ParseAccountType(req.AccountType)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	acct := &repository.BankAccount{
		AccountCore: repository.AccountCore{
			AccountName: req.AccountName,
			BankName:    req.BankName,
			BranchName:  req.BranchName,
		},
		AccountType: accountType,
	}

	if err := h.service.Create(r.Context(), acct); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, acct)
}

// Search finds a bank account by account number and holder name
func (h *BankAccountHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchAccountRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	acct, err := h.service.Search(r.Context(), req.AccountNumber, req.AccountName)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, acct)
}

// List lists all bank accounts
func (h *BankAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.List(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, accounts)
}

// Update updates a bank account's details, addressed by account number
func (h *BankAccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateBankAccountRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	accountType, err := repository.ParseAccountType(req.AccountType)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	acct := &repository.BankAccount{
		AccountCore: repository.AccountCore{
			AccountName:   req.AccountName,
			AccountNumber: req.AccountNumber,
			BankName:      req.BankName,
			BranchName:    req.BranchName,
		},
		AccountType: accountType,
	}

	updated, err := h.service.Update(r.Context(), acct)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, updated)
}
