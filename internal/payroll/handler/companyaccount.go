package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Snigdah/E-Banking-System/internal/payroll/repository"
	"github.com/Snigdah/E-Banking-System/internal/payroll/service"
	"github.com/Snigdah/E-Banking-System/pkg/httputil"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
)

// CompanyAccountHandler handles company account endpoints, including the
// salary transfer entry point.
type CompanyAccountHandler struct {
	service  *service.CompanyAccountService
	transfer *service.TransferService
	logger   *logger.Logger
}

// NewCompanyAccountHandler creates a new company account handler
func NewCompanyAccountHandler(svc *service.CompanyAccountService, transfer *service.TransferService, log *logger.Logger) *CompanyAccountHandler {
	return &CompanyAccountHandler{
		service:  svc,
		transfer: transfer,
		logger:   log,
	}
}

// CreateCompanyAccountRequest is the request structure for opening a company account
type CreateCompanyAccountRequest struct {
	AccountName    string          `json:"accountName" validate:"required,min=2,max=100"`
	BankName       string          `json:"bankName" validate:"required,min=2,max=100"`
	BranchName     string          `json:"branchName" validate:"required,min=2,max=100"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// UpdateCompanyAccountRequest is the request structure for updating a company account
type UpdateCompanyAccountRequest struct {
	AccountNumber string `json:"accountNumber" validate:"required,len=10"`
	AccountName   string `json:"accountName" validate:"required,min=2,max=100"`
	BankName      string `json:"bankName" validate:"required,min=2,max=100"`
	BranchName    string `json:"branchName" validate:"required,min=2,max=100"`
}

// AddFundsRequest tops up a company account
type AddFundsRequest struct {
	AccountNumber string          `json:"accountNumber" validate:"required,len=10"`
	Amount        decimal.Decimal `json:"amount"`
}

// TransferSalaryRequest pays one employee's salary from a company account
type TransferSalaryRequest struct {
	AccountNumber string `json:"accountNumber" validate:"required,len=10"`
	EmployeeID    string `json:"employeeId" validate:"required,len=4,numeric"`
}

// Create opens a new company account with a server-generated account number
func (h *CompanyAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyAccountRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	acct := &repository.CompanyAccount{
		AccountCore: repository.AccountCore{
			AccountName:    req.AccountName,
			CurrentBalance: req.InitialBalance,
			BankName:       req.BankName,
			BranchName:     req.BranchName,
		},
	}

	if err := h.service.Create(r.Context(), acct); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, acct)
}

// Search finds a company account by account number and holder name
func (h *CompanyAccountHandler) Search(w http.ResponseWriter, r *http.Request) {
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

// List lists all company accounts
func (h *CompanyAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.List(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, accounts)
}

// Update updates a company account's details, addressed by account number
func (h *CompanyAccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCompanyAccountRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	acct := &repository.CompanyAccount{
		AccountCore: repository.AccountCore{
			AccountName:   req.AccountName,
			AccountNumber: req.AccountNumber,
			BankName:      req.BankName,
			BranchName:    req.BranchName,
		},
	}

	updated, err := h.service.Update(r.Context(), acct)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, updated)
}

// Delete removes a company account matched by account number and name
func (h *CompanyAccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req SearchAccountRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), req.AccountNumber, req.AccountName); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.NoContent(w)
}

// AddFunds adds a non-negative amount to a company account's balance
func (h *CompanyAccountHandler) AddFunds(w http.ResponseWriter, r *http.Request) {
	var req AddFundsRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	balance, err := h.service.AddFunds(r.Context(), req.AccountNumber, req.Amount)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]any{
		"accountNumber":  req.AccountNumber,
		"currentBalance": balance,
	})
}

// TransferSalary pays one employee's total salary from a company account
func (h *CompanyAccountHandler) TransferSalary(w http.ResponseWriter, r *http.Request) {
	var req TransferSalaryRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	result, err := h.transfer.TransferSalary(r.Context(), req.AccountNumber, req.EmployeeID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}
