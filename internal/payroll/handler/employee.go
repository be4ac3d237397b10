package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Snigdah/E-Banking-System/internal/payroll/service"
	"github.com/Snigdah/E-Banking-System/pkg/httputil"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
)

// EmployeeHandler handles employee endpoints
type EmployeeHandler struct {
	service *service.EmployeeService
	logger  *logger.Logger
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(svc *service.EmployeeService, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		service: svc,
		logger:  log,
	}
}

// CreateEmployeeRequest is the request structure for registering an employee.
// The bank account must already exist and is matched by number and name.
type CreateEmployeeRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	Grade         int    `json:"grade" validate:"required,gte=1,lte=6"`
	Address       string `json:"address" validate:"required,max=250"`
	MobileNumber  string `json:"mobileNumber" validate:"required,min=10,max=15"`
	AccountNumber string `json:"accountNumber" validate:"required,len=10"`
	AccountName   string `json:"accountName" validate:"required"`
}

// UpdateEmployeeRequest is the request structure for updating an employee
type UpdateEmployeeRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Grade        int    `json:"grade" validate:"required,gte=1,lte=6"`
	Address      string `json:"address" validate:"required,max=250"`
	MobileNumber string `json:"mobileNumber" validate:"required,min=10,max=15"`
}

// Create registers a new employee against an existing bank account
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	detail, err := h.service.Create(r.Context(), &service.CreateEmployeeInput{
		Name:          req.Name,
		Grade:         req.Grade,
		Address:       req.Address,
		MobileNumber:  req.MobileNumber,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
	})
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, detail)
}

// Get returns an employee with bank account details and salary breakdown
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	detail, err := h.service.Get(r.Context(), employeeID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, detail)
}

// List lists all employees with bank account details and salary breakdowns
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.List(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, details)
}

// Update updates an employee's details
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	var req UpdateEmployeeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	detail, err := h.service.Update(r.Context(), employeeID, &service.UpdateEmployeeInput{
		Name:         req.Name,
		Grade:        req.Grade,
		Address:      req.Address,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, detail)
}

// Delete removes an employee
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	if err := h.service.Delete(r.Context(), employeeID); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.NoContent(w)
}
