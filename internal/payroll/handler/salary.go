package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Snigdah/E-Banking-System/internal/payroll/service"
	"github.com/Snigdah/E-Banking-System/pkg/httputil"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
)

// SalaryHandler handles the base salary schedule and salary calculation
type SalaryHandler struct {
	service *service.SalaryService
	logger  *logger.Logger
}

// NewSalaryHandler creates a new salary handler
func NewSalaryHandler(svc *service.SalaryService, log *logger.Logger) *SalaryHandler {
	return &SalaryHandler{
		service: svc,
		logger:  log,
	}
}

// SetBaseSalaryRequest sets the grade-6 base salary amount
type SetBaseSalaryRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CalculateSalaryRequest asks for the salary breakdown of a grade
type CalculateSalaryRequest struct {
	Grade int `json:"grade" validate:"required,gte=1,lte=6"`
}

// SetBaseSalary creates or replaces the base salary amount
func (h *SalaryHandler) SetBaseSalary(w http.ResponseWriter, r *http.Request) {
	var req SetBaseSalaryRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	bs, err := h.service.SetBaseSalary(r.Context(), req.Amount)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, bs)
}

// GetBaseSalary returns the base salary record
func (h *SalaryHandler) GetBaseSalary(w http.ResponseWriter, r *http.Request) {
	bs, err := h.service.GetBaseSalary(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, bs)
}

// CalculateSalary computes the salary breakdown for a grade
func (h *SalaryHandler) CalculateSalary(w http.ResponseWriter, r *http.Request) {
	var req CalculateSalaryRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	breakdown, err := h.service.CalculateForGrade(r.Context(), req.Grade)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, breakdown)
}
