package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snigdah/E-Banking-System/internal/payroll/handler"
	"github.com/Snigdah/E-Banking-System/internal/payroll/repository"
	"github.com/Snigdah/E-Banking-System/internal/payroll/service"
	"github.com/Snigdah/E-Banking-System/pkg/database"
	"github.com/Snigdah/E-Banking-System/pkg/httputil"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
	"github.com/Snigdah/E-Banking-System/pkg/testutil"
)

func newBankAccountHandler(t *testing.T) (*testutil.MockDB, *handler.BankAccountHandler) {
	mock := testutil.NewMockDB(t)
	log := logger.New("test", "test")
	db := database.NewWithDB(mock.DB, log)
	svc := service.NewBankAccountService(repository.NewBankAccountRepository(db), log)
	return mock, handler.NewBankAccountHandler(svc, log)
}

func TestBankAccountHandler_Create_InvalidAccountType(t *testing.T) {
	mock, h := newBankAccountHandler(t)
	defer mock.Close()

	body := `{"accountName":"John Doe","bankName":"AB Bank","branchName":"Mohakhali","accountType":"FIXED"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bank-accounts", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp httputil.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Message, "SAVINGS")

	mock.ExpectationsWereMet(t)
}

func TestBankAccountHandler_Create_MissingFields(t *testing.T) {
	mock, h := newBankAccountHandler(t)
	defer mock.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/bank-accounts", strings.NewReader(`{"accountName":"John Doe"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp httputil.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "BankName")
	assert.Contains(t, resp.Error.Details, "AccountType")

	mock.ExpectationsWereMet(t)
}
