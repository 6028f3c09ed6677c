package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/remittance"
)

type remittanceEnvelope struct {
	Success bool                              `json:"success"`
	Message string                            `json:"message"`
	Data    remittance.RemittanceListResponse `json:"data"`
}

func decodeRemittances(t *testing.T, w *httptest.ResponseRecorder) remittanceEnvelope {
	var envelope remittanceEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	return envelope
}

// approveJulyRun creates the standard July run and approves it, so the month
// has posted deductions to aggregate.
func approveJulyRun(t *testing.T, router *chi.Mux, companyID string, employeeIDs []string) string {
	w := doRequest(t, router, http.MethodPost, "/api/v1/payroll-runs", companyID, monthlyRunPayload(employeeIDs...))
	require.Equal(t, http.StatusCreated, w.Code)
	runID := decodeRun(t, w).Data.ID

	w = doRequest(t, router, http.MethodPost, "/api/v1/payroll-runs/"+runID+"/approve", companyID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return runID
}

func TestRemittanceHandler_Generate_AggregatesApprovedRuns(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	companyID, employeeIDs := seedHandlerScenario(t, ctx)
	router := newTestRouter()

	approveJulyRun(t, router, companyID, employeeIDs)

	w := doRequest(t, router, http.MethodPost, "/api/v1/remittances/generate", companyID,
		remittance.GenerateRemittancesRequest{Year: 2025, Month: 7})

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeRemittances(t, w)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Remittances generated", envelope.Message)

	// PAYE is zero for these salaries, so no paye row appears. The rest
	// come back ordered by type.
	require.Len(t, envelope.Data.Remittances, 4)
	byType := map[remittance.Type]remittance.RemittanceResponse{}
	for _, r := range envelope.Data.Remittances {
		byType[r.Type] = r
	}
	assert.NotContains(t, byType, remittance.TypePAYE)
	assert.Equal(t, "4500.00", byType[remittance.TypeNIS].AmountDue.StringFixed(2))
	assert.Equal(t, "3000.00", byType[remittance.TypeNHT].AmountDue.StringFixed(2))
	assert.Equal(t, "3375.00", byType[remittance.TypeEducationTax].AmountDue.StringFixed(2))
	assert.Equal(t, "4500.00", byType[remittance.TypeHEART].AmountDue.StringFixed(2))

	for _, r := range envelope.Data.Remittances {
		assert.Equal(t, "2025-07", r.PeriodMonth)
		assert.Equal(t, "2025-08-14", r.DueDate)
		assert.Equal(t, "0.00", r.AmountPaid.StringFixed(2))
	}

	assert.Equal(t, "15375.00", envelope.Data.Summary.TotalDue.StringFixed(2))
	assert.Equal(t, "0.00", envelope.Data.Summary.TotalPaid.StringFixed(2))
	assert.Equal(t, "15375.00", envelope.Data.Summary.TotalOutstanding.StringFixed(2))
	assert.Equal(t, 0, envelope.Data.Summary.PaidCount)
}

func TestRemittanceHandler_Generate_IgnoresDraftRuns(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	companyID, employeeIDs := seedHandlerScenario(t, ctx)
	router := newTestRouter()

	// Created but never approved, so nothing has reached the ledger yet.
	w := doRequest(t, router, http.MethodPost, "/api/v1/payroll-runs", companyID, monthlyRunPayload(employeeIDs...))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/remittances/generate", companyID,
		remittance.GenerateRemittancesRequest{Year: 2025, Month: 7})

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeRemittances(t, w)
	assert.Empty(t, envelope.Data.Remittances)
	assert.Equal(t, "0.00", envelope.Data.Summary.TotalDue.StringFixed(2))
}

func TestRemittanceHandler_Generate_Idempotent(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	companyID, employeeIDs := seedHandlerScenario(t, ctx)
	router := newTestRouter()

	approveJulyRun(t, router, companyID, employeeIDs)
	payload := remittance.GenerateRemittancesRequest{Year: 2025, Month: 7}

	w := doRequest(t, router, http.MethodPost, "/api/v1/remittances/generate", companyID, payload)
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeRemittances(t, w).Data

	w = doRequest(t, router, http.MethodPost, "/api/v1/remittances/generate", companyID, payload)
	require.Equal(t, http.StatusOK, w.Code)
	second := decodeRemittances(t, w).Data

	// Regenerating refreshes amounts in place rather than inserting again.
	require.Len(t, second.Remittances, len(first.Remittances))
	for i := range first.Remittances {
		assert.Equal(t, first.Remittances[i].ID, second.Remittances[i].ID)
		assert.True(t, first.Remittances[i].AmountDue.Equal(second.Remittances[i].AmountDue))
	}

	var count int
	err := testHandlerDB.QueryRow(ctx,
		"SELECT COUNT(*) FROM remittances WHERE company_id = $1", companyID,
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestRemittanceHandler_Generate_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	companyID, _ := seedHandlerScenario(t, ctx)
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/v1/remittances/generate", companyID,
		remittance.GenerateRemittancesRequest{Year: 2025, Month: 13})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	errObj := resp["error"].(map[string]interface{})
	details := errObj["details"].(map[string]interface{})
	assert.Contains(t, details, "month")
}

func TestRemittanceHandler_List_Filters(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	companyID, employeeIDs := seedHandlerScenario(t, ctx)
	router := newTestRouter()

	approveJulyRun(t, router, companyID, employeeIDs)
	w := doRequest(t, router, http.MethodPost, "/api/v1/remittances/generate", companyID,
		remittance.GenerateRemittancesRequest{Year: 2025, Month: 7})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/remittances?year=2025", companyID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeRemittances(t, w)
	assert.Len(t, envelope.Data.Remittances, 4)
	assert.Equal(t, "15375.00", envelope.Data.Summary.TotalDue.StringFixed(2))

	w = doRequest(t, router, http.MethodGet, "/api/v1/remittances?year=2025&type=nis", companyID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	envelope = decodeRemittances(t, w)
	require.Len(t, envelope.Data.Remittances, 1)
	assert.Equal(t, remittance.TypeNIS, envelope.Data.Remittances[0].Type)
	assert.Equal(t, "4500.00", envelope.Data.Remittances[0].AmountDue.StringFixed(2))

	// A month with no generated remittances lists empty, not 404.
	w = doRequest(t, router, http.MethodGet, "/api/v1/remittances?year=2025&month=6", companyID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	envelope = decodeRemittances(t, w)
	assert.Empty(t, envelope.Data.Remittances)
}

func TestRemittanceHandler_List_RejectsBadQuery(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	companyID, _ := seedHandlerScenario(t, ctx)
	router := newTestRouter()

	cases := []struct {
		name   string
		target string
	}{
		{name: "missing year", target: "/api/v1/remittances"},
		{name: "invalid year", target: "/api/v1/remittances?year=abc"},
		{name: "invalid month", target: "/api/v1/remittances?year=2025&month=13"},
		{name: "invalid type", target: "/api/v1/remittances?year=2025&type=vat"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodGet, tc.target, companyID, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
