package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/remittance"
	"github.com/kingstonbooks/payroll-backend-go/internal/handler/http/response"
	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/tenant"
)

type RemittanceHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type remittanceHandlerImpl struct {
	remittanceService remittance.RemittanceService
}

func NewRemittanceHandler(remittanceService remittance.RemittanceService) RemittanceHandler {
	return &remittanceHandlerImpl{remittanceService: remittanceService}
}

func (h *remittanceHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	companyID, err := tenant.CompanyIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req remittance.GenerateRemittancesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.remittanceService.Generate(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Remittances generated", result)
}

func (h *remittanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companyID, err := tenant.CompanyIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		response.BadRequest(w, "year is required", nil)
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	filter := remittance.ListFilter{Year: year}

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			response.BadRequest(w, "Invalid month", nil)
			return
		}
		filter.Month = &month
	}
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		typ := remittance.Type(typeStr)
		if !typ.Valid() {
			response.BadRequest(w, "Invalid remittance type", nil)
			return
		}
		filter.Type = &typ
	}

	result, err := h.remittanceService.List(r.Context(), companyID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
