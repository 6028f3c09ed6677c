package http

import (
	"net/http"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/statutory"
	"github.com/kingstonbooks/payroll-backend-go/internal/handler/http/response"
)

type StatutoryHandler interface {
	ListRuleSets(w http.ResponseWriter, r *http.Request)
}

type statutoryHandlerImpl struct {
	ruleSetService statutory.RuleSetService
}

func NewStatutoryHandler(ruleSetService statutory.RuleSetService) StatutoryHandler {
	return &statutoryHandlerImpl{ruleSetService: ruleSetService}
}

func (h *statutoryHandlerImpl) ListRuleSets(w http.ResponseWriter, r *http.Request) {
	result, err := h.ruleSetService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
