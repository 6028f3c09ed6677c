package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/statutory"
	"github.com/kingstonbooks/payroll-backend-go/internal/fixtures"
)

func TestStatutoryHandler_ListRuleSets(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	companyID, _ := seedHandlerScenario(t, ctx)
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/v1/statutory-rules", companyID, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool                        `json:"success"`
		Data    []statutory.RuleSetResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data, 2)

	// Newest version first; only the current one is open-ended.
	current := envelope.Data[0]
	assert.Equal(t, "FY2024-2025", current.Name)
	assert.Equal(t, "2024-04-01", current.EffectiveFrom)
	assert.Nil(t, current.EffectiveTo)

	previous := envelope.Data[1]
	assert.Equal(t, "FY2023-2024", previous.Name)
	require.NotNil(t, previous.EffectiveTo)
	assert.Equal(t, "2024-04-01", *previous.EffectiveTo)

	seeded := fixtures.GetCurrentRuleSet()
	assert.True(t, current.NISAnnualCeiling.Equal(seeded.NISAnnualCeiling))
	assert.True(t, current.PAYEAnnualThreshold.Equal(seeded.PAYEAnnualThreshold))
	assert.True(t, current.HEARTLevyRate.Equal(seeded.HEARTLevyRate))
}

func TestStatutoryHandler_ListRuleSets_RequiresCompanyHeader(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)
	seedHandlerRuleSets(t, ctx)
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/v1/statutory-rules", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp["success"].(bool))
}
