package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (int, string, map[string]any) {
	t.Helper()

	var out struct {
		ReturnCode    int             `json:"return_code"`
		ReturnMessage string          `json:"return_message"`
		Data          json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	data := map[string]any{}
	if len(out.Data) > 0 {
		_ = json.Unmarshal(out.Data, &data)
	}
	return out.ReturnCode, out.ReturnMessage, data
}

func budgetPayload() map[string]any {
	return map[string]any{
		"company_id":    "MCO0001",
		"brand_id":      "MBR0001",
		"branch_id":     "MBC0001",
		"department_id": "MDP0001",
		"budget_year":   2025,
		"total_budget":  "500000",
		"user_id":       "USR0001",
	}
}

func TestCreateBudgetEndpoint(t *testing.T) {
	s, db := newTestServer(t)
	seedBudgetMasters(t, db)

	w := doJSON(t, s, http.MethodPost, "/v1/budgets", budgetPayload())
	require.Equal(t, http.StatusOK, w.Code)

	code, message, data := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Success", message)
	assert.Equal(t, "B-EAU-25-0001", data["budget_code"])
	assert.Equal(t, "BDG00001", data["budget_id"])
}

func TestCreateBudgetUnknownReferenceReturns404(t *testing.T) {
	s, db := newTestServer(t)
	seedBudgetMasters(t, db)

	payload := budgetPayload()
	payload["department_id"] = "MDP9999"
	w := doJSON(t, s, http.MethodPost, "/v1/budgets", payload)
	require.Equal(t, http.StatusNotFound, w.Code)

	code, message, _ := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Department data not found", message)
}

func TestCreateBudgetDuplicateReturns409(t *testing.T) {
	s, db := newTestServer(t)
	seedBudgetMasters(t, db)

	w := doJSON(t, s, http.MethodPost, "/v1/budgets", budgetPayload())
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPost, "/v1/budgets", budgetPayload())
	require.Equal(t, http.StatusConflict, w.Code)

	code, _, _ := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusConflict, code)
}

func TestCreateBudgetMissingFieldsReturns400(t *testing.T) {
	s, db := newTestServer(t)
	seedBudgetMasters(t, db)

	payload := budgetPayload()
	payload["company_id"] = ""
	w := doJSON(t, s, http.MethodPost, "/v1/budgets", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	code, _, _ := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestBudgetLifecycleOverHTTP(t *testing.T) {
	s, db := newTestServer(t)
	seedBudgetMasters(t, db)

	w := doJSON(t, s, http.MethodPost, "/v1/budgets", budgetPayload())
	require.Equal(t, http.StatusOK, w.Code)
	_, _, created := decodeEnvelope(t, w)
	uniqueID := created["unique_id"].(string)

	w = doJSON(t, s, http.MethodGet, "/v1/budgets/"+uniqueID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodDelete, "/v1/budgets/"+uniqueID+"?user_id=USR0001", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/v1/budgets/"+uniqueID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompanyCreateOverHTTP(t *testing.T) {
	s, _ := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/v1/companies", map[string]any{
		"company_code": "EAU",
		"company_name": "Eau Corp",
		"user_id":      "USR0001",
	})
	require.Equal(t, http.StatusOK, w.Code)

	code, _, data := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "MS00001", data["company_id"])
}

func TestListMastersOverHTTP(t *testing.T) {
	s, db := newTestServer(t)
	seedBudgetMasters(t, db)

	w := doJSON(t, s, http.MethodGet, "/v1/master/department?active_only=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/v1/master/warehouse", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
