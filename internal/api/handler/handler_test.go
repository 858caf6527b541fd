package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"dlc-analytics/internal/model"
	"dlc-analytics/internal/pipeline"
	"dlc-analytics/internal/store"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	log := zap.NewNop()
	return New(st, pipeline.NewRunner(st, log), log, t.TempDir()), st
}

func seedSummary(t *testing.T, st *store.Store) {
	t.Helper()
	doc := &model.SummaryDocument{
		AnalysisTimestamp:     "2024-06-01 12:00:00",
		TotalRecordsProcessed: 100,
		TotalBankPincodes:     1,
		TotalDLCCompleted:     100,
		BankPincodeData: map[string]*model.BankPincodeStats{
			"400001": {
				TotalDLCCompleted: 100,
				State:             "Maharashtra",
				AgeGroups:         map[string]int{model.Age66To70: 40, model.Age71To75: 60},
				PensionerStates:   map[string]int{"Gujarat": 25, "Maharashtra": 75},
			},
		},
	}
	require.NoError(t, st.SaveSummary("20240601_120000", store.KindAnalysis, doc))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestGetBankPincodeRollupNoData(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.GetBankPincodeRollup(rec, httptest.NewRequest(http.MethodGet, "/api/dlc-bank-pincode-data", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]interface{}
	decodeBody(t, rec, &body)
	assert.Contains(t, body["error"], "No DLC analysis data")
}

func TestGetBankPincodeRollup(t *testing.T) {
	h, st := newTestHandler(t)
	seedSummary(t, st)

	rec := httptest.NewRecorder()
	h.GetBankPincodeRollup(rec, httptest.NewRequest(http.MethodGet, "/api/dlc-bank-pincode-data", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		StateWiseData map[string]struct {
			TotalPensioners int            `json:"total_pensioners"`
			AgeGroups       map[string]int `json:"age_groups"`
		} `json:"state_wise_data"`
		TotalRecords int    `json:"total_records"`
		TotalStates  int    `json:"total_states"`
		ProcessedAt  string `json:"processed_at"`
	}
	decodeBody(t, rec, &body)

	assert.Equal(t, 1, body.TotalRecords)
	assert.Equal(t, 2, body.TotalStates)
	assert.Equal(t, "2024-06-01 12:00:00", body.ProcessedAt)

	gujarat := body.StateWiseData["Gujarat"]
	assert.Equal(t, 25, gujarat.TotalPensioners)
	assert.Equal(t, 10, gujarat.AgeGroups[model.Age66To70])
}

func TestGetAgeDistribution(t *testing.T) {
	h, st := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.GetAgeDistribution(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/age-distribution", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var empty []map[string]interface{}
	decodeBody(t, rec, &empty)
	assert.Empty(t, empty)

	seedSummary(t, st)
	rec = httptest.NewRecorder()
	h.GetAgeDistribution(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/age-distribution", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var groups []struct {
		AgeGroup string `json:"ageGroup"`
		Count    int    `json:"count"`
	}
	decodeBody(t, rec, &groups)
	require.Len(t, groups, len(model.AgeGroups))
	// Buckets come back in display order, zero counts included.
	assert.Equal(t, model.AgeBelow60, groups[0].AgeGroup)
	assert.Equal(t, 0, groups[0].Count)
	assert.Equal(t, model.Age66To70, groups[2].AgeGroup)
	assert.Equal(t, 40, groups[2].Count)
}

func TestGetStatsAndStateWiseData(t *testing.T) {
	h, st := newTestHandler(t)
	require.NoError(t, st.InsertPensioners([]model.SamplePensioner{
		{PensionerID: "P1", Name: "Pensioner 1", Age: 64, State: "Kerala", District: "Kochi",
			Status: model.StatusVerified, Amount: 10000, LastVerification: "2024-06-01", AuthMethod: "IRIS"},
		{PensionerID: "P2", Name: "Pensioner 2", Age: 72, State: "Kerala", District: "Kochi",
			Status: model.StatusPending, Amount: 8000, LastVerification: "2024-05-01", AuthMethod: "Fingerprint"},
	}))

	rec := httptest.NewRecorder()
	h.GetStats(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var stats map[string]interface{}
	decodeBody(t, rec, &stats)
	assert.Equal(t, float64(2), stats["totalPensioners"])
	assert.Equal(t, float64(1), stats["pendingVerifications"])
	assert.Equal(t, float64(10000), stats["totalAmount"])

	rec = httptest.NewRecorder()
	h.GetStateWiseData(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/state-wise-data", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var states []store.StateWiseRow
	decodeBody(t, rec, &states)
	require.Len(t, states, 1)
	assert.Equal(t, "Kerala", states[0].State)
	assert.Equal(t, 2, states[0].TotalPensioners)
	assert.Equal(t, 1, states[0].Verified)
}

func TestGetAuthMethodsFiltered(t *testing.T) {
	h, st := newTestHandler(t)
	require.NoError(t, st.InsertPensioners([]model.SamplePensioner{
		{PensionerID: "P1", Age: 62, State: "Kerala", District: "Kochi", Status: model.StatusVerified,
			LastVerification: "2024-06-01", AuthMethod: "Fingerprint"},
		{PensionerID: "P2", Age: 82, State: "Kerala", District: "Kochi", Status: model.StatusVerified,
			LastVerification: "2024-06-01", AuthMethod: "IRIS"},
	}))

	rec := httptest.NewRecorder()
	h.GetAuthMethods(rec, httptest.NewRequest(http.MethodGet,
		"/api/dashboard/authentication-methods?age_group=80%2B", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body store.AuthBreakdown
	decodeBody(t, rec, &body)
	assert.Equal(t, 1, body.TotalCount)
	assert.Equal(t, model.Age80Plus, body.FilteredBy)
	assert.Equal(t, 1, body.Methods["IRIS"])
}

func TestGetVerificationLocations(t *testing.T) {
	h, st := newTestHandler(t)

	batch := make([]model.SamplePensioner, 0, 10)
	for i := 0; i < 10; i++ {
		batch = append(batch, model.SamplePensioner{
			PensionerID: "P" + string(rune('A'+i)), Age: 65, State: "Maharashtra", District: "Mumbai",
			Status: model.StatusVerified, LastVerification: "2024-06-01", AuthMethod: "IRIS",
		})
	}
	require.NoError(t, st.InsertPensioners(batch))

	rec := httptest.NewRecorder()
	h.GetVerificationLocations(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/verification-locations", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var locations []map[string]interface{}
	decodeBody(t, rec, &locations)
	require.Len(t, locations, 1)
	assert.Equal(t, "Mumbai", locations[0]["district"])
	assert.Equal(t, "active", locations[0]["status"])
	coords := locations[0]["coordinates"].([]interface{})
	assert.InDelta(t, 19.0760, coords[0].(float64), 0.001)
}

func TestTriggerRunRegistersRun(t *testing.T) {
	h, st := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.TriggerRun(rec, httptest.NewRequest(http.MethodPost, "/api/analysis/run", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	runID, ok := body["run_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, runID)

	run, err := st.GetRun(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, run.ID)
}

func TestGetRunNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/analysis/runs/nope", nil),
		map[string]string{"id": "nope"})
	rec := httptest.NewRecorder()
	h.GetRun(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRunsEmpty(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ListRuns(rec, httptest.NewRequest(http.MethodGet, "/api/analysis/runs", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
