package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dlc-analytics/internal/model"
	"dlc-analytics/internal/store"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// GetBankPincodeRollup returns the latest DLC analysis rolled up by residence state
// @Summary DLC bank-pincode data
// @Description Get per-bank-pincode DLC completions with a residence-state rollup
// @Tags analysis
// @Produce json
// @Success 200 {object} map[string]interface{} "Rollup and raw bank-pincode data"
// @Failure 404 {object} map[string]interface{} "No analysis data found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dlc-bank-pincode-data [get]
func (h *Handler) GetBankPincodeRollup(w http.ResponseWriter, r *http.Request) {
	doc, tag, err := h.Store.LatestSummary()
	if errors.Is(err, store.ErrNoSummary) {
		writeError(w, http.StatusNotFound, "No DLC analysis data found")
		return
	}
	if err != nil {
		h.Log.Error("failed to load latest summary", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load analysis data")
		return
	}

	fmt.Printf("📊 Serving DLC analysis %s (%d bank pincodes)\n", tag, len(doc.BankPincodeData))
	stateWise := store.ResidenceRollup(doc)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state_wise_data":   stateWise,
		"bank_pincode_data": doc.BankPincodeData,
		"total_records":     len(doc.BankPincodeData),
		"total_states":      len(stateWise),
		"processed_at":      doc.AnalysisTimestamp,
	})
}

// TriggerRun starts a new analysis run
// @Summary Trigger analysis run
// @Description Start an asynchronous analysis run over the configured data directory
// @Tags analysis
// @Produce json
// @Success 202 {object} map[string]interface{} "Run accepted"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /analysis/run [post]
func (h *Handler) TriggerRun(w http.ResponseWriter, r *http.Request) {
	runID := uuid.New().String()
	if err := h.Store.CreateRun(runID, h.DataDir); err != nil {
		h.Log.Error("failed to register run", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to register run")
		return
	}

	go func() {
		if _, err := h.Runner.Run(runID, h.DataDir); err != nil {
			h.Log.Error("background run failed", zap.String("run_id", runID), zap.Error(err))
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"message":   "Analysis run started",
		"run_id":    runID,
		"status":    model.RunPending,
		"createdAt": time.Now().UTC(),
	})
}

// ListRuns returns all analysis runs
// @Summary List analysis runs
// @Description Get all analysis runs with their status and counters, newest first
// @Tags analysis
// @Produce json
// @Success 200 {array} model.AnalysisRun "Runs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /analysis/runs [get]
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.Store.ListRuns()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch runs")
		return
	}
	if runs == nil {
		runs = []*model.AnalysisRun{}
	}
	writeJSON(w, http.StatusOK, runs)
}

// GetRun returns one analysis run with its progress log
// @Summary Get analysis run
// @Description Get one analysis run by id, including its stage log
// @Tags analysis
// @Produce json
// @Param id path string true "Run ID"
// @Param limit query int false "Max log entries" default(100)
// @Success 200 {object} map[string]interface{} "Run with logs"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /analysis/runs/{id} [get]
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	runID := mux.Vars(r)["id"]
	run, err := h.Store.GetRun(runID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Run not found")
		return
	}

	limit := 100
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	logs, err := h.Store.GetRunLogs(runID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch run logs")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"run":  run,
		"logs": logs,
	})
}

// GetTopPincodes returns the latest top-pincodes projection
// @Summary Top bank pincodes
// @Description Get the persisted top bank pincodes from the latest analysis
// @Tags analysis
// @Produce json
// @Success 200 {object} map[string]interface{} "Top pincodes"
// @Failure 404 {object} map[string]interface{} "No analysis data found"
// @Router /analysis/top-pincodes [get]
func (h *Handler) GetTopPincodes(w http.ResponseWriter, r *http.Request) {
	raw, tag, err := h.Store.LatestSummaryRaw(store.KindTopPincodes)
	if errors.Is(err, store.ErrNoSummary) {
		writeError(w, http.StatusNotFound, "No DLC analysis data found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load top pincodes")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Summary-Tag", tag)
	w.Write(raw)
}
