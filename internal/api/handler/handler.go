// Package handler implements the HTTP endpoints of the analytics API.
// Dashboard endpoints read the synthetic pensioner table; DLC endpoints
// read the latest persisted summary document.
package handler

import (
	"encoding/json"
	"net/http"

	"dlc-analytics/internal/pipeline"
	"dlc-analytics/internal/store"

	"go.uber.org/zap"
)

// Handler carries the dependencies shared by all endpoints.
type Handler struct {
	Store   *store.Store
	Runner  *pipeline.Runner
	Log     *zap.Logger
	DataDir string
}

func New(st *store.Store, runner *pipeline.Runner, log *zap.Logger, dataDir string) *Handler {
	return &Handler{Store: st, Runner: runner, Log: log, DataDir: dataDir}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{"error": msg})
}
