package api

import (
	"net/http"

	"dlc-analytics/internal/api/handler"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "dlc-analytics/docs"
)

// NewRouter wires every endpoint onto a gorilla/mux router with CORS
// applied globally. The dashboard front end is served from a different
// origin during development.
func NewRouter(h *handler.Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/dashboard/stats", h.GetStats).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/dashboard/age-distribution", h.GetAgeDistribution).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/dashboard/state-wise-data", h.GetStateWiseData).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/dashboard/authentication-methods", h.GetAuthMethods).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/dashboard/verification-locations", h.GetVerificationLocations).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/dlc-bank-pincode-data", h.GetBankPincodeRollup).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/analysis/run", h.TriggerRun).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/analysis/runs", h.ListRuns).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/analysis/runs/{id}", h.GetRun).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/analysis/top-pincodes", h.GetTopPincodes).Methods(http.MethodGet, http.MethodOptions)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
