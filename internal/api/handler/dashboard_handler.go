package handler

import (
	"errors"
	"net/http"
	"time"

	"dlc-analytics/internal/model"
	"dlc-analytics/internal/store"
)

// Fixed coordinates for the districts the map cares about. Districts
// without an entry are returned without coordinates; the front end skips
// them.
var districtCoordinates = map[string][2]float64{
	"Lucknow":   {26.8467, 80.9462},
	"Mumbai":    {19.0760, 72.8777},
	"Kolkata":   {22.5726, 88.3639},
	"Chennai":   {13.0827, 80.2707},
	"Bangalore": {12.9716, 77.5946},
	"Hyderabad": {17.3850, 78.4867},
	"Pune":      {18.5204, 73.8567},
	"Ahmedabad": {23.0225, 72.5714},
	"Jaipur":    {26.9124, 75.7873},
	"Surat":     {21.1702, 72.8311},
}

// GetStats returns the headline dashboard counters
// @Summary Dashboard statistics
// @Description Get total, verified and pending pensioner counts plus disbursed amount
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Dashboard statistics"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dashboard/stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.DashboardStats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute dashboard stats")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totalPensioners":      stats.TotalPensioners,
		"verifiedThisMonth":    stats.VerifiedThisMonth,
		"pendingVerifications": stats.PendingVerifications,
		"totalAmount":          stats.TotalAmount,
		"lastUpdated":          time.Now().Format(time.RFC3339),
	})
}

// GetAgeDistribution returns the age-group histogram
// @Summary Age distribution
// @Description Get the overall age-group distribution from the latest analysis
// @Tags dashboard
// @Produce json
// @Success 200 {array} map[string]interface{} "Age group counts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dashboard/age-distribution [get]
func (h *Handler) GetAgeDistribution(w http.ResponseWriter, r *http.Request) {
	doc, _, err := h.Store.LatestSummary()
	if errors.Is(err, store.ErrNoSummary) {
		writeJSON(w, http.StatusOK, []map[string]interface{}{})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute age distribution")
		return
	}

	dist := store.OverallAgeDistribution(doc)
	out := make([]map[string]interface{}, 0, len(model.AgeGroups))
	for _, group := range model.AgeGroups {
		out = append(out, map[string]interface{}{
			"ageGroup": group,
			"count":    dist[group],
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// GetStateWiseData returns per-state pension summaries
// @Summary State-wise pension data
// @Description Get pensioner counts, verification status and average amounts per state
// @Tags dashboard
// @Produce json
// @Success 200 {array} map[string]interface{} "State rows"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dashboard/state-wise-data [get]
func (h *Handler) GetStateWiseData(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Store.StateWiseData()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch state-wise data")
		return
	}
	if rows == nil {
		rows = []store.StateWiseRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

// GetAuthMethods returns the authentication-method breakdown
// @Summary Authentication method distribution
// @Description Get authentication method usage, optionally filtered to one age group
// @Tags dashboard
// @Produce json
// @Param age_group query string false "Age group filter (60-65, 66-70, 71-75, 76-80, 80+)"
// @Success 200 {object} map[string]interface{} "Method and age breakdown"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dashboard/authentication-methods [get]
func (h *Handler) GetAuthMethods(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.Store.AuthMethodBreakdown(r.URL.Query().Get("age_group"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch authentication methods")
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}

// GetVerificationLocations returns district verification data for the map
// @Summary Verification locations
// @Description Get district-level verification counts with map coordinates
// @Tags dashboard
// @Produce json
// @Success 200 {array} map[string]interface{} "District locations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dashboard/verification-locations [get]
func (h *Handler) GetVerificationLocations(w http.ResponseWriter, r *http.Request) {
	districts, err := h.Store.DistrictVerificationCounts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch verification locations")
		return
	}

	locations := make([]map[string]interface{}, 0, len(districts))
	for _, d := range districts {
		status := "pending"
		if d.Verified > d.Pending {
			status = "active"
		}
		loc := map[string]interface{}{
			"district": d.District,
			"state":    d.State,
			"total":    d.Total,
			"verified": d.Verified,
			"pending":  d.Pending,
			"status":   status,
		}
		if coords, ok := districtCoordinates[d.District]; ok {
			loc["coordinates"] = []float64{coords[0], coords[1]}
		}
		locations = append(locations, loc)
	}
	writeJSON(w, http.StatusOK, locations)
}
