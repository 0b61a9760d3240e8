// Package advisor exposes the advisory operations over HTTP. The operations
// themselves are total, so these handlers always answer 200 with a complete
// body once the request decodes; only malformed requests get an error status.
package advisor

import (
	"encoding/json"
	"fmt"
	"net/http"

	coreadvisor "finwise/pkg/core/advisor"
	"finwise/pkg/core/planner"
	"finwise/pkg/core/profile"
	"finwise/pkg/core/report"
	"finwise/pkg/core/store"
)

// Handler holds dependencies for the advisory endpoints.
type Handler struct {
	svc     *coreadvisor.Service
	history *store.ConversationRepo // nil when storage is off
}

// NewHandler creates a new advisor handler. history may be nil.
func NewHandler(svc *coreadvisor.Service, history *store.ConversationRepo) *Handler {
	return &Handler{svc: svc, history: history}
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// ChatRequest is the inbound chat payload.
type ChatRequest struct {
	Message string          `json:"message"`
	Profile profile.Profile `json:"profile"`
	UserID  string          `json:"user_id,omitempty"`
}

// ProfileRequest carries just a profile, used by the non-chat operations.
type ProfileRequest struct {
	Profile profile.Profile `json:"profile"`
	UserID  string          `json:"user_id,omitempty"`
}

// HandleChat answers a conversational question.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}
	if req.Profile == nil {
		req.Profile = profile.Profile{}
	}

	resp := h.svc.Chat(r.Context(), req.Message, req.Profile)

	// History is best-effort; a storage failure must not affect the answer.
	if h.history != nil && req.UserID != "" {
		if _, err := h.history.SaveExchange(r.Context(), req.UserID, req.Message, resp); err != nil {
			fmt.Printf("[WARNING] failed to save chat exchange: %v\n", err)
		}
	}

	json.NewEncoder(w).Encode(resp)
}

// HandleTax returns tax recommendations plus the deduction option table.
func (h *Handler) HandleTax(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Profile == nil {
		req.Profile = profile.Profile{}
	}

	set := h.svc.TaxRecommendations(r.Context(), req.Profile)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"recommendations": set.Recommendations,
		"summary":         set.Summary,
		"tax_options":     planner.TaxOptions(req.Profile),
	})
}

// HandleBenefits returns government-scheme recommendations.
func (h *Handler) HandleBenefits(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Profile == nil {
		req.Profile = profile.Profile{}
	}

	benefits := h.svc.BenefitsRecommendations(r.Context(), req.Profile)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"benefits": benefits,
	})
}

// HandleDashboard returns the rule-based dashboard rollup.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Profile == nil {
		req.Profile = profile.Profile{}
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"recommendations": planner.TaxTips(req.Profile),
		"savings":         planner.Progress(req.Profile),
		"health_score":    planner.HealthScore(req.Profile),
	})
}

// ReportExportRequest selects one report for download.
type ReportExportRequest struct {
	ReportID int             `json:"report_id"`
	Profile  profile.Profile `json:"profile"`
}

// HandleReports lists the catalogue (POST with profile) or exports one report
// when a report_id is supplied.
func (h *Handler) HandleReports(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ReportExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Profile == nil {
		req.Profile = profile.Profile{}
	}

	if req.ReportID > 0 {
		export := report.BuildExport(req.ReportID, req.Profile)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":    true,
			"excel_data": export,
			"filename":   export.Filename,
		})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"reports": report.Catalogue(req.Profile),
		"stats":   report.CatalogueStats(req.Profile),
	})
}

// HandleHistory returns the stored chat history for a user.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.history == nil {
		json.NewEncoder(w).Encode(map[string]interface{}{"exchanges": []store.Exchange{}})
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	exchanges, err := h.history.RecentExchanges(r.Context(), userID, 20)
	if err != nil {
		fmt.Printf("[WARNING] failed to load chat history: %v\n", err)
		exchanges = nil
	}
	if exchanges == nil {
		exchanges = []store.Exchange{}
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"exchanges": exchanges})
}
