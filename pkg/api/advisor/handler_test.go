package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	coreadvisor "finwise/pkg/core/advisor"
)

// downGenerator simulates an unreachable LLM provider; every endpoint must
// still answer 200 from the fallback path.
type downGenerator struct{}

func (downGenerator) ExecutePrompt(ctx context.Context, agentType, rawPrompt, rawSystemPrompt string, options map[string]interface{}) (string, error) {
	return "", errors.New("provider unreachable")
}

func newTestHandler() *Handler {
	return NewHandler(coreadvisor.NewService(downGenerator{}), nil)
}

func TestHandleChat(t *testing.T) {
	h := newTestHandler()

	body := `{"message": "How do I save tax?", "profile": {"income": 1000000, "age": 32}}`
	req := httptest.NewRequest("POST", "/api/advisor/chat", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.HandleChat(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header = %q", got)
	}

	var resp coreadvisor.ChatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Response == "" {
		t.Error("response text must never be empty")
	}
	if resp.Confidence != 0.8 {
		t.Errorf("a down provider must serve fallback confidence 0.8, got %v", resp.Confidence)
	}
	if len(resp.Suggestions) != 6 {
		t.Errorf("expected 6 suggestions, got %d", len(resp.Suggestions))
	}
}

func TestHandleChatValidation(t *testing.T) {
	h := newTestHandler()

	// Missing message.
	req := httptest.NewRequest("POST", "/api/advisor/chat", strings.NewReader(`{"profile": {}}`))
	w := httptest.NewRecorder()
	h.HandleChat(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty message: status = %d, want 400", w.Code)
	}

	// Malformed body.
	req = httptest.NewRequest("POST", "/api/advisor/chat", strings.NewReader(`{not json`))
	w = httptest.NewRecorder()
	h.HandleChat(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad body: status = %d, want 400", w.Code)
	}

	// Wrong method.
	req = httptest.NewRequest("GET", "/api/advisor/chat", nil)
	w = httptest.NewRecorder()
	h.HandleChat(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET: status = %d, want 405", w.Code)
	}

	// Preflight.
	req = httptest.NewRequest("OPTIONS", "/api/advisor/chat", nil)
	w = httptest.NewRecorder()
	h.HandleChat(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("OPTIONS: status = %d, want 200", w.Code)
	}
}

func TestHandleTax(t *testing.T) {
	h := newTestHandler()

	body := `{"profile": {"income": 1200000, "age": 45, "dependents": 2}}`
	req := httptest.NewRequest("POST", "/api/advisor/tax", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.HandleTax(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Recommendations []coreadvisor.Recommendation `json:"recommendations"`
		Summary         coreadvisor.TaxSummary       `json:"summary"`
		TaxOptions      map[string][]json.RawMessage `json:"tax_options"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Recommendations) == 0 {
		t.Error("recommendations must never be empty")
	}
	if resp.Summary.TaxBracket != "12%" {
		t.Errorf("bracket = %q, want 12%%", resp.Summary.TaxBracket)
	}
	for _, section := range []string{"80C", "80D", "80CCD"} {
		if len(resp.TaxOptions[section]) == 0 {
			t.Errorf("tax_options missing section %s", section)
		}
	}
}

func TestHandleBenefits(t *testing.T) {
	h := newTestHandler()

	body := `{"profile": {"income": 400000, "age": 65, "state": "Maharashtra"}}`
	req := httptest.NewRequest("POST", "/api/advisor/benefits", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.HandleBenefits(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Benefits []coreadvisor.Benefit `json:"benefits"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Benefits) == 0 {
		t.Fatal("benefits must never be empty")
	}
	var haveSCSS bool
	for _, b := range resp.Benefits {
		if strings.Contains(b.Name, "Senior Citizen") {
			haveSCSS = true
		}
	}
	if !haveSCSS {
		t.Error("expected SCSS for a 65-year-old profile")
	}
}

func TestHandleDashboard(t *testing.T) {
	h := newTestHandler()

	body := `{"profile": {"income": 1500000, "dependents": 2}}`
	req := httptest.NewRequest("POST", "/api/advisor/dashboard", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.HandleDashboard(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Recommendations []string `json:"recommendations"`
		HealthScore     int      `json:"health_score"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Recommendations) == 0 {
		t.Error("expected dashboard tips for an unfunded profile")
	}
	if resp.HealthScore < 0 || resp.HealthScore > 100 {
		t.Errorf("health score out of range: %d", resp.HealthScore)
	}
}

func TestHandleReports(t *testing.T) {
	h := newTestHandler()

	// Catalogue listing.
	req := httptest.NewRequest("POST", "/api/advisor/reports", strings.NewReader(`{"profile": {"income": 1000000}}`))
	w := httptest.NewRecorder()
	h.HandleReports(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var list struct {
		Reports []json.RawMessage `json:"reports"`
	}
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("invalid catalogue body: %v", err)
	}
	if len(list.Reports) != 6 {
		t.Errorf("expected 6 reports, got %d", len(list.Reports))
	}

	// Export.
	req = httptest.NewRequest("POST", "/api/advisor/reports", strings.NewReader(`{"report_id": 1, "profile": {"income": 1000000}}`))
	w = httptest.NewRecorder()
	h.HandleReports(w, req)
	var export struct {
		Success  bool   `json:"success"`
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(w.Body).Decode(&export); err != nil {
		t.Fatalf("invalid export body: %v", err)
	}
	if !export.Success || export.Filename == "" {
		t.Errorf("export body incomplete: %+v", export)
	}
}

func TestHandleHistoryWithoutStore(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest("GET", "/api/advisor/history?user_id=u1", nil)
	w := httptest.NewRecorder()
	h.HandleHistory(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Exchanges []json.RawMessage `json:"exchanges"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid history body: %v", err)
	}
	if len(resp.Exchanges) != 0 {
		t.Errorf("storeless history must be empty, got %d entries", len(resp.Exchanges))
	}
}
