package advisor

import (
	"reflect"
	"strings"
	"testing"

	"finwise/pkg/core/profile"
)

func TestTaxBracketPercent(t *testing.T) {
	cases := []struct {
		income float64
		want   int
	}{
		{0, 5},        // clamped low
		{300000, 5},   // 3 -> 5
		{500000, 5},   // boundary
		{1200000, 12}, // 12 lakh -> 12%
		{2500000, 25},
		{4000000, 30}, // clamped high
	}
	for _, c := range cases {
		if got := taxBracketPercent(c.income); got != c.want {
			t.Errorf("taxBracketPercent(%.0f) = %d, want %d", c.income, got, c.want)
		}
	}
}

func TestFallbackTaxRecommendations(t *testing.T) {
	p := profile.Profile{"income": 1200000.0, "age": 45, "dependents": 2}
	set := FallbackTaxRecommendations(p)

	// income 12,00,000 passes the 80C gate (>5 lakh) and the HRA gate
	// (>8 lakh); 2 dependents passes 80D; age 45 passes NPS. That is
	// ELSS + PPF + 80D + NPS + HRA = 5 strategies.
	if len(set.Recommendations) != 5 {
		t.Fatalf("expected 5 recommendations, got %d", len(set.Recommendations))
	}

	titles := make(map[string]Recommendation)
	for _, r := range set.Recommendations {
		titles[r.Title] = r
	}
	for _, want := range []string{
		"ELSS Mutual Funds (Section 80C)",
		"Public Provident Fund (PPF)",
		"Health Insurance Premium (Section 80D)",
		"NPS Investment (Section 80CCD-1B)",
		"House Rent Allowance (HRA)",
	} {
		if _, ok := titles[want]; !ok {
			t.Errorf("missing strategy %q", want)
		}
	}

	// Bracket 12%: 80C saves 150000*12/100 = 18000, 80D 25000*12/100 = 3000,
	// NPS and HRA 50000*12/100 = 6000 each.
	if got := titles["ELSS Mutual Funds (Section 80C)"].PotentialSaving; got != 18000 {
		t.Errorf("ELSS saving = %d, want 18000", got)
	}
	if got := titles["Health Insurance Premium (Section 80D)"].PotentialSaving; got != 3000 {
		t.Errorf("80D saving = %d, want 3000", got)
	}

	// 18000 + 18000 + 3000 + 6000 + 6000 = 51000.
	if set.Summary.TotalPotentialSavings != 51000 {
		t.Errorf("total = %d, want 51000", set.Summary.TotalPotentialSavings)
	}
	if set.Summary.TaxBracket != "12%" {
		t.Errorf("bracket = %q, want 12%%", set.Summary.TaxBracket)
	}
	if set.Summary.OptimizationScore != 90 {
		// min(60 + 5*6, 90) = 90.
		t.Errorf("score = %d, want 90", set.Summary.OptimizationScore)
	}
}

func TestFallbackTaxRecommendationsNeverEmpty(t *testing.T) {
	// A profile passing no gate: income 0, age 70, no dependents.
	set := FallbackTaxRecommendations(profile.Profile{"income": 0, "age": 70})
	if len(set.Recommendations) != 1 {
		t.Fatalf("expected the single catch-all entry, got %d", len(set.Recommendations))
	}
	if set.Recommendations[0].Title != "Standard Deductions" {
		t.Errorf("unexpected catch-all title %q", set.Recommendations[0].Title)
	}
	if set.Recommendations[0].PotentialSaving == 0 {
		t.Error("catch-all saving should still be positive")
	}
}

func TestFallbackTaxRecommendationsDeterministic(t *testing.T) {
	p := profile.Profile{"income": 900000.0, "age": 30, "dependents": 1}
	a := FallbackTaxRecommendations(p)
	b := FallbackTaxRecommendations(p)
	if !reflect.DeepEqual(a, b) {
		t.Error("fallback must be deterministic for identical input")
	}
}

func TestFallbackBenefits(t *testing.T) {
	p := profile.Profile{"income": 400000.0, "age": 30, "state": "Gujarat"}
	benefits := FallbackBenefits(p)

	names := make(map[string]Benefit)
	for _, b := range benefits {
		names[b.Name] = b
	}

	// The two universal insurance schemes are unconditional.
	if _, ok := names["Pradhan Mantri Jeevan Jyoti Bima Yojana (PMJJBY)"]; !ok {
		t.Error("PMJJBY must always be present")
	}
	if _, ok := names["Pradhan Mantri Suraksha Bima Yojana (PMSBY)"]; !ok {
		t.Error("PMSBY must always be present")
	}

	// income 4 lakh is under both the PM-KISAN and Ayushman cutoffs,
	// age 30 is in the APY window, Gujarat is an allow-listed state.
	if _, ok := names["PM-KISAN"]; !ok {
		t.Error("expected PM-KISAN for income below 12 lakh")
	}
	if _, ok := names["Ayushman Bharat"]; !ok {
		t.Error("expected Ayushman Bharat for income below 5 lakh")
	}
	if _, ok := names["Atal Pension Yojana (APY)"]; !ok {
		t.Error("expected APY for age 30")
	}
	state, ok := names["Gujarat State Benefits"]
	if !ok {
		t.Fatal("expected a Gujarat state entry")
	}
	if !strings.Contains(state.EligibilityReason, "Gujarat") {
		t.Errorf("state entry should mention the state, got %q", state.EligibilityReason)
	}
	if _, ok := names["Senior Citizen Savings Scheme (SCSS)"]; ok {
		t.Error("SCSS must not appear for age 30")
	}
}

func TestFallbackBenefitsSenior(t *testing.T) {
	benefits := FallbackBenefits(profile.Profile{"income": 2000000.0, "age": 65, "state": "Kerala"})

	var names []string
	for _, b := range benefits {
		names = append(names, b.Name)
	}
	joined := strings.Join(names, "|")

	if !strings.Contains(joined, "Senior Citizen Savings Scheme") {
		t.Error("expected SCSS for age 65")
	}
	if strings.Contains(joined, "PM-KISAN") {
		t.Error("PM-KISAN must not appear for income 20 lakh")
	}
	if strings.Contains(joined, "Atal Pension") {
		t.Error("APY must not appear for age 65")
	}
	if strings.Contains(joined, "State Benefits") {
		t.Error("Kerala is not on the state scheme list")
	}
	// Still never empty: the two insurance schemes remain.
	if len(benefits) < 2 {
		t.Errorf("expected at least the universal schemes, got %d entries", len(benefits))
	}
}

func TestFallbackChatResponse(t *testing.T) {
	p := profile.Profile{"income": 1200000.0, "age": 35, "dependents": 1}

	resp := FallbackChatResponse("How do I reduce my tax bill?", p)
	if resp.Confidence != 0.8 {
		t.Errorf("fallback confidence = %v, want 0.8", resp.Confidence)
	}
	if len(resp.Suggestions) != 6 {
		t.Errorf("expected 6 suggestions, got %d", len(resp.Suggestions))
	}
	if !strings.Contains(resp.StructuredData.Sections[SectionMainAdvice], "80C") {
		t.Errorf("tax bucket advice should mention 80C, got %q", resp.StructuredData.Sections[SectionMainAdvice])
	}
	// All five template sections must be present.
	if len(resp.StructuredData.Sections) != 5 {
		t.Errorf("expected 5 sections, got %d", len(resp.StructuredData.Sections))
	}
	for _, m := range chatSectionMarkers {
		if !strings.Contains(resp.Response, m.marker) {
			t.Errorf("response missing section marker %s", m.marker)
		}
	}

	// Bucket routing.
	invest := FallbackChatResponse("Where should I invest?", p)
	if !strings.Contains(invest.StructuredData.Sections[SectionMainAdvice], "portfolio") {
		t.Errorf("invest bucket expected, got %q", invest.StructuredData.Sections[SectionMainAdvice])
	}
	saving := FallbackChatResponse("Help me build an emergency fund", p)
	if !strings.Contains(saving.StructuredData.Sections[SectionMainAdvice], "50/30/20") {
		t.Errorf("saving bucket expected, got %q", saving.StructuredData.Sections[SectionMainAdvice])
	}
	generic := FallbackChatResponse("Hello there", p)
	if !strings.Contains(generic.StructuredData.Sections[SectionMainAdvice], "I can help") {
		t.Errorf("generic bucket expected, got %q", generic.StructuredData.Sections[SectionMainAdvice])
	}
}
