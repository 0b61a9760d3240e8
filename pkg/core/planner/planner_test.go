package planner

import (
	"strings"
	"testing"

	"finwise/pkg/core/profile"
)

func TestTaxTips(t *testing.T) {
	// High income with two dependents and nothing invested trips every rule:
	// 2 (income > 10 lakh) + 1 (income > 5 lakh) + 2 (dependents) + 4
	// (investment, savings, emergency fund, retirement all short) = 9 tips.
	p := profile.Profile{"income": 1500000.0, "dependents": 2}
	tips := TaxTips(p)
	if len(tips) != 9 {
		t.Fatalf("expected 9 tips, got %d: %v", len(tips), tips)
	}
	if !strings.Contains(tips[0], "ELSS") {
		t.Errorf("first tip should push ELSS, got %q", tips[0])
	}

	// A fully funded profile gets no ratio tips and no income tips.
	funded := profile.Profile{
		"income":             400000.0,
		"dependents":         0,
		"investment_amount":  100000.0,
		"monthly_savings":    100000.0,
		"emergency_fund":     100000.0,
		"retirement_savings": 100000.0,
	}
	if tips := TaxTips(funded); len(tips) != 0 {
		t.Errorf("expected no tips for a funded low-income profile, got %v", tips)
	}
}

func TestProgress(t *testing.T) {
	got := Progress(profile.Profile{"total_savings": 50000.0, "savings_goal": 200000.0})
	if got.ProgressPercentage != 25 {
		t.Errorf("progress = %v, want 25", got.ProgressPercentage)
	}

	// Overshooting the goal is capped at 100.
	capped := Progress(profile.Profile{"total_savings": 300000.0, "savings_goal": 200000.0})
	if capped.ProgressPercentage != 100 {
		t.Errorf("capped progress = %v, want 100", capped.ProgressPercentage)
	}

	// No goal means no percentage rather than a division by zero.
	zero := Progress(profile.Profile{"total_savings": 300000.0})
	if zero.ProgressPercentage != 0 {
		t.Errorf("no-goal progress = %v, want 0", zero.ProgressPercentage)
	}
}

func TestTaxOptions(t *testing.T) {
	opts := TaxOptions(profile.Profile{"investment_amount": 100000.0})

	for _, section := range []string{"80C", "80D", "80CCD"} {
		if len(opts[section]) == 0 {
			t.Errorf("missing section %s", section)
		}
	}

	elss := opts["80C"][0]
	if elss.Invested != 100000 {
		t.Errorf("ELSS invested = %v, want 100000", elss.Invested)
	}
	// min(150000-100000, 50000) * 0.3 = 15000.
	if elss.PotentialSaving != 15000 {
		t.Errorf("ELSS potential saving = %v, want 15000", elss.PotentialSaving)
	}

	nps := opts["80CCD"][0]
	if nps.PotentialSaving != 15000 {
		t.Errorf("NPS potential saving = %v, want 15000", nps.PotentialSaving)
	}
}

func TestHealthScore(t *testing.T) {
	// Every pillar at its top band: 4 * 25 = 100.
	top := profile.Profile{
		"income":             1000000.0,
		"emergency_fund":     60000.0,
		"monthly_savings":    200000.0,
		"investment_amount":  100000.0,
		"retirement_savings": 150000.0,
	}
	if got := HealthScore(top); got != 100 {
		t.Errorf("top score = %d, want 100", got)
	}

	// Every pillar at its bottom band: 4 * 5 = 20.
	if got := HealthScore(profile.Profile{"income": 1000000.0}); got != 20 {
		t.Errorf("bottom score = %d, want 20", got)
	}

	// Middle bands: emergency 3-6%, savings 10-20%, investment 5-10%,
	// retirement 10-15% gives 4 * 15 = 60.
	mid := profile.Profile{
		"income":             1000000.0,
		"emergency_fund":     40000.0,
		"monthly_savings":    150000.0,
		"investment_amount":  70000.0,
		"retirement_savings": 120000.0,
	}
	if got := HealthScore(mid); got != 60 {
		t.Errorf("mid score = %d, want 60", got)
	}
}

func TestSummary(t *testing.T) {
	s := Summary(profile.Profile{"income": 1000000.0, "total_savings": 100000.0, "savings_goal": 200000.0})
	if !strings.Contains(s, "50.0%") {
		t.Errorf("summary should carry the progress percentage, got %q", s)
	}
}
