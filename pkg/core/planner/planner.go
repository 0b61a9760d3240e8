// Package planner holds the purely rule-based planning helpers that back the
// dashboard and reports surfaces: quick tax tips, savings progress, the
// deduction option table and the financial health score. Everything here is
// deterministic and derived only from the profile; no generation is involved.
package planner

import (
	"fmt"

	"finwise/pkg/core/profile"
)

// TaxTips returns short rule-based pointers for the dashboard.
func TaxTips(p profile.Profile) []string {
	income := profile.Income(p)
	dependents := profile.Int(p, "dependents", 0)
	investment := profile.Number(p, "investment_amount", 0)
	monthlySavings := profile.Number(p, "monthly_savings", 0)
	emergencyFund := profile.Number(p, "emergency_fund", 0)
	retirement := profile.Number(p, "retirement_savings", 0)

	var tips []string

	if income > 1000000 {
		tips = append(tips, "Invest in ELSS for tax deduction under 80C.")
		tips = append(tips, "Consider NPS for additional tax benefits.")
	}
	if income > 500000 {
		tips = append(tips, "Maximize 80C deductions with PPF and ELSS.")
	}
	if dependents >= 2 {
		tips = append(tips, "Claim deductions for dependent care under 80D.")
		tips = append(tips, "Consider health insurance for family tax benefits.")
	}
	if investment < income*0.1 {
		tips = append(tips, "Increase investment allocation to 10% of income.")
	}
	if monthlySavings < income*0.2 {
		tips = append(tips, "Aim to save at least 20% of your monthly income.")
	}
	if emergencyFund < income*0.06 {
		tips = append(tips, "Build emergency fund equivalent to 6 months of income.")
	}
	if retirement < income*0.15 {
		tips = append(tips, "Allocate 15% of income for retirement planning.")
	}

	return tips
}

// SavingsProgress tracks the user against their savings goal.
type SavingsProgress struct {
	TotalSavings       float64 `json:"total_savings"`
	MonthlySavings     float64 `json:"monthly_savings"`
	SavingsGoal        float64 `json:"savings_goal"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// Progress computes savings progress; the percentage is capped at 100.
func Progress(p profile.Profile) SavingsProgress {
	total := profile.Number(p, "total_savings", 0)
	goal := profile.Number(p, "savings_goal", 0)

	var pct float64
	if goal > 0 {
		pct = total / goal * 100
		if pct > 100 {
			pct = 100
		}
	}

	return SavingsProgress{
		TotalSavings:       total,
		MonthlySavings:     profile.Number(p, "monthly_savings", 0),
		SavingsGoal:        goal,
		ProgressPercentage: pct,
	}
}

// TaxOption is one row of the deduction option table.
type TaxOption struct {
	Name            string  `json:"name"`
	Limit           float64 `json:"limit"`
	Invested        float64 `json:"invested"`
	Returns         string  `json:"returns"`
	Risk            string  `json:"risk"`
	LockIn          string  `json:"lockIn"`
	PotentialSaving float64 `json:"potential_saving"`
}

// TaxOptions builds the 80C / 80D / 80CCD option table. Savings assume the
// 30% bracket, matching the dashboard's presentation.
func TaxOptions(p profile.Profile) map[string][]TaxOption {
	investment := profile.Number(p, "investment_amount", 0)
	totalSavings := profile.Number(p, "total_savings", 0)
	deductions := profile.Number(p, "tax_deductions", 0)

	return map[string][]TaxOption{
		"80C": {
			{
				Name:            "ELSS Mutual Funds",
				Limit:           150000,
				Invested:        min(investment, 150000),
				Returns:         "12-15%",
				Risk:            "High",
				LockIn:          "3 years",
				PotentialSaving: min(150000-investment, 50000) * 0.3,
			},
			{
				Name:            "PPF",
				Limit:           150000,
				Invested:        min(totalSavings*0.3, 150000),
				Returns:         "7-8%",
				Risk:            "Low",
				LockIn:          "15 years",
				PotentialSaving: min(150000-totalSavings*0.3, 50000) * 0.3,
			},
			{
				Name:            "NSC",
				Limit:           100000,
				Invested:        min(totalSavings*0.2, 100000),
				Returns:         "6-7%",
				Risk:            "Low",
				LockIn:          "5 years",
				PotentialSaving: min(100000-totalSavings*0.2, 30000) * 0.3,
			},
		},
		"80D": {
			{
				Name:            "Health Insurance Premium",
				Limit:           25000,
				Invested:        min(deductions, 25000),
				Returns:         "Tax Benefit",
				Risk:            "Low",
				LockIn:          "1 year",
				PotentialSaving: max(25000-deductions, 0) * 0.3,
			},
			{
				Name:            "Parents Health Insurance",
				Limit:           50000,
				Invested:        0,
				Returns:         "Tax Benefit",
				Risk:            "Low",
				LockIn:          "1 year",
				PotentialSaving: 50000 * 0.3,
			},
		},
		"80CCD": {
			{
				Name:            "NPS Investment",
				Limit:           50000,
				Invested:        0,
				Returns:         "8-10%",
				Risk:            "Medium",
				LockIn:          "Till 60",
				PotentialSaving: 50000 * 0.3,
			},
		},
	}
}

// HealthScore rates the profile 0-100 across four equally weighted pillars:
// emergency fund, savings rate, investment allocation, retirement planning.
func HealthScore(p profile.Profile) int {
	income := profile.Income(p)
	score := 0

	// Emergency fund (25 points)
	emergencyFund := profile.Number(p, "emergency_fund", 0)
	switch {
	case emergencyFund >= income*0.06:
		score += 25
	case emergencyFund >= income*0.03:
		score += 15
	default:
		score += 5
	}

	// Savings rate (25 points)
	var savingsRate float64
	if income > 0 {
		savingsRate = profile.Number(p, "monthly_savings", 0) / income * 100
	}
	switch {
	case savingsRate >= 20:
		score += 25
	case savingsRate >= 10:
		score += 15
	default:
		score += 5
	}

	// Investment allocation (25 points)
	investment := profile.Number(p, "investment_amount", 0)
	switch {
	case investment >= income*0.1:
		score += 25
	case investment >= income*0.05:
		score += 15
	default:
		score += 5
	}

	// Retirement planning (25 points)
	retirement := profile.Number(p, "retirement_savings", 0)
	switch {
	case retirement >= income*0.15:
		score += 25
	case retirement >= income*0.1:
		score += 15
	default:
		score += 5
	}

	return score
}

// Summary is a one-line formatted rollup used by the dashboard endpoint.
func Summary(p profile.Profile) string {
	return fmt.Sprintf("Health score %d/100, savings progress %.1f%%",
		HealthScore(p), Progress(p).ProgressPercentage)
}
