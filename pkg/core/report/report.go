// Package report generates the downloadable report catalogue: per-profile
// report summaries plus sheet-style export rows. Reports are value objects
// rebuilt from the profile on every call; nothing is stored.
package report

import (
	"fmt"

	"finwise/pkg/core/planner"
	"finwise/pkg/core/profile"
)

// Report is one entry in the report catalogue.
type Report struct {
	ID          int                    `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Type        string                 `json:"type"` // tax, investment, benefits
	Format      string                 `json:"format"`
	Status      string                 `json:"status"`
	Data        map[string]interface{} `json:"data"`
}

// Sheet is a named grid of export rows.
type Sheet struct {
	Name string     `json:"name"`
	Rows [][]string `json:"data"`
}

// Export bundles the sheets for one downloaded report.
type Export struct {
	Filename string  `json:"filename"`
	Sheets   []Sheet `json:"sheets"`
}

// Stats summarizes the catalogue for the reports landing page.
type Stats struct {
	TotalReports int    `json:"total_reports"`
	TaxSavings   string `json:"tax_savings"`
}

// Catalogue builds the fixed set of six per-profile reports.
func Catalogue(p profile.Profile) []Report {
	income := profile.Income(p)
	deductions := profile.Number(p, "tax_deductions", 0)
	investment := profile.Number(p, "investment_amount", 0)

	return []Report{
		{
			ID:          1,
			Title:       "Annual Tax Summary Report",
			Description: "Comprehensive overview of your tax savings and deductions for the financial year",
			Type:        "tax",
			Format:      "PDF",
			Status:      "ready",
			Data: map[string]interface{}{
				"total_income":      income,
				"tax_deductions":    deductions,
				"potential_savings": deductions * 0.3,
				"investment_amount": investment,
			},
		},
		{
			ID:          2,
			Title:       "Investment Portfolio Analysis",
			Description: "Detailed analysis of your investment performance and asset allocation",
			Type:        "investment",
			Format:      "PDF",
			Status:      "ready",
			Data: map[string]interface{}{
				"total_investment": investment,
				"monthly_savings":  profile.Number(p, "monthly_savings", 0),
				"savings_goal":     profile.Number(p, "savings_goal", 0),
			},
		},
		{
			ID:          3,
			Title:       "Government Benefits Report",
			Description: "Summary of all government benefits you're eligible for",
			Type:        "benefits",
			Format:      "PDF",
			Status:      "ready",
			Data: map[string]interface{}{
				"age":        profile.Age(p),
				"income":     income,
				"dependents": profile.Int(p, "dependents", 0),
			},
		},
		{
			ID:          4,
			Title:       "Financial Health Assessment",
			Description: "Rule-based financial health assessment and recommendations",
			Type:        "investment",
			Format:      "PDF",
			Status:      "ready",
			Data: map[string]interface{}{
				"emergency_fund":     profile.Number(p, "emergency_fund", 0),
				"retirement_savings": profile.Number(p, "retirement_savings", 0),
				"health_score":       planner.HealthScore(p),
			},
		},
		{
			ID:          5,
			Title:       "Savings Progress Report",
			Description: "Track your savings progress and goal achievement",
			Type:        "investment",
			Format:      "Excel",
			Status:      "ready",
			Data: map[string]interface{}{
				"current_savings":     profile.Number(p, "total_savings", 0),
				"monthly_savings":     profile.Number(p, "monthly_savings", 0),
				"savings_goal":        profile.Number(p, "savings_goal", 0),
				"progress_percentage": planner.Progress(p).ProgressPercentage,
			},
		},
		{
			ID:          6,
			Title:       "Tax Deduction Breakdown",
			Description: "Detailed breakdown of all tax deductions under various sections",
			Type:        "tax",
			Format:      "Excel",
			Status:      "ready",
			Data: map[string]interface{}{
				"80c_deductions":   min(investment, 150000),
				"80d_deductions":   deductions,
				"total_deductions": deductions,
				"tax_saved":        deductions * 0.3,
			},
		},
	}
}

// CatalogueStats summarizes the catalogue.
func CatalogueStats(p profile.Profile) Stats {
	deductions := profile.Number(p, "tax_deductions", 0)
	return Stats{
		TotalReports: 6,
		TaxSavings:   "₹" + profile.FormatINR(deductions*0.3),
	}
}

// BuildExport renders one report's sheet rows for download. Unknown IDs fall
// back to the financial health sheet so the endpoint stays total.
func BuildExport(id int, p profile.Profile) Export {
	income := profile.Income(p)
	deductions := profile.Number(p, "tax_deductions", 0)

	switch id {
	case 1, 6:
		return Export{
			Filename: "Annual_Tax_Summary_Report.xlsx",
			Sheets: []Sheet{{
				Name: "Tax Summary",
				Rows: [][]string{
					{"Tax Summary Report", ""},
					{"", ""},
					{"Total Income", "₹" + profile.FormatINR(income)},
					{"Tax Deductions", "₹" + profile.FormatINR(deductions)},
					{"Potential Tax Savings", "₹" + profile.FormatINR(deductions*0.3)},
					{"Investment Amount", "₹" + profile.FormatINR(profile.Number(p, "investment_amount", 0))},
				},
			}},
		}
	case 2, 5:
		progress := planner.Progress(p)
		return Export{
			Filename: "Investment_Portfolio_Analysis.xlsx",
			Sheets: []Sheet{{
				Name: "Investment Analysis",
				Rows: [][]string{
					{"Investment Portfolio Analysis", ""},
					{"", ""},
					{"Total Investment", "₹" + profile.FormatINR(profile.Number(p, "investment_amount", 0))},
					{"Monthly Savings", "₹" + profile.FormatINR(progress.MonthlySavings)},
					{"Savings Goal", "₹" + profile.FormatINR(progress.SavingsGoal)},
					{"Progress Percentage", fmt.Sprintf("%.1f%%", progress.ProgressPercentage)},
				},
			}},
		}
	default:
		return Export{
			Filename: "Financial_Health_Assessment.xlsx",
			Sheets: []Sheet{{
				Name: "Financial Health",
				Rows: [][]string{
					{"Financial Health Assessment", ""},
					{"", ""},
					{"Emergency Fund", "₹" + profile.FormatINR(profile.Number(p, "emergency_fund", 0))},
					{"Retirement Savings", "₹" + profile.FormatINR(profile.Number(p, "retirement_savings", 0))},
					{"Total Savings", "₹" + profile.FormatINR(profile.Number(p, "total_savings", 0))},
					{"Financial Health Score", fmt.Sprintf("%d/100", planner.HealthScore(p))},
				},
			}},
		}
	}
}
