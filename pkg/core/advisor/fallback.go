package advisor

import (
	"fmt"
	"strings"

	"finwise/pkg/core/profile"
)

// The fallback generators are the availability guarantee: pure, deterministic
// rule-based substitutes with the exact shape the parsers produce. They run
// when the gateway call fails or parsing yields nothing.

// taxBracketPercent estimates a marginal rate from annual income, clamped to
// the 5-30% band (one percentage point per lakh of income).
func taxBracketPercent(income float64) int {
	bracket := int(income / 100000)
	if bracket < 5 {
		bracket = 5
	}
	if bracket > 30 {
		bracket = 30
	}
	return bracket
}

// Deduction caps used by the fallback arithmetic (Indian tax law limits).
const (
	cap80C = 150000
	cap80D = 25000
	capNPS = 50000
	capHRA = 50000
)

// FallbackTaxRecommendations builds the rule-based recommendation set.
// Strategies are gated on the profile; the set is never empty.
func FallbackTaxRecommendations(p profile.Profile) TaxRecommendationSet {
	income := profile.Income(p)
	age := profile.Age(p)
	dependents := profile.Int(p, "dependents", 0)
	bracket := taxBracketPercent(income)

	saving := func(cap int) int { return cap * bracket / 100 }

	var recs []Recommendation

	if income > 500000 {
		recs = append(recs, Recommendation{
			Title:           "ELSS Mutual Funds (Section 80C)",
			Description:     fmt.Sprintf("Invest up to ₹%s in ELSS funds to use your Section 80C limit with the shortest lock-in among 80C options.", profile.FormatINR(cap80C)),
			PotentialSaving: saving(cap80C),
			Priority:        "high",
			Category:        "80C",
			Action:          "Invest Now",
			Risk:            "High",
			Returns:         "12-15%",
			LockIn:          "3 years",
		})
		recs = append(recs, Recommendation{
			Title:           "Public Provident Fund (PPF)",
			Description:     fmt.Sprintf("Invest up to ₹%s per year in PPF for guaranteed, tax-free returns under Section 80C.", profile.FormatINR(cap80C)),
			PotentialSaving: saving(cap80C),
			Priority:        "medium",
			Category:        "80C",
			Action:          "Open PPF Account",
			Risk:            "Low",
			Returns:         "7-8%",
			LockIn:          "15 years",
		})
	}

	if dependents > 0 {
		recs = append(recs, Recommendation{
			Title:           "Health Insurance Premium (Section 80D)",
			Description:     fmt.Sprintf("Cover your family of %d dependents and claim up to ₹%s in premium deductions under Section 80D.", dependents, profile.FormatINR(cap80D)),
			PotentialSaving: saving(cap80D),
			Priority:        "high",
			Category:        "80D",
			Action:          "Get Quote",
			Risk:            "Low",
			Returns:         "Tax Benefit",
			LockIn:          "1 year",
		})
	}

	if age < 60 {
		recs = append(recs, Recommendation{
			Title:           "NPS Investment (Section 80CCD-1B)",
			Description:     fmt.Sprintf("Invest ₹%s in NPS for an additional deduction over and above the 80C limit.", profile.FormatINR(capNPS)),
			PotentialSaving: saving(capNPS),
			Priority:        "medium",
			Category:        "80CCD",
			Action:          "Learn More",
			Risk:            "Medium",
			Returns:         "8-10%",
			LockIn:          "Till 60",
		})
	}

	if income > 800000 {
		recs = append(recs, Recommendation{
			Title:           "House Rent Allowance (HRA)",
			Description:     "Claim HRA exemption on rent paid; keep rent receipts and your landlord's PAN for amounts above ₹1 lakh per year.",
			PotentialSaving: saving(capHRA),
			Priority:        "medium",
			Category:        "HRA",
			Action:          "Review Salary Structure",
			Risk:            "Low",
			Returns:         "Tax Benefit",
			LockIn:          "None",
		})
	}

	// The set must never be empty even for profiles that pass no gate.
	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Title:           "Standard Deductions",
			Description:     "Maximize standard deductions and start small with ELSS or PPF once income details are in place.",
			PotentialSaving: saving(50000),
			Priority:        "high",
			Category:        "Basic Savings",
			Action:          "Start Saving",
			Risk:            "Low",
			Returns:         "4-6%",
			LockIn:          "Flexible",
		})
	}

	total := 0
	for _, r := range recs {
		total += r.PotentialSaving
	}

	return TaxRecommendationSet{
		Recommendations: recs,
		Summary: TaxSummary{
			TotalPotentialSavings: total,
			OptimizationScore:     optimizationScore(len(recs)),
			CurrentTaxSaved:       0,
			TaxBracket:            fmt.Sprintf("%d%%", bracket),
		},
	}
}

// stateSchemeAllowList names the states with a dedicated state-benefits entry
// in the fallback path.
var stateSchemeAllowList = map[string]bool{
	"gujarat":     true,
	"maharashtra": true,
	"karnataka":   true,
	"tamil nadu":  true,
}

// FallbackBenefits builds the rule-based scheme list. The two universal
// insurance schemes are always included, so the result is never empty.
func FallbackBenefits(p profile.Profile) []Benefit {
	income := profile.Income(p)
	age := profile.Age(p)
	state := profile.Text(p, "state", "")

	benefits := []Benefit{
		{
			Name:              "Pradhan Mantri Jeevan Jyoti Bima Yojana (PMJJBY)",
			Description:       "₹2 lakh life insurance for ₹330/year.",
			EligibilityReason: "Available to all savings account holders age 18-50.",
			Link:              "https://www.jansuraksha.gov.in",
			Amount:            "₹2 lakh coverage",
			Category:          "Insurance",
			EstimatedTime:     "Instant",
		},
		{
			Name:              "Pradhan Mantri Suraksha Bima Yojana (PMSBY)",
			Description:       "Accidental death and disability insurance for ₹12/year.",
			EligibilityReason: "Available to all savings account holders age 18-70.",
			Link:              "https://www.jansuraksha.gov.in",
			Amount:            "₹2 lakh coverage",
			Category:          "Insurance",
			EstimatedTime:     "Instant",
		},
	}

	if income < 1200000 {
		benefits = append(benefits, Benefit{
			Name:              "PM-KISAN",
			Description:       "₹6,000/year income support for eligible farmers.",
			EligibilityReason: "Income below ₹12 lakh.",
			Link:              "https://pmkisan.gov.in",
			Amount:            "₹6,000/year",
			Category:          "Agriculture",
			EstimatedTime:     "15-30 days",
		})
	}

	if income < 500000 {
		benefits = append(benefits, Benefit{
			Name:              "Ayushman Bharat",
			Description:       "₹5 lakh health insurance for low-income families.",
			EligibilityReason: "Income below ₹5 lakh.",
			Link:              "https://pmjay.gov.in",
			Amount:            "₹5 lakh/year",
			Category:          "Health",
			EstimatedTime:     "Instant",
		})
	}

	if age >= 18 && age <= 40 {
		benefits = append(benefits, Benefit{
			Name:              "Atal Pension Yojana (APY)",
			Description:       "Guaranteed pension scheme for unorganized sector workers.",
			EligibilityReason: "Age between 18-40 years.",
			Link:              "https://npscra.nsdl.co.in",
			Amount:            "₹1,000-5,000/month",
			Category:          "Pension",
			EstimatedTime:     "15-30 days",
		})
	}

	if age >= 60 {
		benefits = append(benefits, Benefit{
			Name:              "Senior Citizen Savings Scheme (SCSS)",
			Description:       "High interest savings for seniors with 8.2% interest rate.",
			EligibilityReason: "Age 60 or above.",
			Link:              "https://www.nsiindia.gov.in",
			Amount:            "8.2% interest",
			Category:          "Savings",
			EstimatedTime:     "7-15 days",
		})
	}

	if stateSchemeAllowList[strings.ToLower(state)] {
		benefits = append(benefits, Benefit{
			Name:              state + " State Benefits",
			Description:       fmt.Sprintf("Additional welfare schemes offered by the %s state government.", state),
			EligibilityReason: fmt.Sprintf("Resident of %s.", state),
			Link:              "https://www.india.gov.in/topics/benefits",
			Amount:            "Varies",
			Category:          "State Schemes",
			EstimatedTime:     "15-45 days",
		})
	}

	return benefits
}

// FallbackChatResponse builds a pre-written, profile-interpolated answer that
// follows the same five-section template the prompt mandates. The message is
// matched against four topic buckets; the first match wins.
func FallbackChatResponse(message string, p profile.Profile) ChatResponse {
	income := profile.Income(p)
	age := profile.Age(p)
	dependents := profile.Int(p, "dependents", 0)
	msg := strings.ToLower(message)

	var sections map[string]string
	switch {
	case strings.Contains(msg, "tax"):
		bracket := taxBracketPercent(income)
		sections = map[string]string{
			SectionMainAdvice:      fmt.Sprintf("With ₹%s annual income you are in roughly the %d%% bracket; fill your Section 80C limit first, then 80D and NPS.", profile.FormatINR(income), bracket),
			SectionSpecificNumbers: fmt.Sprintf("₹150,000 in ELSS or PPF saves about ₹%s; ₹50,000 in NPS under 80CCD(1B) saves another ₹%s.", profile.FormatINR(float64(cap80C*bracket/100)), profile.FormatINR(float64(capNPS*bracket/100))),
			SectionActionSteps:     "1. Max out Section 80C with ELSS or PPF. 2. Buy family health insurance for the 80D deduction. 3. Open an NPS account for the extra ₹50,000 deduction.",
			SectionTimeline:        "Complete 80C investments before March 31; set up monthly contributions now to avoid a year-end rush.",
			SectionRisks:           "ELSS carries market risk with a 3-year lock-in; PPF is safe but locked for 15 years.",
		}
	case strings.Contains(msg, "invest"):
		sip := income / 12 * 0.2
		sections = map[string]string{
			SectionMainAdvice:      fmt.Sprintf("At age %d, build a diversified portfolio: roughly 70%% equity index funds, 20%% debt, 10%% cash.", age),
			SectionSpecificNumbers: fmt.Sprintf("Invest about ₹%s per month (20%% of your ₹%s monthly income), split 40/30/20/10 across large, mid and small cap funds and debt.", profile.FormatINR(sip), profile.FormatINR(income/12)),
			SectionActionSteps:     "1. Open a demat account. 2. Start a monthly SIP in a NIFTY 50 index fund. 3. Add mid and small cap allocations once the habit holds.",
			SectionTimeline:        "Start the first SIP within 30 days; rebalance the portfolio once a year.",
			SectionRisks:           "Equity can fall sharply in the short term; only invest money you will not need for 5+ years.",
		}
	case strings.Contains(msg, "saving") || strings.Contains(msg, "emergency"):
		emergency := income * 0.5
		sections = map[string]string{
			SectionMainAdvice:      fmt.Sprintf("Follow the 50/30/20 rule on your ₹%s income: 50%% needs, 30%% wants, 20%% savings, and build the emergency fund first.", profile.FormatINR(income)),
			SectionSpecificNumbers: fmt.Sprintf("Target an emergency fund of about ₹%s (6 months of expenses) and save ₹%s per month to reach it within a year.", profile.FormatINR(emergency), profile.FormatINR(emergency/12)),
			SectionActionSteps:     "1. Open a separate high-yield savings account. 2. Automate a transfer on salary day. 3. Park the fund in liquid mutual funds once it exceeds two months of expenses.",
			SectionTimeline:        "Automate transfers this week; the fund should be fully built within 12 months.",
			SectionRisks:           "Keeping the fund in equity defeats its purpose; liquidity matters more than returns here.",
		}
	default:
		sections = map[string]string{
			SectionMainAdvice:      fmt.Sprintf("Based on your profile (₹%s income, age %d, %d dependents) I can help with taxes, investments, savings, debt or retirement planning.", profile.FormatINR(income), age, dependents),
			SectionSpecificNumbers: fmt.Sprintf("A common starting point: save 20%% of income (₹%s per month) and keep 6 months of expenses liquid.", profile.FormatINR(income/12*0.2)),
			SectionActionSteps:     "1. Ask a specific question about tax, investing, saving or retirement. 2. Keep your profile details up to date for sharper numbers.",
			SectionTimeline:        "Financial plans work best reviewed quarterly.",
			SectionRisks:           "Generic advice cannot account for your full situation; treat these numbers as starting points.",
		}
	}

	formatted := formatSections(sections)
	return ChatResponse{
		Response:    formatted,
		Suggestions: Suggestions(message),
		Confidence:  0.8,
		StructuredData: StructuredData{
			FormattedResponse: formatted,
			Sections:          sections,
			OriginalResponse:  formatted,
		},
	}
}
