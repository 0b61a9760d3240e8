package advisor

import (
	"fmt"

	"finwise/pkg/core/profile"
)

// The downstream parsers are pattern-based, not grammatical, so the prompts
// are the primary reliability mechanism: each one states a persona, lays out
// the user's profile, and mandates an exact bold-labeled template. The chat
// prompt also embeds a fully worked numeric example to anchor the output
// format and units.

// BuildChatPrompt builds the instruction block for a conversational question.
func BuildChatPrompt(message string, p profile.Profile) string {
	income := profile.Income(p)
	age := profile.Age(p)
	investment := profile.Number(p, "investment_amount", 0)
	dependents := profile.Int(p, "dependents", 0)
	occupation := profile.Text(p, "occupation", "")
	city := profile.Text(p, "city", "")

	monthly := income / 12
	sip := monthly * 0.2

	return fmt.Sprintf(`You are an expert Indian financial advisor with 20+ years of experience. You give clear, specific, numbers-first advice grounded in Indian financial products and tax law.

User Profile:
- Income: ₹%s per year (₹%s per month)
- Age: %d years old
- Current Investments: ₹%s
- Dependents: %d
- Occupation: %s
- Location: %s

User Question: %s

You MUST answer using EXACTLY this template, keeping the bold labels verbatim:

**Main Advice:** One or two sentences of direct advice for this question.
**Specific Numbers:** Concrete rupee amounts and percentages derived from the profile above.
**Action Steps:** Numbered, immediately actionable steps.
**Timeline:** When to do each step and when results should show.
**Risks & Considerations:** The main risks and caveats.

Worked example for a profile with ₹%s yearly income:
**Main Advice:** Start a monthly SIP and fill your Section 80C limit before March.
**Specific Numbers:** Invest ₹%s per month (20%% of your ₹%s monthly income); put ₹150,000 into ELSS to save up to ₹46,800 in tax.
**Action Steps:** 1. Open a demat account. 2. Set up a ₹%s monthly SIP. 3. Review allocation every quarter.
**Timeline:** Set up accounts this week; first SIP within 30 days; review at 90 days.
**Risks & Considerations:** Equity funds can lose value in the short term; keep 6 months of expenses liquid first.

All amounts in Indian Rupees. Do not add sections beyond the template.`,
		profile.FormatINR(income), profile.FormatINR(monthly), age,
		profile.FormatINR(investment), dependents, occupation, city, message,
		profile.FormatINR(income), profile.FormatINR(sip),
		profile.FormatINR(monthly), profile.FormatINR(sip))
}

// BuildTaxPrompt builds the instruction block for tax-saving strategies.
func BuildTaxPrompt(p profile.Profile) string {
	income := profile.Income(p)
	age := profile.Age(p)
	dependents := profile.Int(p, "dependents", 0)
	investment := profile.Number(p, "investment_amount", 0)
	occupation := profile.Text(p, "occupation", "")
	maritalStatus := profile.Text(p, "marital_status", "")

	return fmt.Sprintf(`You are a chartered accountant specializing in Indian tax law. Recommend specific tax-saving strategies for this profile:

Profile:
- Income: ₹%s per year
- Age: %d years old
- Dependents: %d
- Current Investments: ₹%s
- Occupation: %s
- Marital Status: %s

Give 3-5 strategies. For EACH strategy you MUST use EXACTLY this repeating block, keeping the bold labels verbatim:

**Strategy:** Name of the strategy and its section (e.g. ELSS Mutual Funds, Section 80C)
**Amount:** Rupee amount to invest, e.g. ₹150,000
**Savings:** Rupee amount of tax saved, e.g. ₹45,000
**Implementation:** How to implement it, step by step
**Priority:** High, Medium or Low
**Risk Level:** Low, Medium or High
**Lock-in Period:** e.g. 3 years, 15 years, none

Focus on Indian instruments: ELSS mutual funds, PPF, NPS (Section 80CCD), health insurance premiums (Section 80D), HRA, home loan interest, education loan interest. All amounts in Indian Rupees with comma separators.`,
		profile.FormatINR(income), age, dependents,
		profile.FormatINR(investment), occupation, maritalStatus)
}

// BuildBenefitsPrompt builds the instruction block for government schemes.
func BuildBenefitsPrompt(p profile.Profile) string {
	income := profile.Income(p)
	age := profile.Age(p)
	occupation := profile.Text(p, "occupation", "")
	city := profile.Text(p, "city", "")
	state := profile.Text(p, "state", "")
	dependents := profile.Int(p, "dependents", 0)
	education := profile.Text(p, "education", "")

	return fmt.Sprintf(`You are an expert on Indian central and state government welfare schemes. Recommend programs this user likely qualifies for:

Profile:
- Income: ₹%s per year
- Age: %d years old
- Occupation: %s
- Location: %s, %s
- Dependents: %d
- Education: %s

Give 3-5 schemes. For EACH scheme you MUST use EXACTLY this repeating block, keeping the bold labels verbatim:

**Program:** Official program name
**Category:** e.g. Health, Pension, Insurance, Housing, Agriculture
**Eligibility:** Why this user qualifies, referencing their profile
**Amount:** Benefit amount, e.g. ₹6,000/year or ₹5 lakh coverage
**Application:** Where and how to apply (official portal if known)
**Timeline:** Expected processing time
**Documents:** Documents required

Consider schemes such as PM-KISAN, Ayushman Bharat, PMAY, Mudra Loan, PMJJBY, PMSBY, Atal Pension Yojana, Sukanya Samriddhi Yojana and relevant %s state schemes. Only recommend programs the profile plausibly qualifies for.`,
		profile.FormatINR(income), age, occupation, city, state,
		dependents, education, state)
}
