// Package advisor turns a financial profile and a free-text question into
// structured guidance by prompting an LLM and normalizing whatever text comes
// back. The contract is availability, not model quality: every operation is
// total and degrades to a deterministic rule-based result when generation or
// parsing fails.
package advisor

// ChatResponse is the result of one conversational exchange.
// Response is never empty; Confidence is 0.9 when the model output parsed
// into sections and 0.8 when the deterministic fallback produced the answer.
type ChatResponse struct {
	Response       string         `json:"response"`
	Suggestions    []string       `json:"suggestions"`
	Confidence     float64        `json:"confidence"`
	StructuredData StructuredData `json:"structured_data"`
}

// StructuredData carries both the normalized and the raw form of the model's
// answer so the frontend can choose how much post-processing to trust.
type StructuredData struct {
	FormattedResponse string            `json:"formatted_response"`
	Sections          map[string]string `json:"sections"`
	OriginalResponse  string            `json:"original_response"`
}

// Section keys used in StructuredData.Sections.
const (
	SectionMainAdvice      = "main_advice"
	SectionSpecificNumbers = "specific_numbers"
	SectionActionSteps     = "action_steps"
	SectionTimeline        = "timeline"
	SectionRisks           = "risks"
)

// Recommendation is one tax-saving strategy.
type Recommendation struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	PotentialSaving int    `json:"potential_saving"`
	Priority        string `json:"priority"` // high, medium, low
	Category        string `json:"category"`
	Action          string `json:"action"`
	Risk            string `json:"risk"`
	Returns         string `json:"returns"`
	LockIn          string `json:"lock_in"`
}

// TaxSummary aggregates a recommendation set. TotalPotentialSavings always
// equals the sum of the member savings; CurrentTaxSaved is reported as zero
// because the core has no view of what the user already claimed.
type TaxSummary struct {
	TotalPotentialSavings int    `json:"total_potential_savings"`
	OptimizationScore     int    `json:"optimization_score"` // 60..90
	CurrentTaxSaved       int    `json:"current_tax_saved"`
	TaxBracket            string `json:"tax_bracket"`
}

// TaxRecommendationSet is the full tax operation result. Recommendations is
// never empty.
type TaxRecommendationSet struct {
	Recommendations []Recommendation `json:"recommendations"`
	Summary         TaxSummary       `json:"summary"`
}

// Benefit is one government scheme the user may qualify for.
type Benefit struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	EligibilityReason string `json:"eligibility_reason"`
	Link              string `json:"link"`
	Amount            string `json:"amount"`
	Category          string `json:"category"`
	EstimatedTime     string `json:"estimatedTime"`
}
