package advisor

import (
	"regexp"
	"strconv"
	"strings"

	"finwise/pkg/core/utils"
)

// Parsing is a two-stage strategy. Stage one assumes the model followed an
// exact-JSON instruction: find a JSON object or array embedded in the text
// and decode it. The current prompts mandate a bold-label template rather
// than JSON, so this path is normally unreachable, but it is kept as a
// defensive path for alternate prompts and must stay. Stage two splits the
// text on the bold label that opens each repeating block and scans the known
// labels inside every segment.
//
// Each parser returns its value plus an ok flag; ok=false means the text
// yielded nothing usable and the caller must substitute the deterministic
// fallback. An empty result is never smuggled through as a parsed one.

var rupeeAmountRe = regexp.MustCompile(`₹\s*([0-9][0-9,]*)`)

// extractRupees pulls the first rupee-sign amount out of s, with commas
// stripped. ok is false when no such pattern exists.
func extractRupees(s string) (int, bool) {
	m := rupeeAmountRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}

// extractJSONBlock returns the substring bounded by the first open and last
// close bracket of the given pair, or "" when no such block exists.
func extractJSONBlock(text string, open, close byte) string {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start == -1 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// labelValue strips a leading "**Label:**" marker and trims the remainder.
func labelValue(line, label string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, label))
}

// ParseTaxResponse extracts tax recommendations from cleaned model text.
func ParseTaxResponse(text string) (TaxRecommendationSet, bool) {
	// Strict mode: embedded JSON object.
	if block := extractJSONBlock(text, '{', '}'); block != "" {
		var set TaxRecommendationSet
		if err := utils.DecodeLenient(block, &set); err == nil && len(set.Recommendations) > 0 {
			return set, true
		}
	}

	segments := strings.Split(text, "**Strategy:**")
	if len(segments) < 2 {
		return TaxRecommendationSet{}, false
	}

	var recs []Recommendation
	for _, segment := range segments[1:] {
		rec := parseTaxSegment(segment)
		if rec.Title == "" {
			continue
		}
		recs = append(recs, rec)
	}
	if len(recs) == 0 {
		return TaxRecommendationSet{}, false
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
			TaxBracket:            "",
		},
	}, true
}

var taxLabels = []string{
	"**Amount:**", "**Savings:**", "**Implementation:**",
	"**Priority:**", "**Risk Level:**", "**Lock-in Period:**",
}

// breakBeforeLabels forces every known label onto its own line so that the
// line scan below works even when the model runs labels together.
func breakBeforeLabels(segment string, labels []string) string {
	for _, label := range labels {
		segment = strings.ReplaceAll(segment, label, "\n"+label)
	}
	return segment
}

func parseTaxSegment(segment string) Recommendation {
	segment = breakBeforeLabels(segment, taxLabels)
	lines := strings.Split(strings.TrimSpace(segment), "\n")
	if len(lines) == 0 {
		return Recommendation{}
	}

	rec := Recommendation{
		Title:    strings.TrimSpace(lines[0]),
		Priority: "medium",
		Risk:     "Medium",
		Returns:  "Tax Savings",
		LockIn:   "Varies",
	}

	var desc []string
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "**Amount:**"):
			// Amount and Savings both feed PotentialSaving; when a block
			// carries both, the later label wins.
			if n, ok := extractRupees(labelValue(line, "**Amount:**")); ok {
				rec.PotentialSaving = n
			}
		case strings.HasPrefix(line, "**Savings:**"):
			if n, ok := extractRupees(labelValue(line, "**Savings:**")); ok {
				rec.PotentialSaving = n
			}
		case strings.HasPrefix(line, "**Implementation:**"):
			rec.Action = labelValue(line, "**Implementation:**")
		case strings.HasPrefix(line, "**Priority:**"):
			if v := strings.ToLower(labelValue(line, "**Priority:**")); v != "" {
				rec.Priority = v
			}
		case strings.HasPrefix(line, "**Risk Level:**"):
			rec.Risk = labelValue(line, "**Risk Level:**")
		case strings.HasPrefix(line, "**Lock-in Period:**"):
			rec.LockIn = labelValue(line, "**Lock-in Period:**")
		case strings.HasPrefix(line, "**"):
			// Unknown label; skip rather than pollute the description.
		default:
			desc = append(desc, line)
		}
	}

	rec.Description = strings.Join(desc, " ")
	if rec.Description == "" {
		rec.Description = rec.Title
	}
	rec.Category = categoryForStrategy(rec.Title)
	if rec.PotentialSaving == 0 {
		rec.PotentialSaving = estimatedSavingForCategory(rec.Category)
	}
	return rec
}

// categoryForStrategy maps a strategy title onto the tax section it belongs
// to, defaulting to a generic bucket.
func categoryForStrategy(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "80c") || strings.Contains(t, "elss") || strings.Contains(t, "ppf"):
		return "80C"
	case strings.Contains(t, "80d") || strings.Contains(t, "health insurance"):
		return "80D"
	case strings.Contains(t, "nps") || strings.Contains(t, "80ccd"):
		return "80CCD"
	case strings.Contains(t, "hra") || strings.Contains(t, "rent"):
		return "HRA"
	case strings.Contains(t, "home loan") || strings.Contains(t, "24b"):
		return "24B"
	default:
		return "Tax Optimization"
	}
}

// estimatedSavingForCategory is the heuristic applied when a block carried no
// parseable rupee amount: a third of the section's deduction cap (the common
// 30% bracket assumption).
func estimatedSavingForCategory(category string) int {
	switch category {
	case "80C":
		return 45000 // 1,50,000 cap at 30%
	case "80D":
		return 7500 // 25,000 cap at 30%
	case "80CCD":
		return 15000 // 50,000 cap at 30%
	case "HRA", "24B":
		return 15000
	default:
		return 10000
	}
}

// optimizationScore maps recommendation count onto the 60-90 band.
func optimizationScore(n int) int {
	score := 60 + n*6
	if score > 90 {
		score = 90
	}
	return score
}

// ParseBenefitsResponse extracts scheme recommendations from cleaned text.
func ParseBenefitsResponse(text string) ([]Benefit, bool) {
	// Strict mode: embedded JSON array.
	if block := extractJSONBlock(text, '[', ']'); block != "" {
		var benefits []Benefit
		if err := utils.DecodeLenient(block, &benefits); err == nil && len(benefits) > 0 {
			return benefits, true
		}
	}

	segments := strings.Split(text, "**Program:**")
	if len(segments) < 2 {
		return nil, false
	}

	var benefits []Benefit
	for _, segment := range segments[1:] {
		b := parseBenefitSegment(segment)
		if b.Name == "" {
			continue
		}
		benefits = append(benefits, b)
	}
	if len(benefits) == 0 {
		return nil, false
	}
	return benefits, true
}

var urlRe = regexp.MustCompile(`https?://[^\s)]+`)

var benefitLabels = []string{
	"**Category:**", "**Eligibility:**", "**Amount:**",
	"**Application:**", "**Timeline:**", "**Documents:**",
}

func parseBenefitSegment(segment string) Benefit {
	segment = breakBeforeLabels(segment, benefitLabels)
	lines := strings.Split(strings.TrimSpace(segment), "\n")
	if len(lines) == 0 {
		return Benefit{}
	}

	b := Benefit{
		Name:              strings.TrimSpace(lines[0]),
		Category:          "General",
		EligibilityReason: "Based on your profile",
		Link:              "https://www.india.gov.in/topics/benefits",
		Amount:            "Varies",
		EstimatedTime:     "15-30 days",
	}

	var desc []string
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "**Category:**"):
			if v := labelValue(line, "**Category:**"); v != "" {
				b.Category = v
			}
		case strings.HasPrefix(line, "**Eligibility:**"):
			if v := labelValue(line, "**Eligibility:**"); v != "" {
				b.EligibilityReason = v
			}
		case strings.HasPrefix(line, "**Amount:**"):
			if v := labelValue(line, "**Amount:**"); v != "" {
				b.Amount = v
			}
		case strings.HasPrefix(line, "**Application:**"):
			v := labelValue(line, "**Application:**")
			if url := urlRe.FindString(v); url != "" {
				b.Link = url
			}
			if v != "" {
				desc = append(desc, "Apply: "+v)
			}
		case strings.HasPrefix(line, "**Timeline:**"):
			if v := labelValue(line, "**Timeline:**"); v != "" {
				b.EstimatedTime = v
			}
		case strings.HasPrefix(line, "**Documents:**"):
			if v := labelValue(line, "**Documents:**"); v != "" {
				desc = append(desc, "Documents: "+v)
			}
		case strings.HasPrefix(line, "**"):
			// Unknown label; skip.
		default:
			desc = append(desc, line)
		}
	}

	b.Description = strings.Join(desc, " ")
	if b.Description == "" {
		b.Description = b.Name
	}
	return b
}

// chatSectionMarkers maps each mandated template label to its section key,
// in the fixed order used to rebuild the normalized response.
var chatSectionMarkers = []struct {
	marker string
	key    string
}{
	{"**Main Advice:**", SectionMainAdvice},
	{"**Specific Numbers:**", SectionSpecificNumbers},
	{"**Action Steps:**", SectionActionSteps},
	{"**Timeline:**", SectionTimeline},
	{"**Risks & Considerations:**", SectionRisks},
}

// genericSectionText fills sections the model skipped so the user-visible
// response is always complete.
var genericSectionText = map[string]string{
	SectionMainAdvice:      "Here is personalized advice based on your financial profile.",
	SectionSpecificNumbers: "Exact amounts depend on your income, expenses and goals.",
	SectionActionSteps:     "Review your budget, automate your savings, and invest consistently.",
	SectionTimeline:        "Start this month and review your progress every quarter.",
	SectionRisks:           "All investments carry risk; diversify and keep an emergency fund before investing.",
}

// ParseChatResponse extracts the five mandated sections from cleaned text.
// Unlike the repeating-block parsers, each marker is located independently
// because the chat template has no repeating unit.
func ParseChatResponse(text string) (StructuredData, bool) {
	// Strict mode: embedded JSON object with a sections mapping.
	if block := extractJSONBlock(text, '{', '}'); block != "" {
		var sd StructuredData
		if err := utils.DecodeLenient(block, &sd); err == nil && len(sd.Sections) > 0 {
			if sd.OriginalResponse == "" {
				sd.OriginalResponse = text
			}
			if sd.FormattedResponse == "" {
				sd.FormattedResponse = formatSections(sd.Sections)
			}
			return sd, true
		}
	}

	sections := make(map[string]string)
	for i, m := range chatSectionMarkers {
		start := strings.Index(text, m.marker)
		if start == -1 {
			continue
		}
		body := text[start+len(m.marker):]
		// The section runs until the next known marker, whichever comes first.
		end := len(body)
		for j, other := range chatSectionMarkers {
			if j == i {
				continue
			}
			if idx := strings.Index(body, other.marker); idx != -1 && idx < end {
				end = idx
			}
		}
		if value := strings.TrimSpace(body[:end]); value != "" {
			sections[m.key] = value
		}
	}

	if len(sections) == 0 {
		return StructuredData{}, false
	}

	return StructuredData{
		FormattedResponse: formatSections(sections),
		Sections:          sections,
		OriginalResponse:  text,
	}, true
}

// formatSections rebuilds the user-visible answer in fixed template order,
// substituting a generic sentence for any missing section.
func formatSections(sections map[string]string) string {
	var parts []string
	for _, m := range chatSectionMarkers {
		value, ok := sections[m.key]
		if !ok || strings.TrimSpace(value) == "" {
			value = genericSectionText[m.key]
		}
		parts = append(parts, m.marker+" "+value)
	}
	return strings.Join(parts, "\n\n")
}
