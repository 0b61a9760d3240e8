package advisor

import "strings"

// suggestionBuckets are checked in priority order; the first bucket whose
// keyword appears in the message wins. Every list has exactly six entries.
var suggestionBuckets = []struct {
	keywords    []string
	suggestions []string
}{
	{
		keywords: []string{"investment", "invest"},
		suggestions: []string{
			"What's the best investment strategy for my age?",
			"How much should I invest monthly?",
			"What are the risks of this investment?",
			"Show me low-risk investment options",
			"Should I invest in index funds or active funds?",
			"How do I start a SIP?",
		},
	},
	{
		keywords: []string{"saving", "budget"},
		suggestions: []string{
			"How much should I save each month?",
			"What's the best way to budget my income?",
			"How do I build an emergency fund?",
			"What are good savings goals?",
			"Which savings account gives the best interest?",
			"How do I automate my savings?",
		},
	},
	{
		keywords: []string{"tax"},
		suggestions: []string{
			"What tax deductions can I claim?",
			"How can I reduce my tax bill?",
			"What are the best tax-saving investments?",
			"When should I file my taxes?",
			"How does Section 80C work?",
			"Is the new tax regime better for me?",
		},
	},
	{
		keywords: []string{"debt", "loan"},
		suggestions: []string{
			"How do I pay off debt faster?",
			"What's the best debt payoff strategy?",
			"Should I consolidate my loans?",
			"How much debt is too much?",
			"Should I prepay my home loan?",
			"How do I improve my credit score?",
		},
	},
	{
		keywords: []string{"retirement"},
		suggestions: []string{
			"How much should I save for retirement?",
			"What's the best retirement account?",
			"When should I start retirement planning?",
			"How do I calculate retirement needs?",
			"Is NPS better than PPF for retirement?",
			"What pension schemes am I eligible for?",
		},
	},
	{
		keywords: []string{"emergency", "fund"},
		suggestions: []string{
			"How big should my emergency fund be?",
			"Where should I keep my emergency fund?",
			"How fast can I build an emergency fund?",
			"Are liquid funds safe for emergencies?",
			"Should the emergency fund come before investing?",
			"How do I rebuild a spent emergency fund?",
		},
	},
	{
		keywords: []string{"insurance"},
		suggestions: []string{
			"How much term insurance do I need?",
			"Is health insurance worth it for my family?",
			"What does my 80D deduction cover?",
			"Term insurance vs endowment plans?",
			"What government insurance schemes exist?",
			"When should I increase my coverage?",
		},
	},
}

// genericSuggestions is the fall-through list when no bucket keyword matches.
var genericSuggestions = []string{
	"Tell me more about this",
	"How can I implement this?",
	"What are the risks?",
	"Show me alternatives",
	"How does this fit my profile?",
	"What should I do first?",
}

// Suggestions returns exactly six follow-up questions keyed off the user's
// message. Pure and total.
func Suggestions(message string) []string {
	msg := strings.ToLower(message)
	for _, bucket := range suggestionBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(msg, kw) {
				return bucket.suggestions
			}
		}
	}
	return genericSuggestions
}
