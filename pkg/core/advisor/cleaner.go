package advisor

import (
	"strings"

	"finwise/pkg/core/utils"
)

// EmptyResponseApology is returned by CleanResponse when the generator
// produced nothing at all.
const EmptyResponseApology = "I'm sorry, I couldn't generate a response at this time. Please try again."

// CleanResponse normalizes raw generated text: strips code fences, trims
// whitespace, collapses double newlines, and drops a trailing sentence
// fragment when the text was cut off mid-sentence. Total; never fails.
func CleanResponse(generated string) string {
	if strings.TrimSpace(generated) == "" {
		return EmptyResponseApology
	}

	response := utils.CleanMarkdown(generated)
	for strings.Contains(response, "\n\n") {
		response = strings.ReplaceAll(response, "\n\n", "\n")
	}
	response = strings.TrimSpace(response)
	if response == "" {
		return EmptyResponseApology
	}

	// Truncation guard: a response not ending in terminal punctuation most
	// likely hit the token limit mid-sentence.
	last := response[len(response)-1]
	if last != '.' && last != '!' && last != '?' {
		sentences := strings.Split(response, ".")
		if len(sentences) > 1 {
			response = strings.Join(sentences[:len(sentences)-1], ".") + "."
		}
	}

	// The downstream parsers scan markdown labels, so the text must at least
	// parse as markdown before it is handed on.
	if !utils.ValidateMarkdown(response) {
		return EmptyResponseApology
	}

	return response
}
