package advisor

import (
	"reflect"
	"testing"
)

func TestSuggestionsAlwaysSix(t *testing.T) {
	messages := []string{
		"",
		"hello",
		"how do I invest",
		"help me budget",
		"TAX question",
		"loan trouble",
		"retirement plans",
		"emergency cash",
		"insurance cover",
	}
	for _, msg := range messages {
		if got := Suggestions(msg); len(got) != 6 {
			t.Errorf("Suggestions(%q) returned %d entries, want 6", msg, len(got))
		}
	}
}

func TestSuggestionsBucketRouting(t *testing.T) {
	if got := Suggestions("Should I invest in stocks?"); got[0] != suggestionBuckets[0].suggestions[0] {
		t.Errorf("expected investment bucket, got %q", got[0])
	}
	if got := Suggestions("how do I save on TAX"); !reflect.DeepEqual(got, suggestionBuckets[2].suggestions) {
		t.Error("expected tax bucket (case-insensitive match)")
	}
	if got := Suggestions("nothing financial here"); !reflect.DeepEqual(got, genericSuggestions) {
		t.Error("expected the generic list when no keyword matches")
	}
}

func TestSuggestionsPriorityOrder(t *testing.T) {
	// "investment" and "tax" both appear; the earlier bucket wins.
	got := Suggestions("best tax saving investment")
	if !reflect.DeepEqual(got, suggestionBuckets[0].suggestions) {
		t.Error("investment bucket should win over tax when both keywords match")
	}
}
