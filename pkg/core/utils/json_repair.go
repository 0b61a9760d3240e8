package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON errors from LLM outputs.
// Uses github.com/RealAlexandreAI/json-repair for intelligent repair.
// Supported repairs:
// - Missing quotes around keys
// - Single quotes instead of double quotes
// - Unclosed arrays/objects
// - Trailing commas
// - Leading/trailing whitespace and markdown code blocks
func RepairJSON(malformedJSON string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformedJSON)
	if err != nil {
		return "", fmt.Errorf("JSON_REPAIR_FAILED: %v", err)
	}
	return repaired, nil
}

// DecodeLenient repairs rawJSON and decodes it into schema. When the repair
// library cannot make sense of the input it falls back to Hjson, which
// tolerates comments, unquoted keys and missing commas.
func DecodeLenient(rawJSON string, schema interface{}) error {
	repaired, err := RepairJSON(rawJSON)
	if err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return nil
		}
	}
	if err := hjson.Unmarshal([]byte(rawJSON), schema); err != nil {
		return fmt.Errorf("JSON_DECODE_FAILED: %v", err)
	}
	return nil
}
