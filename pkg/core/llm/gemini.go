package llm

import (
	"context"
	"os"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider implements the Provider interface for Google's Gemini models
// using the official GenAI SDK.
type GeminiProvider struct {
	Model string // e.g. "gemini-2.0-flash"
}

// Ensure interface compliance
var _ Provider = (*GeminiProvider)(nil)

// GenerateResponse sends a generateContent request to the Gemini API.
func (p *GeminiProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", &ProviderError{Provider: "gemini", Reason: "GEMINI_API_KEY environment variable not set"}
	}

	model := p.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	// Allow override from options
	if val, ok := options["model"].(string); ok && val != "" {
		model = val
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &ProviderError{Provider: "gemini", Reason: "failed to create GenAI client", Err: err}
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.4)),
	}

	if val, ok := options["response_format"].(map[string]interface{}); ok {
		if val["type"] == "json_object" {
			config.ResponseMIMEType = "application/json"
		}
	}

	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{
				{Text: systemPrompt},
			},
		}
	}

	result, err := client.Models.GenerateContent(
		ctx,
		model,
		genai.Text(prompt),
		config,
	)
	if err != nil {
		return "", &ProviderError{Provider: "gemini", Reason: "generation failed", Err: err}
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", &ProviderError{Provider: "gemini", Reason: "provider returned no usable text"}
	}
	return text, nil
}
