package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
)

// DeepSeekProvider implements the Provider interface against the DeepSeek
// chat-completions API using a plain HTTP client.
type DeepSeekProvider struct{}

var _ Provider = (*DeepSeekProvider)(nil)

type deepSeekRequest struct {
	Messages    []deepSeekMessage `json:"messages"`
	Model       string            `json:"model"`
	MaxTokens   int               `json:"max_tokens"`
	Stream      bool              `json:"stream"`
	Temperature float64           `json:"temperature"`
}

type deepSeekMessage struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

type deepSeekResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *DeepSeekProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	if val, ok := options["api_key"].(string); ok && val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return "", &ProviderError{Provider: "deepseek", Reason: "DEEPSEEK_API_KEY environment variable not set"}
	}

	model := "deepseek-chat"
	if val, ok := options["model"].(string); ok && val != "" {
		model = val
	}

	url := "https://api.deepseek.com/chat/completions"

	reqBody := deepSeekRequest{
		Messages: []deepSeekMessage{
			{Content: systemPrompt, Role: "system"},
			{Content: prompt, Role: "user"},
		},
		Model:       model,
		MaxTokens:   4096,
		Temperature: 0.4,
	}

	jsonBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", &ProviderError{Provider: "deepseek", Reason: "DEEPSEEK_MARSHAL_ERROR", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBytes))
	if err != nil {
		return "", &ProviderError{Provider: "deepseek", Reason: "DEEPSEEK_REQ_CREATE_ERROR", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: "deepseek", Reason: "DEEPSEEK_API_CALL_ERROR", Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &ProviderError{Provider: "deepseek", Reason: "DEEPSEEK_READ_BODY_ERROR", Err: err}
	}

	if res.StatusCode != 200 {
		return "", &ProviderError{Provider: "deepseek", Reason: "DEEPSEEK_API_ERROR: " + res.Status + " " + string(body)}
	}

	var response deepSeekResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", &ProviderError{Provider: "deepseek", Reason: "DEEPSEEK_UNMARSHAL_ERROR", Err: err}
	}

	if len(response.Choices) == 0 {
		return "", &ProviderError{Provider: "deepseek", Reason: "DEEPSEEK_NO_CHOICES: " + string(body)}
	}

	return response.Choices[0].Message.Content, nil
}
