package llm

import (
	"context"
	"errors"
	"fmt"
)

// Provider is the interface for all LLM providers. It is the single outbound
// call boundary of the system: one prompt in, one generated text out. No
// retries happen at this level; callers degrade to deterministic fallbacks.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}

// ProviderError is the only error type that originates inside the advisory
// core. It covers missing credentials, transport failures and empty or
// unusable provider output. Operation boundaries catch it and substitute a
// deterministic fallback; it never reaches an external caller.
type ProviderError struct {
	Provider string
	Reason   string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("PROVIDER_ERROR [%s]: %s: %v", e.Provider, e.Reason, e.Err)
	}
	return fmt.Sprintf("PROVIDER_ERROR [%s]: %s", e.Provider, e.Reason)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// IsProviderError reports whether err is (or wraps) a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
