package agent

import (
	"testing"

	"finwise/pkg/core/llm"
)

func TestGetProviderResolution(t *testing.T) {
	m := NewManager(Config{
		ActiveProvider: "deepseek",
		Agents: map[string]AgentConfig{
			"advisor": {Provider: "gemini"},
		},
	})

	// Role override wins over the global provider.
	if _, ok := m.GetProvider("advisor").(*llm.GeminiProvider); !ok {
		t.Error("advisor role should resolve to its gemini override")
	}
	// Unconfigured roles use the global provider.
	if _, ok := m.GetProvider("unknown").(*llm.DeepSeekProvider); !ok {
		t.Error("unknown role should resolve to the global deepseek provider")
	}
}

func TestGetProviderDefaultsToGemini(t *testing.T) {
	m := NewManager(Config{ActiveProvider: "nonexistent"})
	if _, ok := m.GetProvider("advisor").(*llm.GeminiProvider); !ok {
		t.Error("unresolvable configuration should fall back to gemini")
	}
}

func TestSetGlobalProvider(t *testing.T) {
	m := NewManager(Config{ActiveProvider: "gemini"})

	if err := m.SetGlobalProvider("deepseek"); err != nil {
		t.Fatalf("switch to deepseek failed: %v", err)
	}
	if m.GetActiveProvider() != "deepseek" {
		t.Errorf("active provider = %q, want deepseek", m.GetActiveProvider())
	}

	if err := m.SetGlobalProvider("openai"); err == nil {
		t.Error("expected an error for an unregistered provider")
	}
	if m.GetActiveProvider() != "deepseek" {
		t.Error("failed switch must not change the active provider")
	}
}
