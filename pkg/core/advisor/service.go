package advisor

import (
	"context"
	"fmt"

	"finwise/pkg/core/profile"
)

// TextGenerator is the outbound text-generation capability. *agent.Manager
// satisfies it; tests substitute a fake.
type TextGenerator interface {
	ExecutePrompt(ctx context.Context, agentType string, rawPrompt string, rawSystemPrompt string, options map[string]interface{}) (string, error)
}

const agentRole = "advisor"

// Service implements the three advisory operations. All three are total: any
// gateway or parse failure is absorbed and replaced by the deterministic
// fallback, so a caller always receives a complete, well-formed value. The
// only visible signal of degradation is confidence dropping from 0.9 to 0.8.
type Service struct {
	gen TextGenerator
}

// NewService wires the service to its generation gateway.
func NewService(gen TextGenerator) *Service {
	return &Service{gen: gen}
}

// Chat answers a free-text question in the context of the profile.
func (s *Service) Chat(ctx context.Context, message string, p profile.Profile) (resp ChatResponse) {
	// A panic anywhere below must degrade, not escape: availability is the
	// contract even against programming errors.
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("[ADVISOR] unexpected panic in chat, serving fallback: %v\n", r)
			resp = FallbackChatResponse(message, p)
		}
	}()

	generated, err := s.gen.ExecutePrompt(ctx, agentRole, BuildChatPrompt(message, p), "", nil)
	if err != nil {
		fmt.Printf("[ADVISOR] chat generation failed, serving fallback: %v\n", err)
		return FallbackChatResponse(message, p)
	}

	cleaned := CleanResponse(generated)
	structured, ok := ParseChatResponse(cleaned)
	if !ok {
		fmt.Println("[ADVISOR] chat response had no recognizable sections, serving fallback")
		return FallbackChatResponse(message, p)
	}

	return ChatResponse{
		Response:       structured.FormattedResponse,
		Suggestions:    Suggestions(message),
		Confidence:     0.9,
		StructuredData: structured,
	}
}

// TaxRecommendations produces tax-saving strategies for the profile.
func (s *Service) TaxRecommendations(ctx context.Context, p profile.Profile) (set TaxRecommendationSet) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("[ADVISOR] unexpected panic in tax recommendations, serving fallback: %v\n", r)
			set = FallbackTaxRecommendations(p)
		}
	}()

	generated, err := s.gen.ExecutePrompt(ctx, agentRole, BuildTaxPrompt(p), "", nil)
	if err != nil {
		fmt.Printf("[ADVISOR] tax generation failed, serving fallback: %v\n", err)
		return FallbackTaxRecommendations(p)
	}

	parsed, ok := ParseTaxResponse(CleanResponse(generated))
	if !ok {
		fmt.Println("[ADVISOR] tax response had no parseable strategy blocks, serving fallback")
		return FallbackTaxRecommendations(p)
	}

	// The parser cannot know the bracket; fill it from the profile so the
	// summary is complete either way.
	if parsed.Summary.TaxBracket == "" {
		parsed.Summary.TaxBracket = fmt.Sprintf("%d%%", taxBracketPercent(profile.Income(p)))
	}
	return parsed
}

// BenefitsRecommendations produces government-scheme suggestions for the
// profile.
func (s *Service) BenefitsRecommendations(ctx context.Context, p profile.Profile) (benefits []Benefit) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("[ADVISOR] unexpected panic in benefits recommendations, serving fallback: %v\n", r)
			benefits = FallbackBenefits(p)
		}
	}()

	generated, err := s.gen.ExecutePrompt(ctx, agentRole, BuildBenefitsPrompt(p), "", nil)
	if err != nil {
		fmt.Printf("[ADVISOR] benefits generation failed, serving fallback: %v\n", err)
		return FallbackBenefits(p)
	}

	parsed, ok := ParseBenefitsResponse(CleanResponse(generated))
	if !ok {
		fmt.Println("[ADVISOR] benefits response had no parseable program blocks, serving fallback")
		return FallbackBenefits(p)
	}
	return parsed
}
