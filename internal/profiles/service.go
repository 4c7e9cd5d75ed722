package profiles

import (
	"context"
	"fmt"
	"strings"

	"resume-assist/internal/llm"
	"resume-assist/internal/llm/jsonrepair"
	"resume-assist/internal/shared/telemetry"
)

const (
	profileTemperature = 0.7
	profileMaxTokens   = 3000

	placeholderPicture = "https://via.placeholder.com/150"
)

// Service synthesizes LinkedIn-style profiles from resume text.
type Service struct {
	LLM llm.Generator
}

// NewService constructs a Service.
func NewService(generator llm.Generator) *Service {
	return &Service{LLM: generator}
}

// Build generates a profile from resume text, normalizes its sections,
// and scores section completeness.
func (s *Service) Build(ctx context.Context, resumeText string) (Profile, error) {
	if strings.TrimSpace(resumeText) == "" {
		return Profile{}, ErrInvalidInput
	}

	raw, err := s.LLM.Generate(ctx, llm.Request{
		System:          systemMessage,
		Prompt:          profilePrompt(resumeText),
		Temperature:     profileTemperature,
		MaxOutputTokens: profileMaxTokens,
	})
	if err != nil {
		return Profile{}, fmt.Errorf("generate profile: %w", err)
	}

	var profile Profile
	if err := jsonrepair.Parse(raw, &profile); err != nil {
		telemetry.Error("profiles.build.unparsable", map[string]any{
			"err": err.Error(),
		})
		return Profile{}, ErrBadResponse
	}

	profile.normalize()
	profile.ProfilePicture = placeholderPicture
	profile.ProfileStrength = strength(&profile)
	return profile, nil
}
