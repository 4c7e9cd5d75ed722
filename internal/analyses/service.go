package analyses

import (
	"context"
	"fmt"
	"strings"

	"resume-assist/internal/llm"
	"resume-assist/internal/llm/jsonrepair"
	"resume-assist/internal/shared/telemetry"
)

const (
	matchTemperature  = 0.1
	tailorTemperature = 0.2
	topP              = 0.8
	topK              = 40
	maxOutputTokens   = 2048

	maxTailoredPoints = 4
)

// fallbackPoints is returned when tailoring cannot produce usable output.
// Tailoring degrades to generic bullets instead of failing the request.
var fallbackPoints = []string{
	"Developed and implemented software solutions utilizing required programming languages and frameworks",
	"Led technical projects and collaborated with cross-functional teams to deliver high-quality results",
	"Optimized system performance and implemented best practices in software development",
	"Contributed to the design and development of scalable applications and features",
}

// Service computes JD match analyses and tailored bullet points.
type Service struct {
	LLM llm.Generator
}

// NewService constructs a Service.
func NewService(generator llm.Generator) *Service {
	return &Service{LLM: generator}
}

// Analyze scores a resume against a job description and extracts keywords.
// A response missing either required key is a hard failure.
func (s *Service) Analyze(ctx context.Context, resumeText, jobDescription string) (Analysis, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return Analysis{}, ErrInvalidInput
	}

	raw, err := s.LLM.Generate(ctx, llm.Request{
		Prompt:          matchPrompt(resumeText, jobDescription),
		Temperature:     matchTemperature,
		TopP:            topP,
		TopK:            topK,
		MaxOutputTokens: maxOutputTokens,
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("generate match analysis: %w", err)
	}

	var analysis Analysis
	if err := jsonrepair.Parse(raw, &analysis); err != nil {
		telemetry.Error("analyses.match.unparsable", map[string]any{
			"err": err.Error(),
		})
		return Analysis{}, ErrBadResponse
	}
	if analysis.JDMatch == "" || analysis.JDKeywords == nil {
		telemetry.Error("analyses.match.missing_keys", map[string]any{
			"has_match":    analysis.JDMatch != "",
			"has_keywords": analysis.JDKeywords != nil,
		})
		return Analysis{}, ErrBadResponse
	}
	return analysis, nil
}

// Tailor rewrites resume bullets toward a job description. Results are
// capped at four points; any failure yields the generic fallback set.
func (s *Service) Tailor(ctx context.Context, resumeText, jobDescription string, keywords []string) (TailoredPoints, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return TailoredPoints{}, ErrInvalidInput
	}

	raw, err := s.LLM.Generate(ctx, llm.Request{
		Prompt:          tailorPrompt(resumeText, jobDescription, keywords),
		Temperature:     tailorTemperature,
		TopP:            topP,
		TopK:            topK,
		MaxOutputTokens: maxOutputTokens,
	})
	if err != nil {
		telemetry.Warn("analyses.tailor.generate_failed", map[string]any{
			"err": err.Error(),
		})
		return TailoredPoints{Points: fallbackPoints}, nil
	}

	var tailored TailoredPoints
	if err := jsonrepair.Parse(raw, &tailored); err != nil || tailored.Points == nil {
		fields := map[string]any{}
		if err != nil {
			fields["err"] = err.Error()
		}
		telemetry.Warn("analyses.tailor.unparsable", fields)
		return TailoredPoints{Points: fallbackPoints}, nil
	}

	if len(tailored.Points) > maxTailoredPoints {
		tailored.Points = tailored.Points[:maxTailoredPoints]
	}
	return tailored, nil
}
