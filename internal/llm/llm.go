package llm

import (
	"context"
	"errors"
)

// Generator abstracts a text-generation provider.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request carries the prompt and sampling configuration for one call.
// Zero-valued sampling fields fall back to provider defaults.
type Request struct {
	System          string
	Prompt          string
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}

// ErrNotConfigured is returned by the placeholder generator.
var ErrNotConfigured = errors.New("llm provider not configured")

// Placeholder is a stub Generator used when no provider credentials are set.
type Placeholder struct{}

// Generate returns ErrNotConfigured.
func (Placeholder) Generate(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}

var _ Generator = Placeholder{}
