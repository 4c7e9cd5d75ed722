package llm

import (
	"context"

	"resume-assist/internal/shared/metrics"
)

// Instrumented wraps a Generator with call counters and latency metrics.
type Instrumented struct {
	Next Generator
}

// Instrument wraps gen. A nil gen panics at call time, same as using it
// directly.
func Instrument(gen Generator) Instrumented {
	return Instrumented{Next: gen}
}

// Generate delegates to the wrapped generator and records the outcome.
func (i Instrumented) Generate(ctx context.Context, req Request) (string, error) {
	metrics.IncLLMRequest()
	start := metrics.NowMillis()

	out, err := i.Next.Generate(ctx, req)

	metrics.ObserveLLMDurationMs(metrics.NowMillis() - start)
	if err != nil {
		metrics.IncLLMFailure()
	}
	return out, err
}

var _ Generator = Instrumented{}
