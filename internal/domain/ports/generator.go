package ports

import "context"

// TextGenerator is the boundary to the LLM service: one synchronous
// completion per call, no retry. Authentication and upstream failures are
// surfaced as-is for the caller to classify.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
