package ai

import "context"

// Assistant produces a free-form text completion for a single prompt. It is
// the only surface the rest of the application needs from an AI provider.
type Assistant interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}
