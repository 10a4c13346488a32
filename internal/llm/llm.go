package llm

import "context"

// NoResult is what Evaluate returns when no attempt produced text.
const NoResult = ""

// Client abstracts a generative model provider. Generate performs exactly one remote call.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f ClientFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
