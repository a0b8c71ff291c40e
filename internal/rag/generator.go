package rag

import "context"

// Generator is the port to the generative model. One blocking call per
// prompt; no streaming and no retries. Implementations must be safe for
// concurrent use and should honor ctx for timeout and cancellation.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
