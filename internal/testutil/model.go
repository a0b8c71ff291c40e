package testutil

import (
	"context"
	"sync"
)

// FakeGenerator implements rag.Generator with a scriptable function and
// records every prompt it receives.
type FakeGenerator struct {
	// Fn produces the answer for one prompt. When nil, a fixed canned
	// answer is returned.
	Fn func(ctx context.Context, prompt string) (string, error)

	mu      sync.Mutex
	prompts []string
}

// CannedAnswer is what FakeGenerator returns when no Fn is scripted.
const CannedAnswer = "canned model answer"

// Generate records the prompt and delegates to Fn.
func (f *FakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.Fn == nil {
		return CannedAnswer, nil
	}
	return f.Fn(ctx, prompt)
}

// Prompts returns a copy of every prompt sent to the fake model.
func (f *FakeGenerator) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.prompts))
	copy(out, f.prompts)
	return out
}
