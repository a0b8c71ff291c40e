// Package testutil provides deterministic fakes for the pipeline's ports
// and the bot's outbound surfaces. All fakes are safe for concurrent use;
// the dispatcher runs message units in parallel and the pipeline fans out
// retrievals, so tests exercise them from multiple goroutines.
package testutil

import (
	"context"
	"sync"

	"github.com/iolobot/iolo/internal/rag"
)

// SearchCall records one call to the fake index.
type SearchCall struct {
	Namespace string
	Query     string
	TopK      int
}

// FakeSearcher implements rag.Searcher with a scriptable function.
type FakeSearcher struct {
	// Fn produces the hits for one search. When nil, every search
	// returns no hits.
	Fn func(ctx context.Context, namespace, query string, topK int) ([]rag.Hit, error)

	mu    sync.Mutex
	calls []SearchCall
}

// Search records the call and delegates to Fn.
func (f *FakeSearcher) Search(ctx context.Context, namespace, query string, topK int) ([]rag.Hit, error) {
	f.mu.Lock()
	f.calls = append(f.calls, SearchCall{Namespace: namespace, Query: query, TopK: topK})
	f.mu.Unlock()

	if f.Fn == nil {
		return nil, nil
	}
	return f.Fn(ctx, namespace, query, topK)
}

// Calls returns a copy of every recorded search call.
func (f *FakeSearcher) Calls() []SearchCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]SearchCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// Hits returns n synthetic hits for a namespace, scored in descending
// order the way a real index ranks them.
func Hits(namespace string, n int) []rag.Hit {
	hits := make([]rag.Hit, n)
	for i := range hits {
		hits[i] = rag.Hit{
			ID:         namespace + "-" + string(rune('a'+i)),
			Score:      rag.Score(0.9 - 0.1*float64(i)),
			PageNumber: "12",
			Header:     "Topic " + namespace,
			Content:    "Content for " + namespace,
		}
	}
	return hits
}
