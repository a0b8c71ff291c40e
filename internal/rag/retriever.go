package rag

import (
	"context"

	"github.com/iolobot/iolo/internal/log"
)

// Searcher is the port to the vector index. It is defined here, in the
// consumer package, so the Pinecone adapter (or a test fake) can satisfy it
// without the pipeline importing any SDK.
//
// Implementations must be safe for concurrent use: the three namespace
// retrievals of one query run in parallel, and multiple messages can be in
// flight at once.
type Searcher interface {
	Search(ctx context.Context, namespace, query string, topK int) ([]Hit, error)
}

// Retriever issues one similarity search per namespace. It is a read-only
// client of the index: results come back in the index's own ranking and are
// passed through unmodified.
type Retriever struct {
	searcher Searcher
	logger   log.Logger
}

// NewRetriever creates a Retriever backed by the given index port.
func NewRetriever(searcher Searcher, logger log.Logger) *Retriever {
	return &Retriever{
		searcher: searcher,
		logger:   logger,
	}
}

// Retrieve runs one search with the fixed TopK. Backend failures come back
// as *RetrievalError carrying the namespace; they are not retried and not
// recovered here.
func (r *Retriever) Retrieve(ctx context.Context, query, namespace string) (NamespaceResult, error) {
	hits, err := r.searcher.Search(ctx, namespace, query, TopK)
	if err != nil {
		return NamespaceResult{}, &RetrievalError{Namespace: namespace, Err: err}
	}

	r.logger.Debug("namespace retrieved",
		"namespace", namespace,
		"hits", len(hits),
	)

	return NamespaceResult{Namespace: namespace, Hits: hits}, nil
}
