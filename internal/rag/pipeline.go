package rag

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/iolobot/iolo/internal/log"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyQuery rejects queries with no content before any backend call.
var ErrEmptyQuery = errors.New("empty query")

// Pipeline composes retrieval, context assembly, prompt construction and
// generation into one request/response unit. It holds no per-request state:
// a Pipeline is built once at startup and shared by every in-flight message.
type Pipeline struct {
	retriever *Retriever
	generator Generator
	logger    log.Logger
}

// NewPipeline wires the pipeline from its two ports.
func NewPipeline(searcher Searcher, generator Generator, logger log.Logger) *Pipeline {
	return &Pipeline{
		retriever: NewRetriever(searcher, logger),
		generator: generator,
		logger:    logger,
	}
}

// ProcessQuery answers one question.
//
// The three namespace retrievals fan out concurrently and are joined back
// into the fixed Namespaces order before assembly, so the context is
// identical to a sequential run. Failure is all-or-nothing: if any one
// namespace fails, the query fails and results already fetched from the
// others are discarded. The raw model output is returned unmodified.
func (p *Pipeline) ProcessQuery(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	start := time.Now()

	results := make([]NamespaceResult, len(Namespaces))

	g, gctx := errgroup.WithContext(ctx)
	for i, namespace := range Namespaces {
		g.Go(func() error {
			res, err := p.retriever.Retrieve(gctx, query, namespace)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	contextText := AssembleContext(results)
	prompt := BuildPrompt(query, contextText)

	answer, err := p.generator.Generate(ctx, prompt)
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	p.logger.Debug("query processed",
		"context_bytes", len(contextText),
		"answer_bytes", len(answer),
		"elapsed", time.Since(start),
	)

	return answer, nil
}
