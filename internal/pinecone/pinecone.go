// Package pinecone adapts the Pinecone serverless search API to the
// pipeline's Searcher port.
package pinecone

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iolobot/iolo/internal/log"
	"github.com/iolobot/iolo/internal/rag"
	pc "github.com/pinecone-io/go-pinecone/v4/pinecone"
)

// Config holds what the adapter needs to reach the index.
type Config struct {
	APIKey     string
	IndexName  string
	Namespaces []string
}

// Searcher implements rag.Searcher over Pinecone. One index connection is
// opened per fixed namespace at startup; connections are read-only and safe
// for concurrent use, so simultaneous queries share them freely.
type Searcher struct {
	conns  map[string]*pc.IndexConnection
	logger log.Logger
}

// New connects to the index and opens one connection per namespace.
func New(ctx context.Context, cfg Config, logger log.Logger) (*Searcher, error) {
	client, err := pc.NewClient(pc.NewClientParams{ApiKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := client.DescribeIndex(ctx, cfg.IndexName)
	if err != nil {
		return nil, fmt.Errorf("describing index %q: %w", cfg.IndexName, err)
	}

	conns := make(map[string]*pc.IndexConnection, len(cfg.Namespaces))
	for _, namespace := range cfg.Namespaces {
		conn, err := client.Index(pc.NewIndexConnParams{
			Host:      idx.Host,
			Namespace: namespace,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to namespace %q: %w", namespace, err)
		}
		conns[namespace] = conn
	}

	logger.Info("connected to index", "index", cfg.IndexName, "namespaces", len(conns))

	return &Searcher{conns: conns, logger: logger}, nil
}

// Search runs one text similarity search against a namespace. Results come
// back in the index's relevance order and are mapped to rag.Hit unmodified.
func (s *Searcher) Search(ctx context.Context, namespace, query string, topK int) ([]rag.Hit, error) {
	conn, ok := s.conns[namespace]
	if !ok {
		return nil, fmt.Errorf("no connection for namespace %q", namespace)
	}

	res, err := conn.SearchRecords(ctx, &pc.SearchRecordsRequest{
		Query: pc.SearchRecordsQuery{
			TopK: int32(topK),
			Inputs: &map[string]interface{}{
				"text": query,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("searching namespace %q: %w", namespace, err)
	}

	hits := make([]rag.Hit, 0, len(res.Result.Hits))
	for _, h := range res.Result.Hits {
		hits = append(hits, toHit(h))
	}
	return hits, nil
}

// toHit maps one Pinecone hit to the domain shape. Fields the index did not
// store stay empty and render as "N/A" during assembly.
func toHit(h pc.Hit) rag.Hit {
	return rag.Hit{
		ID:         h.Id,
		Score:      rag.Score(float64(h.Score)),
		PageNumber: fieldString(h.Fields, "page_number"),
		Header:     fieldString(h.Fields, "topic"),
		Content:    fieldString(h.Fields, "chunk_text"),
	}
}

// fieldString extracts a record field as text. Page numbers arrive as JSON
// numbers, so numeric values are rendered too; anything absent or unusable
// yields "".
func fieldString(fields map[string]interface{}, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
