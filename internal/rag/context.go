package rag

import (
	"fmt"
	"strings"
)

// naSentinel replaces any field the index did not return. Missing metadata
// must never fail a query.
const naSentinel = "N/A"

// AssembleContext formats the retrieved hits into the grounding text for the
// prompt. It is a pure function: same hits in the same order always produce
// a byte-identical string.
//
// Layout: one block per hit (ID/SCORE/PAGE_NUMBER line, TEXT_HEADER line,
// TEXT_CONTENT line), hits inside a namespace joined with a blank line,
// namespace blocks joined with a blank line in the fixed Namespaces order.
// Nothing is deduplicated: a passage indexed under two namespaces appears
// twice.
func AssembleContext(results []NamespaceResult) string {
	blocks := make([]string, len(results))
	for i, res := range results {
		blocks[i] = formatNamespace(res)
	}
	return strings.Join(blocks, "\n\n")
}

// formatNamespace renders one namespace's hits. Zero hits render as an
// empty block so the namespace still occupies its slot in the join.
func formatNamespace(res NamespaceResult) string {
	formatted := make([]string, len(res.Hits))
	for i, hit := range res.Hits {
		formatted[i] = formatHit(hit)
	}
	return strings.Join(formatted, "\n\n")
}

func formatHit(h Hit) string {
	return fmt.Sprintf("ID: %s | SCORE: %s | PAGE_NUMBER: %s\nTEXT_HEADER: %s\nTEXT_CONTENT: %s",
		orNA(h.ID),
		formatScore(h.Score),
		orNA(h.PageNumber),
		orNA(h.Header),
		orNA(h.Content),
	)
}

// formatScore renders a relevance score with exactly two decimal places,
// or the sentinel when the index returned none.
func formatScore(score *float64) string {
	if score == nil {
		return naSentinel
	}
	return fmt.Sprintf("%.2f", *score)
}

func orNA(s string) string {
	if s == "" {
		return naSentinel
	}
	return s
}
