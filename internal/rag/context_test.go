package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHit_AllFields(t *testing.T) {
	hit := Hit{
		ID:         "chunk-17",
		Score:      Score(0.8312),
		PageNumber: "42",
		Header:     "Photosynthesis",
		Content:    "Plants convert light energy.",
	}

	got := formatHit(hit)

	want := "ID: chunk-17 | SCORE: 0.83 | PAGE_NUMBER: 42\n" +
		"TEXT_HEADER: Photosynthesis\n" +
		"TEXT_CONTENT: Plants convert light energy."
	assert.Equal(t, want, got)
}

func TestFormatHit_MissingFieldsRenderSentinel(t *testing.T) {
	tests := []struct {
		name string
		hit  Hit
		want string
	}{
		{
			name: "everything missing",
			hit:  Hit{},
			want: "ID: N/A | SCORE: N/A | PAGE_NUMBER: N/A\nTEXT_HEADER: N/A\nTEXT_CONTENT: N/A",
		},
		{
			name: "score only",
			hit:  Hit{Score: Score(1)},
			want: "ID: N/A | SCORE: 1.00 | PAGE_NUMBER: N/A\nTEXT_HEADER: N/A\nTEXT_CONTENT: N/A",
		},
		{
			name: "id only",
			hit:  Hit{ID: "x"},
			want: "ID: x | SCORE: N/A | PAGE_NUMBER: N/A\nTEXT_HEADER: N/A\nTEXT_CONTENT: N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatHit(tt.hit))
		})
	}
}

func TestFormatScore_TwoDecimals(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.8312, "0.83"},
		{0.836, "0.84"},
		{0.9, "0.90"},
		{1, "1.00"},
		{0, "0.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatScore(Score(tt.score)), "score %v", tt.score)
	}
}

func TestAssembleContext_FixedNamespaceOrder(t *testing.T) {
	results := []NamespaceResult{
		{Namespace: "key_words", Hits: []Hit{{ID: "kw-1"}}},
		{Namespace: "general_text", Hits: []Hit{{ID: "gt-1"}}},
		{Namespace: "tables", Hits: []Hit{{ID: "tb-1"}}},
	}

	out := AssembleContext(results)

	kw := strings.Index(out, "ID: kw-1")
	gt := strings.Index(out, "ID: gt-1")
	tb := strings.Index(out, "ID: tb-1")
	assert.True(t, kw >= 0 && gt > kw && tb > gt,
		"blocks must appear in slice order, got positions %d %d %d", kw, gt, tb)
}

func TestAssembleContext_HitOrderPreserved(t *testing.T) {
	results := []NamespaceResult{
		{Namespace: "general_text", Hits: []Hit{
			{ID: "first", Score: Score(0.9)},
			{ID: "second", Score: Score(0.5)},
		}},
	}

	out := AssembleContext(results)
	assert.Less(t, strings.Index(out, "ID: first"), strings.Index(out, "ID: second"))
}

func TestAssembleContext_Idempotent(t *testing.T) {
	results := []NamespaceResult{
		{Namespace: "key_words", Hits: []Hit{{ID: "a", Score: Score(0.7), Content: "A"}}},
		{Namespace: "general_text", Hits: nil},
		{Namespace: "tables", Hits: []Hit{{ID: "b"}, {ID: "c"}}},
	}

	first := AssembleContext(results)
	second := AssembleContext(results)
	assert.Equal(t, first, second, "assembly must be byte-deterministic")
}

func TestAssembleContext_EmptyNamespaces(t *testing.T) {
	results := []NamespaceResult{
		{Namespace: "key_words"},
		{Namespace: "general_text"},
		{Namespace: "tables"},
	}

	// Three empty blocks joined by blank lines: still deterministic,
	// never an error.
	assert.Equal(t, "\n\n\n\n", AssembleContext(results))
}

func TestAssembleContext_NoDeduplication(t *testing.T) {
	dup := Hit{ID: "shared", Content: "same passage"}
	results := []NamespaceResult{
		{Namespace: "key_words", Hits: []Hit{dup}},
		{Namespace: "general_text", Hits: []Hit{dup}},
	}

	out := AssembleContext(results)
	assert.Equal(t, 2, strings.Count(out, "ID: shared"))
}
