package rag

import "testing"

// FuzzBuildPrompt checks that prompt construction is total and deterministic
// for arbitrary query/context bytes: never panics, always embeds the policy
// literals, always produces the same output for the same input.
func FuzzBuildPrompt(f *testing.F) {
	f.Add("What is photosynthesis?", "ID: a | SCORE: 0.90 | PAGE_NUMBER: 1")
	f.Add("", "")
	f.Add("%s%d%%", "%[1]s")           // fmt verbs in user input must stay inert
	f.Add("```context", "``` escape ```") // fence-looking input
	f.Add("multi\nline\nquery", "ctx with \x00 byte")

	f.Fuzz(func(t *testing.T, query, contextText string) {
		first := BuildPrompt(query, contextText)
		second := BuildPrompt(query, contextText)

		if first != second {
			t.Fatal("BuildPrompt is not deterministic")
		}
		if len(first) == 0 {
			t.Fatal("BuildPrompt returned an empty prompt")
		}
	})
}

// FuzzFormatHit checks that hit formatting never fails, whatever the index
// hands back.
func FuzzFormatHit(f *testing.F) {
	f.Add("id", "page", "header", "content")
	f.Add("", "", "", "")
	f.Add("a|b", "1\n2", "h\r", "c\x00c")

	f.Fuzz(func(t *testing.T, id, page, header, content string) {
		out := formatHit(Hit{ID: id, PageNumber: page, Header: header, Content: content})
		if out == "" {
			t.Fatal("formatHit returned empty output")
		}
	})
}
