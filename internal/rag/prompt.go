package rag

import "fmt"

// FallbackAnswer is the exact sentence the model is directed to emit when
// the context does not support an answer. The wording, typos included, is
// fixed; do not correct it.
const FallbackAnswer = "Im sorry, there isnt a suitale answer to your question in the book."

// citationFormat is the exact per-source citation line the model is told to
// append after the answer.
const citationFormat = "Source: \n ID: [ID], SCORE: [SCORE],HEADER:[TEXT_HEADER] PAGE_NUMBER: [PAGE_NUMBER]"

// promptTemplate embeds the user query (%[1]s) and the assembled context
// (%[2]s) into the fixed instruction policy. No truncation or length capping
// is applied to the context before embedding; oversized contexts surface as
// a generation failure rather than a silently clipped answer.
const promptTemplate = `
You are a specialized AI assistant. Your sole purpose is to answer the user's query based exclusively on the provided search results. You must adhere to the following instructions without deviation.

**Instructions:**

1.  **Analyze the User's Query:** The user wants to know: "%[1]s"

2.  **Review the Provided Context:** You are given the following search results, each containing an ID, SCORE, PAGE_NUMBER, TEXT_HEADER, and TEXT_CONTENT.

    ` + "```context\n%[2]s\n```" + `

3.  **Synthesize the Answer:**
    * Formulate a descriptive answer to the user's query using *only* the information found in the TEXT_CONTENT of the provided results.
    * The answer must be more than five sentences.
    * Do not invent, infer, or use any information outside of the provided context.
    * If you couldn't find a suitable answer to the %[1]s, just reply with "%[3]s"
4.  **Cite Your Sources:**
    * After the answer, list the sources you used.
    * For each source, you must include its ID, SCORE, and PAGE_NUMBER.
    * Format each citation exactly as: ` + "`%[4]s`" + `

**Output Mandate:**

* Your entire output must consist of two parts ONLY: the synthesized answer first, followed by the list of source citations.
* DO NOT add any introductory phrases, greetings, apologies, or concluding remarks.
* DO NOT use any formatting other than what is specified.
`

// BuildPrompt builds the instruction string sent to the model. Pure and
// deterministic: identical (query, context) inputs yield byte-identical
// prompts.
func BuildPrompt(query, contextText string) string {
	return fmt.Sprintf(promptTemplate, query, contextText, FallbackAnswer, citationFormat)
}
