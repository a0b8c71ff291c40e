package rag

import "fmt"

// RetrievalError reports a failed similarity search against one namespace.
// The pipeline never retries or degrades on it; the message boundary decides
// disposition.
type RetrievalError struct {
	Namespace string
	Err       error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed for namespace %q: %v", e.Namespace, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// GenerationError reports that the generative model call failed or returned
// unusable output.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
