package rag

// Namespaces is the fixed, ordered set of index partitions searched for
// every query. Assembly order always follows this slice, regardless of
// which retrieval finishes first.
var Namespaces = []string{"key_words", "general_text", "tables"}

// TopK is the number of hits requested per namespace per query.
const TopK = 5

// Hit is one retrieved passage. Optional fields that the index did not
// return stay at their zero value (nil Score, empty strings) and render as
// the "N/A" sentinel during context assembly.
type Hit struct {
	ID         string
	Score      *float64
	PageNumber string
	Header     string
	Content    string
}

// NamespaceResult holds the hits for one namespace, in the order the
// backing index ranked them. No client-side re-ranking happens anywhere.
type NamespaceResult struct {
	Namespace string
	Hits      []Hit
}

// Score returns a *float64 for use in Hit literals.
func Score(v float64) *float64 { return &v }
