package vrop

// MergeMessages concatenates message sequences in the order the sequences
// are supplied, preserving each sequence's internal order and duplicates.
// Nil and empty sequences contribute nothing.
func MergeMessages[E any](seqs ...[]E) []E {
	n := 0
	for _, s := range seqs {
		n += len(s)
	}
	out := make([]E, 0, n)
	for _, s := range seqs {
		out = append(out, s...)
	}
	return out
}
