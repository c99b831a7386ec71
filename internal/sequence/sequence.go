// Package sequence provides the DNA alphabet operations used by the window
// transforms: base complement, prefix-limited reverse complement and the
// ambiguity checks behind gap filtering.
//
// Sequences are handled as byte strings. Only the eight bases a, c, g, t and
// A, C, G, T are complemented; every other byte, including the ambiguity
// marker N, passes through unchanged.
package sequence

// complementTable maps every byte to its complement. Bytes outside the DNA
// alphabet map to themselves.
var complementTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	pairs := []struct{ a, b byte }{
		{'a', 't'}, {'c', 'g'},
		{'A', 'T'}, {'C', 'G'},
	}
	for _, p := range pairs {
		t[p.a] = p.b
		t[p.b] = p.a
	}
	return t
}()

// Complement returns the complement of a single base (A<->T, C<->G), keeping
// its case.
func Complement(b byte) byte {
	return complementTable[b]
}

// ComplementString complements every base of seq without reversing it.
func ComplementString(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = complementTable[seq[i]]
	}
	return string(out)
}

// ReverseComplementPrefix returns the reverse complement of the first n bases
// of seq. Bases past n are dropped, so the result is min(n, len(seq)) long.
func ReverseComplementPrefix(seq string, n int) string {
	if n < 0 {
		n = 0
	}
	if n > len(seq) {
		n = len(seq)
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = complementTable[seq[i]]
	}
	return string(out)
}

// ReverseComplement returns the reverse complement of the whole sequence.
func ReverseComplement(seq string) string {
	return ReverseComplementPrefix(seq, len(seq))
}

// WindowSpan returns the number of meaningful bases stored for window length
// w: the site, w flanking bases on each side and two boundary bases.
func WindowSpan(w int) int {
	return 2*w + 2
}
