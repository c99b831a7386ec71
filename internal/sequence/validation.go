package sequence

import "strings"

// GapBases are the ambiguity markers that cause a sequence to be dropped by
// the gap filter.
const GapBases = "nN"

// IsGap reports whether b is an ambiguity marker.
func IsGap(b byte) bool {
	return b == 'n' || b == 'N'
}

// HasGap reports whether seq contains at least one ambiguity marker.
func HasGap(seq string) bool {
	return strings.ContainsAny(seq, GapBases)
}

// CountGaps counts the ambiguity markers in seq.
func CountGaps(seq string) int {
	count := 0
	for i := 0; i < len(seq); i++ {
		if IsGap(seq[i]) {
			count++
		}
	}
	return count
}

// IsDNABase checks if b is one of the eight complemented bases.
func IsDNABase(b byte) bool {
	switch b {
	case 'a', 'c', 'g', 't', 'A', 'C', 'G', 'T':
		return true
	}
	return false
}
