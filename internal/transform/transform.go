// Package transform applies the per-window sequence transforms to a window
// store: prefix reverse complementation and ambiguity (gap) filtering.
//
// Both transforms walk the inclusive window range [wMin, wMax] and return a
// new store. Windows outside the range, absent windows and buckets without a
// sequence field are carried over as they are.
package transform

import (
	"github.com/dmmd-lab/dmmd-go/internal/sequence"
	"github.com/dmmd-lab/dmmd-go/internal/window"
)

// apply calls fn for every present bucket with a sequence field in
// [wMin, wMax] and stores its result in a copy of s.
func apply[B window.Bucket[B]](s window.Store[B], wMin, wMax int, fn func(w int, b B, seqs []string) B) window.Store[B] {
	out := s.Clone()
	for w := wMin; w <= wMax; w++ {
		b, ok := out.At(w)
		if !ok {
			continue
		}
		seqs, ok := (*b).Sequences()
		if !ok {
			continue
		}
		next := fn(w, *b, seqs)
		out[w-1] = &next
	}
	return out
}

// ReverseComplement replaces every sequence of window w by the reverse
// complement of its first 2w+2 bases. Other fields keep their order.
func ReverseComplement[B window.Bucket[B]](s window.Store[B], wMin, wMax int) window.Store[B] {
	return apply(s, wMin, wMax, func(w int, b B, seqs []string) B {
		span := sequence.WindowSpan(w)
		rev := make([]string, len(seqs))
		for i, seq := range seqs {
			rev[i] = sequence.ReverseComplementPrefix(seq, span)
		}
		return b.WithSequences(rev)
	})
}

// validator is implemented by buckets whose parallel fields can disagree.
type validator interface {
	Validate() error
}

// FilterGaps drops every row whose sequence contains n or N, keeping the
// remaining rows in order across all fields. A bucket that loses every row
// becomes an empty bucket rather than an absent one. A bucket that fails
// validation cannot be filtered row by row and is carried over unchanged.
func FilterGaps[B window.Bucket[B]](s window.Store[B], wMin, wMax int) window.Store[B] {
	return apply(s, wMin, wMax, func(_ int, b B, seqs []string) B {
		if v, ok := any(b).(validator); ok && v.Validate() != nil {
			return b
		}
		keep := make([]int, 0, len(seqs))
		for i, seq := range seqs {
			if !sequence.HasGap(seq) {
				keep = append(keep, i)
			}
		}
		return b.Subset(keep)
	})
}

// ReverseComplementFull reverse complements a store of full records.
func ReverseComplementFull(s window.Full, wMin, wMax int) window.Full {
	return ReverseComplement(s, wMin, wMax)
}

// ReverseComplementRaw reverse complements a store of raw buckets.
func ReverseComplementRaw(s window.Tot, wMin, wMax int) window.Tot {
	return ReverseComplement(s, wMin, wMax)
}

// FilterGapsFull gap-filters a store of full records.
func FilterGapsFull(s window.Full, wMin, wMax int) window.Full {
	return FilterGaps(s, wMin, wMax)
}

// FilterGapsRaw gap-filters a store of raw buckets.
func FilterGapsRaw(s window.Tot, wMin, wMax int) window.Tot {
	return FilterGaps(s, wMin, wMax)
}
