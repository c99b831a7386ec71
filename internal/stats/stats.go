// Package stats provides summaries of window stores and chromosome sequence
// sets, used to check datasets before and after the window transforms.
package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/dmmd-lab/dmmd-go/internal/sequence"
	"github.com/dmmd-lab/dmmd-go/internal/window"
)

// WindowStats summarizes one window bucket.
type WindowStats struct {
	Window     int     `json:"window"`
	Rows       int     `json:"rows"`
	GappedRows int     `json:"gapped_rows"`
	MinLength  int     `json:"min_length"`
	MaxLength  int     `json:"max_length"`
	MeanLength float64 `json:"mean_length"`
	// The fields below are only filled for full records.
	TotalFreq  int     `json:"total_freq,omitempty"`
	MeanMethyl float64 `json:"mean_methyl,omitempty"`
	StdMethyl  float64 `json:"std_methyl,omitempty"`
}

func (s *WindowStats) String() string {
	return fmt.Sprintf("window %d: %d rows (%d gapped), length %d-%d, mean methyl %.4f",
		s.Window, s.Rows, s.GappedRows, s.MinLength, s.MaxLength, s.MeanMethyl)
}

// SummarizeFull summarizes every present window of a full store. The
// methylation mean and standard deviation are weighted by Freq; when all
// counts are zero they fall back to unweighted values.
func SummarizeFull(s window.Full) []WindowStats {
	out := make([]WindowStats, 0, len(s))
	for _, w := range s.Windows() {
		r, _ := s.At(w)
		ws := sequenceStats(w, r.Seq)

		weights := make([]float64, len(r.Freq))
		for i, f := range r.Freq {
			weights[i] = float64(f)
			ws.TotalFreq += f
		}
		if ws.TotalFreq == 0 {
			weights = nil
		}
		if len(r.Methyl) > 0 {
			mean, std := stat.MeanStdDev(r.Methyl, weights)
			ws.MeanMethyl = finite(mean)
			ws.StdMethyl = finite(std)
		}
		out = append(out, ws)
	}
	return out
}

// SummarizeRaw summarizes every present window of a raw store.
func SummarizeRaw(s window.Tot) []WindowStats {
	out := make([]WindowStats, 0, len(s))
	for _, w := range s.Windows() {
		b, _ := s.At(w)
		out = append(out, sequenceStats(w, *b))
	}
	return out
}

func sequenceStats(w int, seqs []string) WindowStats {
	ws := WindowStats{Window: w, Rows: len(seqs)}
	if len(seqs) == 0 {
		return ws
	}

	lengths := make([]float64, len(seqs))
	ws.MinLength = len(seqs[0])
	for i, seq := range seqs {
		n := len(seq)
		lengths[i] = float64(n)
		if n < ws.MinLength {
			ws.MinLength = n
		}
		if n > ws.MaxLength {
			ws.MaxLength = n
		}
		if sequence.HasGap(seq) {
			ws.GappedRows++
		}
	}
	ws.MeanLength = stat.Mean(lengths, nil)
	return ws
}

// finite maps NaN and infinities, which gonum returns for degenerate inputs
// such as a single observation, to zero.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// SequenceSetStats represents aggregated statistics for one chromosome's
// sequence list.
type SequenceSetStats struct {
	Count      int     `json:"count"`
	TotalBases int     `json:"total_bases"`
	MinLength  int     `json:"min_length"`
	MaxLength  int     `json:"max_length"`
	MeanLength float64 `json:"mean_length"`
	N50        int     `json:"n50"`
	GapBases   int     `json:"gap_bases"`
}

// FromSequences calculates statistics for a sequence list. An empty list
// yields a zero summary.
func FromSequences(seqs []string) *SequenceSetStats {
	st := &SequenceSetStats{Count: len(seqs)}
	if len(seqs) == 0 {
		return st
	}

	lengths := make([]int, len(seqs))
	st.MinLength = len(seqs[0])
	for i, seq := range seqs {
		n := len(seq)
		lengths[i] = n
		st.TotalBases += n
		st.GapBases += sequence.CountGaps(seq)
		if n < st.MinLength {
			st.MinLength = n
		}
		if n > st.MaxLength {
			st.MaxLength = n
		}
	}
	st.MeanLength = float64(st.TotalBases) / float64(st.Count)
	st.N50 = n50(lengths, st.TotalBases)

	return st
}

// n50 returns the length L such that sequences of length >= L cover at least
// half of all bases.
func n50(lengths []int, total int) int {
	sorted := make([]int, len(lengths))
	copy(sorted, lengths)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	sum := 0
	for _, n := range sorted {
		sum += n
		if 2*sum >= total {
			return n
		}
	}
	return 0
}
