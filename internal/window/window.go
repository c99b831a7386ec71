// Package window provides the window store: one bucket per window length,
// where a bucket is either a full record (sequence, methylation score,
// frequency and index kept in parallel) or a raw list of sequences.
package window

// Bucket is implemented by the two bucket representations. Transforms only
// ever touch the sequence field; everything else is carried by the bucket.
type Bucket[B any] interface {
	// Sequences returns the sequence field, or false when the bucket has none.
	Sequences() ([]string, bool)
	// WithSequences returns a copy of the bucket with its sequences replaced.
	// seqs must have the same length as the current sequence field.
	WithSequences(seqs []string) B
	// Subset returns a bucket holding only the given rows, in the given order.
	Subset(rows []int) B
}

// Record is a full window record. Row i of Seq, Methyl, Freq and Index
// describes one observation.
//
// A nil Seq means the record carries no sequence field at all; a record
// filtered down to nothing has four empty, non-nil slices.
type Record struct {
	Seq    []string  `json:"Seq"`
	Methyl []float64 `json:"Methyl"`
	Freq   []int     `json:"Freq"`
	Index  []int     `json:"Index"`
}

// NewRecord builds a record and checks that all four fields line up.
func NewRecord(seq []string, methyl []float64, freq []int, index []int) (*Record, error) {
	r := &Record{Seq: seq, Methyl: methyl, Freq: freq, Index: index}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// EmptyRecord returns a record with all four fields present and empty.
func EmptyRecord() Record {
	return Record{
		Seq:    []string{},
		Methyl: []float64{},
		Freq:   []int{},
		Index:  []int{},
	}
}

// Len returns the number of rows.
func (r Record) Len() int {
	return len(r.Seq)
}

// Validate checks the alignment invariant and that counts are non-negative.
// A record without a sequence field is checked on its remaining fields.
func (r Record) Validate() error {
	n := len(r.Seq)
	if r.Seq == nil {
		n = len(r.Methyl)
	}
	if len(r.Methyl) != n {
		return &MisalignedError{Field: "Methyl", Want: n, Got: len(r.Methyl)}
	}
	if len(r.Freq) != n {
		return &MisalignedError{Field: "Freq", Want: n, Got: len(r.Freq)}
	}
	if len(r.Index) != n {
		return &MisalignedError{Field: "Index", Want: n, Got: len(r.Index)}
	}
	for i, f := range r.Freq {
		if f < 0 {
			return &NegativeFreqError{Row: i, Value: f}
		}
	}
	return nil
}

// Sequences returns Seq, reporting false when the record has no Seq field.
func (r Record) Sequences() ([]string, bool) {
	return r.Seq, r.Seq != nil
}

// WithSequences returns a record with Seq replaced and the other fields shared.
func (r Record) WithSequences(seqs []string) Record {
	return Record{
		Seq:    seqs,
		Methyl: r.Methyl,
		Freq:   r.Freq,
		Index:  r.Index,
	}
}

// Subset returns a record holding the given rows of all four fields. The
// record must be aligned, as built by NewRecord or a decoder; see Validate.
func (r Record) Subset(rows []int) Record {
	out := Record{
		Seq:    make([]string, 0, len(rows)),
		Methyl: make([]float64, 0, len(rows)),
		Freq:   make([]int, 0, len(rows)),
		Index:  make([]int, 0, len(rows)),
	}
	for _, i := range rows {
		out.Seq = append(out.Seq, r.Seq[i])
		out.Methyl = append(out.Methyl, r.Methyl[i])
		out.Freq = append(out.Freq, r.Freq[i])
		out.Index = append(out.Index, r.Index[i])
	}
	return out
}

// Raw is a raw window bucket: sequences only.
type Raw []string

// Sequences returns the bucket itself; a raw bucket always has sequences.
func (r Raw) Sequences() ([]string, bool) {
	return r, true
}

// WithSequences returns seqs as a raw bucket.
func (r Raw) WithSequences(seqs []string) Raw {
	return Raw(seqs)
}

// Subset returns a new bucket holding the given rows in order.
func (r Raw) Subset(rows []int) Raw {
	out := make(Raw, 0, len(rows))
	for _, i := range rows {
		out = append(out, r[i])
	}
	return out
}

// Store holds one optional bucket per window length. The bucket for window
// length w lives at position w-1; a nil entry means no data for that length.
type Store[B any] []*B

// Full is a store of full window records.
type Full = Store[Record]

// Tot is a store of raw window buckets.
type Tot = Store[Raw]

// NewStore returns a store with room for window lengths 1..wMax, all absent.
func NewStore[B any](wMax int) Store[B] {
	if wMax < 0 {
		wMax = 0
	}
	return make(Store[B], wMax)
}

// At returns the bucket for window length w. Lengths below 1, past the end
// of the store, or without data report false.
func (s Store[B]) At(w int) (*B, bool) {
	if w < 1 || w > len(s) || s[w-1] == nil {
		return nil, false
	}
	return s[w-1], true
}

// Set stores b as the bucket for window length w, growing the store if needed.
func (s Store[B]) Set(w int, b B) Store[B] {
	if w < 1 {
		return s
	}
	for len(s) < w {
		s = append(s, nil)
	}
	s[w-1] = &b
	return s
}

// Clone returns a new store sharing the existing buckets. Buckets are never
// modified in place, so replacing a slot in the clone leaves s untouched.
func (s Store[B]) Clone() Store[B] {
	if s == nil {
		return nil
	}
	out := make(Store[B], len(s))
	copy(out, s)
	return out
}

// Windows returns the window lengths that currently hold a bucket.
func (s Store[B]) Windows() []int {
	var ws []int
	for i, b := range s {
		if b != nil {
			ws = append(ws, i+1)
		}
	}
	return ws
}

// Validate checks every present full record in the store.
func Validate(s Full) error {
	for i, r := range s {
		if r == nil {
			continue
		}
		if err := r.Validate(); err != nil {
			return &WindowError{Window: i + 1, Err: err}
		}
	}
	return nil
}
