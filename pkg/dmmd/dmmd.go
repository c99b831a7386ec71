// Package dmmd provides the public API for preparing windowed DNA sequence
// and methylation datasets.
//
// It exposes the six dataset operations: coordinate shifting, chromosome
// FASTA ingestion, and reverse complementation and gap filtering of window
// stores in their full and raw forms. Every operation takes the shared
// Config and returns new data without modifying its inputs.
//
// Example usage:
//
//	cfg, err := dmmd.LoadConfig("dmmd.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store, err := dmmd.ReadFullStore("windows.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store = dmmd.FilterGapsFull(cfg, dmmd.ReverseComplementFull(cfg, store))
package dmmd

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/sirupsen/logrus"

	"github.com/dmmd-lab/dmmd-go/internal/config"
	"github.com/dmmd-lab/dmmd-go/internal/coords"
	"github.com/dmmd-lab/dmmd-go/internal/fasta"
	"github.com/dmmd-lab/dmmd-go/internal/stats"
	"github.com/dmmd-lab/dmmd-go/internal/transform"
	"github.com/dmmd-lab/dmmd-go/internal/window"
)

// Re-export types for convenience
type (
	Config          = config.Config
	Record          = window.Record
	Raw             = window.Raw
	FullStore       = window.Full
	RawStore        = window.Tot
	Chromosome      = fasta.Chromosome
	WindowStats     = stats.WindowStats
	ArityError      = coords.ArityError
	SchemaError     = coords.SchemaError
	ReadWarning     = fasta.ReadWarning
	ConfigError     = config.ConfigError
	MisalignedError = window.MisalignedError
)

// CoordinateColumn is the name of the coordinate column shifted by
// ShiftCoordinates.
const CoordinateColumn = coords.Column

// LoadConfig loads settings from an optional file and DMMD_* variables.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return config.Default()
}

// ShiftCoordinates adds cfg.CooDis to the ColCoo column of the first
// cfg.NumChr tables and returns those tables.
func ShiftCoordinates(cfg *Config, tables []dataframe.DataFrame) ([]dataframe.DataFrame, error) {
	return coords.Shift(tables, cfg.NumChr, cfg.CooDis)
}

// ReadChromosomeSequences reads chr1..chrN and the allosome files under
// cfg.DirFas. Unreadable files yield empty lists and a logged warning.
func ReadChromosomeSequences(cfg *Config) [][]string {
	return fasta.Sequences(ReadChromosomes(cfg, nil))
}

// ReadChromosomes is like ReadChromosomeSequences but keeps the chromosome
// names, paths and read errors. A nil logger logs to the standard logger.
func ReadChromosomes(cfg *Config, logger logrus.FieldLogger) []Chromosome {
	r := fasta.NewReader(cfg.DirFas)
	if logger != nil {
		r.Logger = logger
	}
	return r.ReadChromosomes(cfg.NumAutosomes, cfg.Allosomes)
}

// ReverseComplementFull reverse complements the sequences of windows
// cfg.WMin..cfg.WMax, keeping the first 2w+2 bases of each.
func ReverseComplementFull(cfg *Config, s FullStore) FullStore {
	return transform.ReverseComplementFull(s, cfg.WMin, cfg.WMax)
}

// ReverseComplementRaw is ReverseComplementFull for raw sequence buckets.
func ReverseComplementRaw(cfg *Config, s RawStore) RawStore {
	return transform.ReverseComplementRaw(s, cfg.WMin, cfg.WMax)
}

// FilterGapsFull drops rows containing n or N from windows
// cfg.WMin..cfg.WMax, keeping all four record fields aligned.
func FilterGapsFull(cfg *Config, s FullStore) FullStore {
	return transform.FilterGapsFull(s, cfg.WMin, cfg.WMax)
}

// FilterGapsRaw is FilterGapsFull for raw sequence buckets.
func FilterGapsRaw(cfg *Config, s RawStore) RawStore {
	return transform.FilterGapsRaw(s, cfg.WMin, cfg.WMax)
}

// ReadFullStore reads a JSON (or snappy-framed .sz) store of full records.
func ReadFullStore(path string) (FullStore, error) {
	return window.ReadFullFile(path)
}

// ReadRawStore reads a JSON (or snappy-framed .sz) store of raw buckets.
func ReadRawStore(path string) (RawStore, error) {
	return window.ReadRawFile(path)
}

// WriteFullStore writes a store of full records to path.
func WriteFullStore(path string, s FullStore) error {
	return window.WriteFile(path, s)
}

// WriteRawStore writes a store of raw buckets to path.
func WriteRawStore(path string, s RawStore) error {
	return window.WriteFile(path, s)
}

// SummarizeFull returns per-window statistics of a full store.
func SummarizeFull(s FullStore) []WindowStats {
	return stats.SummarizeFull(s)
}

// SummarizeRaw returns per-window statistics of a raw store.
func SummarizeRaw(s RawStore) []WindowStats {
	return stats.SummarizeRaw(s)
}

// Version returns the dmmd version.
func Version() string {
	return "1.0.0"
}

// Info returns information about dmmd.
func Info() string {
	return fmt.Sprintf(`dmmd v%s - methylation window dataset preparation

Features:
  - Coordinate displacement of per-chromosome target tables
  - Multi-FASTA ingestion of autosomes and allosomes
  - Window-span reverse complementation (2w+2 bases)
  - Ambiguity (N) filtering with aligned record fields
  - Per-window summaries
`, Version())
}
