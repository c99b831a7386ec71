package dmmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftCoordinates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumChr = 2
	cfg.CooDis = 1

	tables := []dataframe.DataFrame{
		dataframe.New(series.New([]int{1, 5, 10}, series.Int, CoordinateColumn)),
		dataframe.New(series.New([]int{2, 7, 20}, series.Int, CoordinateColumn)),
	}

	got, err := ShiftCoordinates(cfg, tables)
	require.NoError(t, err)
	require.Len(t, got, 2)

	first, err := got[0].Col(CoordinateColumn).Int()
	require.NoError(t, err)
	second, err := got[1].Col(CoordinateColumn).Int()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 6, 11}, first)
	assert.Equal(t, []int{3, 8, 21}, second)

	cfg.NumChr = 3
	_, err = ShiftCoordinates(cfg, tables)
	var aerr *ArityError
	assert.True(t, errors.As(err, &aerr))
}

func TestReadChromosomeSequences(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chr1.fa"), []byte(">chr1\nACGT\nNNAC\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chrX.fa"), []byte(">x1\nGG\n>x2\nTT\n"), 0o644))

	cfg := DefaultConfig()
	cfg.NumAutosomes = 1
	cfg.Allosomes = []string{"X", "Y"}
	cfg.DirFas = dir

	logger, hook := test.NewNullLogger()
	chrs := ReadChromosomes(cfg, logger)
	require.Len(t, chrs, 3)
	assert.Equal(t, []string{"acgtnnac"}, chrs[0].Sequences)
	assert.Equal(t, []string{"gg", "tt"}, chrs[1].Sequences)
	assert.Empty(t, chrs[2].Sequences)
	assert.Len(t, hook.AllEntries(), 1)
}

func TestWindowPipeline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WMin, cfg.WMax = 2, 2

	raw := RawStore{nil, &Raw{"nnnn", "nacg", "acgn"}}
	filtered := FilterGapsRaw(cfg, raw)
	require.NotNil(t, filtered[1])
	assert.Empty(t, *filtered[1])

	full := FullStore{nil, &Record{
		Seq:    []string{"acgtnaaaaa", "aaaccc"},
		Methyl: []float64{0.1, 0.2},
		Freq:   []int{1, 2},
		Index:  []int{5, 6},
	}}
	out := FilterGapsFull(cfg, ReverseComplementFull(cfg, full))
	require.NotNil(t, out[1])
	assert.Equal(t, []string{"gggttt"}, out[1].Seq)
	assert.Equal(t, []int{6}, out[1].Index)

	sum := SummarizeFull(out)
	require.Len(t, sum, 1)
	assert.Equal(t, 1, sum[0].Rows)
}

func TestStoreFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.json.sz")
	s := RawStore{&Raw{"acgt"}}

	require.NoError(t, WriteRawStore(path, s))
	got, err := ReadRawStore(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dmmd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_chr: 3\ncoo_dis: -2\nw_max: 4\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.NumChr)
	assert.Equal(t, -2, cfg.CooDis)
	assert.Equal(t, 1, cfg.WMin)
	assert.Equal(t, 4, cfg.WMax)

	require.NoError(t, os.WriteFile(path, []byte("w_min: 5\nw_max: 4\n"), 0o644))
	_, err = LoadConfig(path)
	var cerr *ConfigError
	assert.True(t, errors.As(err, &cerr))
}
