package fasta

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single record wrapped",
			input: ">chr1\nACGT\nacgt\nNNaa\n",
			want:  []string{"acgtacgtnnaa"},
		},
		{
			name:  "multiple records",
			input: ">a\nAC\nGT\n>b desc\nTTTT\n>c\ngg",
			want:  []string{"acgt", "tttt", "gg"},
		},
		{
			name:  "crlf line endings",
			input: ">a\r\nAC\r\nGT\r\n",
			want:  []string{"acgt"},
		},
		{
			name:  "empty record skipped",
			input: ">a\n>b\nCC\n>c\n",
			want:  []string{"cc"},
		},
		{
			name:  "blank lines ignored",
			input: ">a\n\nAC\n\nGT\n\n",
			want:  []string{"acgt"},
		},
		{
			name:  "no header",
			input: "ACGTACGT\nACGT\n",
			want:  []string{},
		},
		{
			name:  "lines before first header dropped",
			input: "TTTT\n>a\nCCCC\n",
			want:  []string{"cccc"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "non-ascii bytes kept",
			input: ">a\nAC\xffGT\n",
			want:  []string{"ac\xffgt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			for i := range got {
				assert.Len(t, got[i], len(tt.want[i]))
			}
		})
	}
}

func TestChromosomeNames(t *testing.T) {
	assert.Equal(t,
		[]string{"chr1", "chr2", "chr3", "chrX", "chrY"},
		ChromosomeNames(3, []string{"X", "Y"}))
	assert.Equal(t, []string{"chrY", "chrX"}, ChromosomeNames(0, []string{"Y", "X"}))
	assert.Empty(t, ChromosomeNames(-1, nil))
}

func writeFasta(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestReadChromosomes(t *testing.T) {
	dir := t.TempDir()
	writeFasta(t, dir, "chr1.fa", ">chr1 part1\nACGT\nAC\n>chr1 part2\nggNN\n")
	writeFasta(t, dir, "chrX.fa", ">chrX\nTTGG\n")
	// chr2.fa is missing on purpose

	logger, hook := test.NewNullLogger()
	r := &Reader{Dir: dir, Logger: logger}

	chrs := r.ReadChromosomes(2, []string{"X"})
	require.Len(t, chrs, 3)

	assert.Equal(t, "chr1", chrs[0].Name)
	assert.Equal(t, []string{"acgtac", "ggnn"}, chrs[0].Sequences)
	assert.NoError(t, chrs[0].Err)

	assert.Equal(t, "chr2", chrs[1].Name)
	assert.Equal(t, []string{}, chrs[1].Sequences)
	require.Error(t, chrs[1].Err)
	var warn *ReadWarning
	require.True(t, errors.As(chrs[1].Err, &warn))
	assert.Equal(t, filepath.Join(dir, "chr2.fa"), warn.Path)
	assert.True(t, errors.Is(chrs[1].Err, fs.ErrNotExist))

	assert.Equal(t, "chrX", chrs[2].Name)
	assert.Equal(t, []string{"ttgg"}, chrs[2].Sequences)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "chr2", entry.Data["chromosome"])

	assert.Equal(t,
		[][]string{{"acgtac", "ggnn"}, {}, {"ttgg"}},
		Sequences(chrs))
	assert.Len(t, Warnings(chrs), 1)
}

func TestReadChromosomesAllMissing(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := &Reader{Dir: filepath.Join(t.TempDir(), "nope"), Logger: logger}

	chrs := r.ReadChromosomes(2, []string{"X", "Y"})
	require.Len(t, chrs, 4)
	for _, c := range chrs {
		assert.Empty(t, c.Sequences)
		assert.Error(t, c.Err)
	}
	assert.Len(t, hook.AllEntries(), 4)
}

func TestReadChromosomesConcurrent(t *testing.T) {
	dir := t.TempDir()
	for i, name := range ChromosomeNames(6, []string{"X"}) {
		writeFasta(t, dir, name+Extension, ">"+name+"\n"+strings.Repeat("A", i+1)+"\n")
	}

	var mu sync.Mutex
	seen := 0
	logger, _ := test.NewNullLogger()
	r := &Reader{
		Dir:     dir,
		Logger:  logger,
		Workers: 3,
		OnChromosome: func(Chromosome) {
			mu.Lock()
			seen++
			mu.Unlock()
		},
	}

	chrs := r.ReadChromosomes(6, []string{"X"})
	require.Len(t, chrs, 7)
	for i, c := range chrs {
		assert.Equal(t, []string{strings.Repeat("a", i+1)}, c.Sequences, c.Name)
	}
	assert.Equal(t, 7, seen)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "chr1.fa"))
	require.Error(t, err)
}

func BenchmarkParse(b *testing.B) {
	input := ">chr1\n" + strings.Repeat(strings.Repeat("ACGT", 15)+"\n", 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(strings.NewReader(input))
	}
}
