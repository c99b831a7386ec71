package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/go-gota/gota/dataframe"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dmmd-lab/dmmd-go/internal/coords"
	"github.com/dmmd-lab/dmmd-go/internal/fasta"
	"github.com/dmmd-lab/dmmd-go/internal/stats"
	"github.com/dmmd-lab/dmmd-go/internal/window"
	"github.com/dmmd-lab/dmmd-go/pkg/dmmd"
)

func (a *app) shiftCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "shift [flags] table.csv...",
		Short: "Displace the ColCoo column of chromosome tables",
		Long: `Reads one CSV table per chromosome, adds the coordinate offset to the
ColCoo column of the first num-chr tables and writes them to the output
directory under their original file names.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.bind(cmd, map[string]string{"num-chr": "num_chr", "coo-dis": "coo_dis"}); err != nil {
				return err
			}
			cfg, err := a.config()
			if err != nil {
				return err
			}

			tables := make([]dataframe.DataFrame, len(args))
			for i, path := range args {
				df, err := readTable(path)
				if err != nil {
					return err
				}
				tables[i] = df
			}

			shifted, err := dmmd.ShiftCoordinates(cfg, tables)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			for i, df := range shifted {
				path := filepath.Join(outDir, filepath.Base(args[i]))
				if err := writeTable(path, df); err != nil {
					return err
				}
				logrus.WithFields(logrus.Fields{"table": path, "rows": df.Nrow()}).Info("shifted coordinates")
			}
			return nil
		},
	}

	cmd.Flags().Int("num-chr", 0, "Number of chromosome tables to shift")
	cmd.Flags().Int("coo-dis", 0, "Coordinate offset")
	cmd.Flags().StringVarP(&outDir, "output", "o", "shifted", "Output directory")
	return cmd
}

func readTable(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	df, err := coords.ReadCSV(file)
	if err != nil {
		return df, fmt.Errorf("%s: %w", path, err)
	}
	return df, nil
}

func writeTable(path string, df dataframe.DataFrame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := coords.WriteCSV(file, df); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}

func (a *app) fastaCommand() *cobra.Command {
	var (
		output   string
		workers  int
		progress bool
	)

	cmd := &cobra.Command{
		Use:   "fasta",
		Short: "Read chromosome FASTA files",
		Long: `Reads chr1..chrN.fa followed by chr{allosome}.fa from the FASTA directory.
Missing files are reported and read as empty chromosomes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.bind(cmd, map[string]string{
				"dir":       "dir_fas",
				"autosomes": "num_autosomes",
				"allosomes": "allosomes",
			}); err != nil {
				return err
			}
			cfg, err := a.config()
			if err != nil {
				return err
			}

			reader := fasta.NewReader(cfg.DirFas)
			reader.Workers = workers
			if progress {
				total := len(fasta.ChromosomeNames(cfg.NumAutosomes, cfg.Allosomes))
				bar := pb.New(total).SetWriter(os.Stderr).Start()
				reader.OnChromosome = func(fasta.Chromosome) { bar.Increment() }
				defer bar.Finish()
			}
			chrs := reader.ReadChromosomes(cfg.NumAutosomes, cfg.Allosomes)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s %10s %14s %12s %12s  %s\n", "Chromosome", "Sequences", "Bases", "N50", "Gap bases", "Status")
			fmt.Fprintln(out, strings.Repeat("-", 72))
			for _, c := range chrs {
				st := stats.FromSequences(c.Sequences)
				status := "ok"
				if c.Err != nil {
					status = "missing"
				}
				fmt.Fprintf(out, "%-12s %10d %14d %12d %12d  %s\n", c.Name, st.Count, st.TotalBases, st.N50, st.GapBases, status)
			}

			if output == "" {
				return nil
			}
			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating file: %w", err)
			}
			defer file.Close()
			if err := json.NewEncoder(file).Encode(fasta.Sequences(chrs)); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			return file.Close()
		},
	}

	cmd.Flags().String("dir", ".", "Directory holding chr*.fa files")
	cmd.Flags().Int("autosomes", 22, "Number of autosomes")
	cmd.Flags().StringSlice("allosomes", []string{"X", "Y"}, "Allosome labels, in order")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the per-chromosome sequence lists as JSON")
	cmd.Flags().IntVarP(&workers, "workers", "t", 1, "Number of files read at once")
	cmd.Flags().BoolVar(&progress, "progress", false, "Show a progress bar")
	return cmd
}

type windowOp int

const (
	opRevcomp windowOp = iota
	opGaps
)

func (a *app) windowCommand(name, short string, op windowOp) *cobra.Command {
	var (
		kind   string
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Long: short + ` for windows w-min..w-max of a JSON window store.
Files ending in .sz are read and written with snappy framing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.bind(cmd, map[string]string{"w-min": "w_min", "w-max": "w_max"}); err != nil {
				return err
			}
			cfg, err := a.config()
			if err != nil {
				return err
			}
			log := logrus.WithFields(logrus.Fields{"op": name, "kind": kind, "w_min": cfg.WMin, "w_max": cfg.WMax})

			switch kind {
			case "full":
				s, err := dmmd.ReadFullStore(input)
				if err != nil {
					return err
				}
				if op == opRevcomp {
					s = dmmd.ReverseComplementFull(cfg, s)
				} else {
					s = dmmd.FilterGapsFull(cfg, s)
				}
				log.WithField("windows", len(s.Windows())).Info("transformed store")
				return dmmd.WriteFullStore(output, s)
			case "raw":
				s, err := dmmd.ReadRawStore(input)
				if err != nil {
					return err
				}
				if op == opRevcomp {
					s = dmmd.ReverseComplementRaw(cfg, s)
				} else {
					s = dmmd.FilterGapsRaw(cfg, s)
				}
				log.WithField("windows", len(s.Windows())).Info("transformed store")
				return dmmd.WriteRawStore(output, s)
			default:
				return fmt.Errorf("unknown store kind %q, use 'full' or 'raw'", kind)
			}
		},
	}

	cmd.Flags().Int("w-min", 1, "Smallest window length processed")
	cmd.Flags().Int("w-max", 10, "Largest window length processed")
	cmd.Flags().StringVarP(&kind, "kind", "k", "full", "Store kind: full or raw")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Input store (.json or .json.sz)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output store (.json or .json.sz)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}

func (a *app) summaryCommand() *cobra.Command {
	var (
		kind  string
		input string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize a window store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var windows []stats.WindowStats
			switch kind {
			case "full":
				s, err := window.ReadFullFile(input)
				if err != nil {
					return err
				}
				windows = stats.SummarizeFull(s)
			case "raw":
				s, err := window.ReadRawFile(input)
				if err != nil {
					return err
				}
				windows = stats.SummarizeRaw(s)
			default:
				return fmt.Errorf("unknown store kind %q, use 'full' or 'raw'", kind)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Window Store Summary")
			fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("-", 40))
			for i := range windows {
				fmt.Fprintln(cmd.OutOrStdout(), windows[i].String())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "full", "Store kind: full or raw")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Input store (.json or .json.sz)")
	cmd.MarkFlagRequired("input")
	return cmd
}
