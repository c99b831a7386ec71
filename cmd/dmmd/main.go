// Command dmmd prepares windowed DNA sequence and methylation datasets.
//
// Usage:
//
//	dmmd [command] [options]
//
// Commands:
//
//	shift       Displace target coordinates in chromosome tables
//	fasta       Read chromosome FASTA files
//	revcomp     Reverse complement a window store
//	gaps        Drop gapped sequences from a window store
//	summary     Summarize a window store
//	version     Show version information
//
// Settings come from --config, DMMD_* environment variables and flags, in
// increasing order of precedence.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmmd-lab/dmmd-go/internal/config"
	"github.com/dmmd-lab/dmmd-go/pkg/dmmd"
)

type app struct {
	v        *viper.Viper
	cfgFile  string
	logLevel string
	logJSON  bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:          "dmmd",
		Short:        "Prepare windowed DNA sequence and methylation datasets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "Config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "Log as JSON")

	root.AddCommand(
		a.shiftCommand(),
		a.fastaCommand(),
		a.windowCommand("revcomp", "Reverse complement the window span of every sequence", opRevcomp),
		a.windowCommand("gaps", "Drop sequences containing n or N", opGaps),
		a.summaryCommand(),
		versionCommand(),
	)

	return root
}

func (a *app) setup() error {
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	if a.logJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", a.cfgFile, err)
		}
		logrus.WithField("config", a.v.ConfigFileUsed()).Debug("loaded config")
	}
	return nil
}

// bind maps command flags onto config keys so that set flags override the
// config file and environment. Commands bind from RunE because several of
// them share a key.
func (a *app) bind(cmd *cobra.Command, keys map[string]string) error {
	for flag, key := range keys {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) config() (*config.Config, error) {
	return config.FromViper(a.v)
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), dmmd.Info())
		},
	}
}
