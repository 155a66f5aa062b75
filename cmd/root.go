package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/datadash-cli/internal/analyzer"
	cfgpkg "github.com/KaramelBytes/datadash-cli/internal/config"
)

var (
	// Global flags (wired to config/viper)
	cfgFile    string
	flagOutDir string
	flagSeed   uint64
	flagRows   int
	flagNoShow bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd *cobra.Command

// ensureRootCmd lazily constructs rootCmd so that package init functions in
// any file order can safely attach subcommands to it.
func ensureRootCmd() *cobra.Command {
	if rootCmd == nil {
		rootCmd = newRootCmd()
	}
	return rootCmd
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datadash",
		Short: "DataDash CLI: synthesize a sales dataset and render an analysis dashboard",
		Long: `DataDash generates a deterministic synthetic sales dataset, computes
descriptive statistics, correlations, a trend signal, and category
aggregates, then renders a four-panel dashboard image and writes a text
report. Running with no arguments executes the full pipeline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg == nil {
				c, err := cfgpkg.Load(cfgFile)
				if err != nil {
					// Non-fatal, same as the OnInitialize path: warn and run
					// on the built-in defaults.
					fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: failed to load config: %v\n", err)
					c = cfgpkg.Default()
				}
				cfg = c
				applyOverrides()
			}
			analyzer.New(cfg, cmd.OutOrStdout()).Run()
			return nil
		},
	}
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	ensureRootCmd()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.datadash/config.yaml)")
	rootCmd.Flags().StringVar(&flagOutDir, "out-dir", "", "output directory (overrides config)")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "random seed (overrides config)")
	rootCmd.Flags().IntVar(&flagRows, "rows", 0, "number of synthetic records (overrides config)")
	rootCmd.Flags().BoolVar(&flagNoShow, "no-show", false, "skip interactive figure display (always skipped; figures are only written to disk)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: the run falls back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
	applyOverrides()
}

// applyOverrides copies explicitly set CLI flags over the loaded config.
func applyOverrides() {
	f := rootCmd.Flags()
	if f.Changed("out-dir") && flagOutDir != "" {
		cfg.OutDir = flagOutDir
	}
	if f.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if f.Changed("rows") && flagRows > 0 {
		cfg.Rows = flagRows
	}
}
