package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/datadash-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set DataDash configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("out_dir: %s\n", cfg.OutDir)
		fmt.Printf("seed: %d\n", cfg.Seed)
		fmt.Printf("rows: %d\n", cfg.Rows)
		fmt.Printf("start_date: %s\n", cfg.StartDate)
		fmt.Printf("ma_window: %d\n", cfg.MAWindow)
		fmt.Printf("corr_threshold: %.3f\n", cfg.CorrThreshold)
		fmt.Printf("hist_bins: %d\n", cfg.HistBins)
		fmt.Printf("dpi: %d\n", cfg.DPI)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "out_dir":
			cfg.OutDir = val
		case "start_date":
			cfg.StartDate = val
		case "seed":
			n, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %s", val)
			}
			cfg.Seed = n
		case "rows", "ma_window", "hist_bins", "dpi":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid %s: %s", key, val)
			}
			switch key {
			case "rows":
				cfg.Rows = n
			case "ma_window":
				cfg.MAWindow = n
			case "hist_bins":
				cfg.HistBins = n
			case "dpi":
				cfg.DPI = n
			}
		case "corr_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 || f > 1 {
				return fmt.Errorf("invalid corr_threshold: %s (use a value in [0, 1])", val)
			}
			cfg.CorrThreshold = f
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	ensureRootCmd().AddCommand(configCmd)
}
