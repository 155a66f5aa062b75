package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure. Defaults reproduce the standard demo run;
// a config file or DATADASH_* env vars may override them.
type Global struct {
	OutDir        string  `mapstructure:"out_dir" yaml:"out_dir"`
	Seed          uint64  `mapstructure:"seed" yaml:"seed"`
	Rows          int     `mapstructure:"rows" yaml:"rows"`
	StartDate     string  `mapstructure:"start_date" yaml:"start_date"`
	MAWindow      int     `mapstructure:"ma_window" yaml:"ma_window"`
	CorrThreshold float64 `mapstructure:"corr_threshold" yaml:"corr_threshold"`
	HistBins      int     `mapstructure:"hist_bins" yaml:"hist_bins"`
	DPI           int     `mapstructure:"dpi" yaml:"dpi"`
}

// Default returns the built-in configuration without consulting disk or env.
func Default() *Global {
	return &Global{
		OutDir:        "outputs",
		Seed:          42,
		Rows:          100,
		StartDate:     "2024-01-01",
		MAWindow:      7,
		CorrThreshold: 0.5,
		HistBins:      20,
		DPI:           300,
	}
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.datadash/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".datadash")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATADASH")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("out_dir", "outputs")
	v.SetDefault("seed", 42)
	v.SetDefault("rows", 100)
	v.SetDefault("start_date", "2024-01-01")
	v.SetDefault("ma_window", 7)
	v.SetDefault("corr_threshold", 0.5)
	v.SetDefault("hist_bins", 20)
	v.SetDefault("dpi", 300)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".datadash")
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
