package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// buildSettings mirrors the library builder knobs one-to-one so they can be
// populated from flags, environment variables, or a configuration file.
type buildSettings struct {
	Input       string `mapstructure:"input"`
	Separator   string `mapstructure:"separator"`
	RowLabelCol int    `mapstructure:"row_label_col"`
	ColLabelCol int    `mapstructure:"col_label_col"`
	DataCol     int    `mapstructure:"data_col"`
	RowIndexCol int    `mapstructure:"row_index_col"`
	ColIndexCol int    `mapstructure:"col_index_col"`
	Labels      string `mapstructure:"labels"`
	Symmetric   bool   `mapstructure:"symmetric"`
	SkipHeader  bool   `mapstructure:"skip_header"`
	Strict      bool   `mapstructure:"strict_indices"`
}

func init() {
	// Bind command-line flags
	pflag.String("input", "", "Path to the input file (optionally gzip-compressed)")
	pflag.String("separator", "", "Single-character field separator; empty to infer from the extension")
	pflag.Int("row-label-col", 0, "0-based column holding row labels")
	pflag.Int("col-label-col", 1, "0-based column holding column labels")
	pflag.Int("data-col", 2, "0-based column holding the numeric value")
	pflag.Int("row-index-col", -1, "0-based column holding explicit row indices (-1 to disable)")
	pflag.Int("col-index-col", -1, "0-based column holding explicit column indices (-1 to disable)")
	pflag.String("labels", "", "Comma-separated label list; switches to single-column input")
	pflag.Bool("symmetric", false, "Mirror every (row,col,value) entry into (col,row)")
	pflag.Bool("skip-header", false, "Skip the first non-comment line")
	pflag.Bool("strict-indices", false, "Fail when a label is re-assigned to a different explicit index")
	pflag.String("config", "", "Path to an optional configuration file")

	f := pflag.CommandLine
	normalizeFunc := f.GetNormalizeFunc()
	f.SetNormalizeFunc(func(fs *pflag.FlagSet, name string) pflag.NormalizedName {
		result := normalizeFunc(fs, name)
		name = strings.ReplaceAll(string(result), "-", "_")
		return pflag.NormalizedName(name)
	})
}

// loadSettings resolves flags, environment and (optionally) a config file
// into a buildSettings value. Flags win over the file; both win over env.
func loadSettings() (buildSettings, error) {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Parse command-line flags
	pflag.Parse()

	// Bind command-line flags to Viper
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		return buildSettings{}, fmt.Errorf("bind flags: %w", err)
	}

	// Bind environment variables
	viper.AutomaticEnv()

	// Read configuration file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return buildSettings{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	// Unmarshal configuration into struct
	var settings buildSettings
	if err := viper.Unmarshal(&settings); err != nil {
		return buildSettings{}, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return settings, nil
}
