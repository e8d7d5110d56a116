package cli

import (
	"fmt"

	"github.com/riordanpawley/selectmenu/internal/config"
	"github.com/riordanpawley/selectmenu/internal/domain"
	"github.com/spf13/cobra"
)

// resolveConfig loads the config file and applies flags the user set
func resolveConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFile(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}

	if changed("options") {
		cfg.OptionsFile = f.optionsFile
	}
	if changed("label") {
		cfg.Label = f.label
	}
	if changed("offset") {
		cfg.Overlay.Offset = f.offset
	}
	if changed("exit-on-select") {
		cfg.ExitOnSelect = f.exitOnSelect
	}
	if changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveOptions prefers label=value arguments over an options file
func resolveOptions(args []string, optionsFile string) ([]domain.Option, error) {
	if len(args) > 0 {
		return domain.ParseOptions(args)
	}
	if optionsFile != "" {
		return domain.LoadOptions(optionsFile)
	}
	return nil, fmt.Errorf("pass label=value arguments or --options: %w", domain.ErrNoOptions)
}
