// Package cli implements the selectmenu command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/riordanpawley/selectmenu/internal/app"
	"github.com/riordanpawley/selectmenu/internal/domain"
	"github.com/riordanpawley/selectmenu/internal/logging"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// flags holds the values of the persistent and root flags
type flags struct {
	configPath   string
	optionsFile  string
	label        string
	title        string
	offset       int
	exitOnSelect bool
	logFile      string
	logLevel     string
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "selectmenu [label=value ...]",
		Short: "Pick one option from a keyboard and mouse driven menu",
		Long: "selectmenu shows a dropdown menu in the terminal and prints the value of the chosen option.\n" +
			"Options come from label=value arguments or from a JSON, YAML or TOML file.",
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, f, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "config file (default ./.selectmenu.json)")
	pf.StringVarP(&f.optionsFile, "options", "o", "", "options file (.json, .yaml, .yml, .toml)")

	rf := rootCmd.Flags()
	rf.StringVarP(&f.label, "label", "l", "", "placeholder shown while nothing is selected")
	rf.StringVar(&f.title, "title", app.DefaultTitle, "title shown above the menu")
	rf.IntVar(&f.offset, "offset", 0, "rows between the trigger and the option list")
	rf.BoolVarP(&f.exitOnSelect, "exit-on-select", "x", false, "quit as soon as an option is chosen")
	rf.StringVar(&f.logFile, "log-file", "", "write debug logs to this file")
	rf.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newListCmd(f))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func runSelect(cmd *cobra.Command, f *flags, args []string) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	options, err := resolveOptions(args, cfg.OptionsFile)
	if err != nil {
		return err
	}

	logger, err := logging.Setup(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return err
	}
	defer logger.Close()

	keys := cfg.Keys.KeyMap()
	model := app.New(app.Options{
		Title:         f.title,
		Label:         cfg.Label,
		Options:       options,
		KeyMap:        &keys,
		OverlayOffset: cfg.Overlay.Offset,
		ExitOnSelect:  cfg.ExitOnSelect,
		Logger:        logger.Logger,
	})

	logger.Info("starting", "options", len(options), "exitOnSelect", cfg.ExitOnSelect)
	final, err := runTUI(model, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to run menu: %w", err)
	}

	opt, ok := final.Result()
	if !ok {
		return domain.ErrSelectionCancelled
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), opt.Value)
	return err
}

// IsCancelled reports whether err means the user left without choosing
func IsCancelled(err error) bool {
	return errors.Is(err, domain.ErrSelectionCancelled)
}

// runTUI runs the program until it quits and returns the final model. The
// menu draws on w so stdout stays free for the result.
var runTUI func(model app.Model, in io.Reader, w io.Writer) (app.Model, error) = runProgram
