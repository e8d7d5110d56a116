package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

// maxLabelWidth caps the LABEL column, in terminal cells
const maxLabelWidth = 60

func newListCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list [label=value ...]",
		Short: "Print the parsed options as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			options, err := resolveOptions(args, cfg.OptionsFile)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "INDEX\tVALUE\tLABEL")
			fmt.Fprintln(w, "-----\t-----\t-----")
			for i, opt := range options {
				label := ansi.Truncate(opt.Label, maxLabelWidth, "...")
				fmt.Fprintf(w, "%d\t%s\t%s\n", i, opt.Value, label)
			}
			return w.Flush()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "selectmenu %s\n", Version)
		},
	}
}
