package cli

import (
	"fmt"

	"github.com/dshills/domcase/pkg/naming"
	"github.com/spf13/cobra"
)

// NewConvertCommand creates the convert command
func NewConvertCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "convert <name>...",
		Short: "Convert identifiers to DOM element names",
		Long: `Convert one or more identifiers to DOM element names.

Each name is converted to lowerCamelCase. Identifiers that begin with an
ASCII digit (tuple field indices) are prefixed with an underscore instead,
since element names cannot start with a digit.

Examples:
  domcase convert MyPlaylist field_name 0
  domcase convert --verbose SCREAMING_SNAKE`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				converted := naming.ToElementName(name)
				if verbose {
					status := "converted"
					if converted == name {
						status = "unchanged"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s)\n", name, converted, status)
				} else {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), converted)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show original names and whether conversion changed them")

	return cmd
}
