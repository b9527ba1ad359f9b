package cli

import (
	"github.com/spf13/cobra"
)

const (
	// Version is the current version of domcase
	Version = "0.1.0"
)

// NewRootCommand creates the root cobra command for domcase
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domcase",
		Short: "domcase - DOM element name conversion for identifiers",
		Long: `domcase converts identifier names (struct fields, type names, tuple
indices) into valid DOM element and attribute names using lowerCamelCase,
the default naming convention for XML-style serialization.

Use it to preview the names a serializer will emit for your types, resolve
field-level rename overrides, and audit the keys of existing JSON documents.`,
		Version:      Version,
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewConvertCommand())
	cmd.AddCommand(NewKeysCommand())
	cmd.AddCommand(NewInspectCommand())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
