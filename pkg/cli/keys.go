package cli

import (
	"fmt"
	"os"

	"github.com/dshills/domcase/pkg/naming"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// FieldSpec describes a single field in a field list file
type FieldSpec struct {
	Name   string  `yaml:"name"`
	Rename *string `yaml:"rename,omitempty"`
}

// FieldList is the document format accepted by the keys command
type FieldList struct {
	Fields []FieldSpec `yaml:"fields"`
}

// NewKeysCommand creates the keys command
func NewKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <fields-file>",
		Short: "Resolve DOM keys for a YAML field list",
		Long: `Resolve the DOM key for every field in a YAML field list.

A field with an explicit rename keeps it verbatim; all other fields get the
default lowerCamelCase convention. The file format:

  fields:
    - name: field_name
    - name: user_id
      rename: uid
    - name: "0"

Examples:
  domcase keys fields.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read field list: %w", err)
			}

			var list FieldList
			if err := yaml.Unmarshal(data, &list); err != nil {
				return fmt.Errorf("failed to parse field list YAML: %w", err)
			}

			if len(list.Fields) == 0 {
				return fmt.Errorf("field list is empty: %s", args[0])
			}

			for i, field := range list.Fields {
				if field.Name == "" {
					return fmt.Errorf("field %d has no name", i)
				}
				key := naming.DOMKey(field.Name, field.Rename)
				if field.Rename != nil {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (renamed)\n", field.Name, key)
				} else {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", field.Name, key)
				}
			}

			return nil
		},
	}

	return cmd
}
