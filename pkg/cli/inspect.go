package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/domcase/pkg/naming"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

// NewInspectCommand creates the inspect command
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <json-file>",
		Short: "Map the keys of a JSON document to DOM element names",
		Long: `Walk a JSON document and print the DOM element name each object key
would serialize under. Keys that change under the default convention are
marked with an asterisk.

Examples:
  domcase inspect payload.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read JSON file: %w", err)
			}

			if !gjson.ValidBytes(data) {
				return fmt.Errorf("invalid JSON in %s", args[0])
			}

			inspectValue(cmd.OutOrStdout(), "$", gjson.ParseBytes(data))
			return nil
		},
	}

	return cmd
}

// inspectValue walks objects and arrays, printing the element name each
// object key maps to
func inspectValue(w io.Writer, path string, value gjson.Result) {
	switch {
	case value.IsObject():
		value.ForEach(func(key, child gjson.Result) bool {
			k := key.String()
			name := naming.ToElementName(k)
			if name != k {
				_, _ = fmt.Fprintf(w, "%s.%s -> <%s> *\n", path, k, name)
			} else {
				_, _ = fmt.Fprintf(w, "%s.%s -> <%s>\n", path, k, name)
			}
			inspectValue(w, path+"."+k, child)
			return true
		})
	case value.IsArray():
		index := 0
		value.ForEach(func(_, child gjson.Result) bool {
			inspectValue(w, fmt.Sprintf("%s[%d]", path, index), child)
			index++
			return true
		})
	}
}
