package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/schemaprofile/preprocess"
	"github.com/c360studio/schemaprofile/schema"
)

func newPreprocessCmd(r *root) *cobra.Command {
	var (
		output    string
		overrides []string
	)

	cmd := &cobra.Command{
		Use:   "preprocess [schema]",
		Short: "Rename class attributes to snake_case for code generation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrideMap := make(map[string]string, len(overrides))
			for _, pair := range overrides {
				name, replacement, ok := strings.Cut(pair, "=")
				if !ok || name == "" || replacement == "" {
					return fmt.Errorf("invalid --attr %q, expected Name=replacement", pair)
				}
				overrideMap[name] = replacement
			}

			doc, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}
			out := preprocess.SnakeCaseAttributes(doc, overrideMap, r.logger)
			return schema.WriteFile(output, out)
		},
	}

	cmd.Flags().StringArrayVar(&overrides, "attr", nil, "Attribute rename override as Name=replacement (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
