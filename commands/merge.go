package commands

import (
	"github.com/spf13/cobra"

	"github.com/c360studio/schemaprofile/merge"
	"github.com/c360studio/schemaprofile/schema"
)

func newMergeCmd(r *root) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "merge [pattern]...",
		Short: "Merge several schema files into one",
		Long: `Merge combines the schemas matched by the given paths or doublestar
glob patterns (for example 'schemas/**/*.yaml') into a single document.
The first file contributes the header; on duplicate definitions the
later file wins, with a warning.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := merge.ResolvePatterns(args)
			if err != nil {
				return err
			}
			merged, err := merge.Files(paths, r.logger)
			if err != nil {
				return err
			}
			r.logger.Info("Schemas merged",
				"files", len(paths),
				"classes", merged.Classes.Len(),
				"types", merged.Types.Len(),
				"enums", merged.Enums.Len())
			return schema.WriteFile(output, merged)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
