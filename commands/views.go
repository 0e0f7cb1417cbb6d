package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/schemaprofile/schema"
)

func newChildrenCmd(r *root) *cobra.Command {
	var transitive bool

	cmd := &cobra.Command{
		Use:   "children [schema] [class]",
		Short: "List the subclasses of a class",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := loadView(args[0])
			if err != nil {
				return err
			}
			name := args[1]
			if _, ok := view.Class(name); !ok {
				return fmt.Errorf("no class named %q in the source schema", name)
			}
			classes := view.Children(name)
			if transitive {
				classes = view.Descendants(name)
			}
			for _, class := range classes {
				fmt.Fprintln(cmd.OutOrStdout(), class.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&transitive, "transitive", false, "Include indirect subclasses")
	return cmd
}

func newLeavesCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "leaves [schema]",
		Short: "List classes with no subclasses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := loadView(args[0])
			if err != nil {
				return err
			}
			for _, class := range view.Leaves() {
				fmt.Fprintln(cmd.OutOrStdout(), class.Name)
			}
			return nil
		},
	}
}

func loadView(path string) (*schema.View, error) {
	doc, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return schema.NewView(doc)
}
