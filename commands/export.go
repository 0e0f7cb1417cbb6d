package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/schemaprofile/export"
	"github.com/c360studio/schemaprofile/schema"
)

func newExportCmd(r *root) *cobra.Command {
	var (
		formatName string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "export [schema]",
		Short: "Export a schema in an interchange format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}
			doc, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}
			return writeExport(output, doc, format)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "yaml", "Output format: yaml, json or markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func newDocCmd(r *root) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "doc [schema]",
		Short: "Render documentation tables for a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}
			return writeExport(output, doc, export.FormatMarkdown)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func writeExport(path string, doc *schema.Document, format export.Format) error {
	if path == "" || path == "-" {
		return export.Write(os.Stdout, doc, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.Write(f, doc, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
