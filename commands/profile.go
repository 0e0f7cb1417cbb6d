package commands

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/c360studio/schemaprofile/profile"
	"github.com/c360studio/schemaprofile/schema"
)

func newProfileCmd(r *root) *cobra.Command {
	var (
		classNames  []string
		policyName  string
		output      string
		fixDoc      bool
		watch       bool
		dataProduct bool
	)

	cmd := &cobra.Command{
		Use:   "profile [schema]",
		Short: "Extract the dependency closure of the given classes",
		Long: `Profile creates a new schema containing the given classes and their
structural dependencies: ancestors, slot ranges, and the types and
enums those ranges resolve to. The schema is read from the given file,
or from stdin when the path is "-".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("policy") {
				policyName = r.cfg.Profile.Policy
			}
			if !cmd.Flags().Changed("fix-doc") {
				fixDoc = r.cfg.Profile.FixDoc
			}

			mode, err := profile.ParseMode(policyName)
			if err != nil {
				return err
			}
			policy, err := profile.PolicyFor(mode)
			if err != nil {
				return err
			}

			source := args[0]
			run := func() error {
				return runProfile(r, source, output, classNames, policy, fixDoc)
			}
			if dataProduct {
				if len(classNames) != 1 {
					return fmt.Errorf("--data-product requires exactly one --class-name")
				}
				run = func() error {
					return runDataProduct(r, source, output, classNames[0])
				}
			}
			if watch {
				if source == "-" {
					return fmt.Errorf("--watch requires a file path, not stdin")
				}
				return watchAndRun(cmd.Context(), r.logger, source, run)
			}
			return run()
		},
	}

	cmd.Flags().StringArrayVarP(&classNames, "class-name", "c", nil, "Class to profile (repeatable)")
	cmd.Flags().StringVar(&policyName, "policy", string(profile.ModeIncludeAll),
		"Skip policy: include-all, explicit-only or skip-optional")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&fixDoc, "fix-doc", false, "Collapse line breaks in documentation strings")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-profile whenever the source file changes")
	cmd.Flags().BoolVar(&dataProduct, "data-product", false,
		"Flatten a single class and its inheritance into a standalone model")
	_ = cmd.MarkFlagRequired("class-name")

	return cmd
}

// runProfile performs one load, resolve, assemble, write cycle. Every log
// line of a run carries the same run_id.
func runProfile(r *root, source, output string, classNames []string, policy profile.Policy, fixDoc bool) error {
	logger := r.logger.With("run_id", uuid.NewString())

	doc, err := schema.LoadFile(source)
	if err != nil {
		return err
	}
	view, err := schema.NewView(doc)
	if err != nil {
		return err
	}
	logger.Info("Schema loaded",
		"source", source,
		"classes", doc.Classes.Len(),
		"types", doc.Types.Len(),
		"enums", doc.Enums.Len())

	result, err := profile.Resolve(view, classNames, policy)
	if err != nil {
		return err
	}
	logSkipEvents(logger, result.Skipped)

	out := profile.Assemble(view, result, profile.AssembleOptions{FixDoc: fixDoc})
	classes, enums, types := result.Included.Counts()
	logger.Info("Profile assembled",
		"policy", policy.Mode(),
		"classes", classes,
		"types", types,
		"enums", enums,
		"skipped", len(result.Skipped))

	return schema.WriteFile(output, out)
}

// runDataProduct flattens one class into a standalone model and writes it.
func runDataProduct(r *root, source, output, className string) error {
	logger := r.logger.With("run_id", uuid.NewString())

	doc, err := schema.LoadFile(source)
	if err != nil {
		return err
	}
	view, err := schema.NewView(doc)
	if err != nil {
		return err
	}

	out, err := profile.DataProduct(view, className, logger)
	if err != nil {
		return err
	}
	return schema.WriteFile(output, out)
}

// logSkipEvents renders the resolver's skip log. A replaced required
// slot leaves the profile unusable without manual follow-up, so it is
// logged louder than an optional one.
func logSkipEvents(logger *slog.Logger, events []profile.SkipEvent) {
	for _, event := range events {
		if event.Required {
			logger.Warn("Replaced required slot range",
				"class", event.OwningClass,
				"slot", event.Slot,
				"range", event.OriginalRange)
		} else {
			logger.Info("Replaced optional slot range",
				"class", event.OwningClass,
				"slot", event.Slot,
				"range", event.OriginalRange)
		}
	}
}
