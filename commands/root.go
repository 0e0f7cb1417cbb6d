// Package commands provides the cobra subcommands for the schemaprofile
// CLI. The core profiling logic lives in the profile package; everything
// here is argument parsing, logging setup and file plumbing.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/schemaprofile/config"
)

// Version is the tool version, overridable at build time.
var Version = "0.1.0"

// root carries state shared by all subcommands: the loaded configuration
// and the logger built from it.
type root struct {
	cfg     *config.Config
	logger  *slog.Logger
	logFile *os.File

	debug   bool
	logPath string
}

// NewRootCmd builds the schemaprofile command tree.
func NewRootCmd() *cobra.Command {
	r := &root{}

	cmd := &cobra.Command{
		Use:   "schemaprofile",
		Short: "Extract self-contained profiles from schema documents",
		Long: `Schemaprofile extracts a minimal, self-consistent subset of a larger
schema document, given a set of seed class names. It computes the
transitive closure of structural dependencies reachable from the seeds
(ancestors, slot ranges, and the types and enums those ranges resolve
to) and emits a new schema containing exactly that closure.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if r.logFile != nil {
				_ = r.logFile.Close()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&r.logPath, "log", "", "Append log output to this file")
	cmd.PersistentFlags().BoolVar(&r.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		newProfileCmd(r),
		newChildrenCmd(r),
		newLeavesCmd(r),
		newDocCmd(r),
		newExportCmd(r),
		newMergeCmd(r),
		newPreprocessCmd(r),
		newVersionCmd(),
	)

	return cmd
}

// init loads configuration and builds the logger. Flags win over the
// configuration files.
func (r *root) init() error {
	cfg, err := config.NewLoader(slog.Default()).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	r.cfg = cfg

	level := slog.LevelInfo
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if r.debug {
		level = slog.LevelDebug
	}

	w := os.Stderr
	logPath := r.logPath
	if logPath == "" {
		logPath = cfg.Log.File
	}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		r.logFile = f
		w = f
	}

	r.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(r.logger)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "schemaprofile version %s\n", Version)
		},
	}
}
