// Package cli defines the root Cobra command.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/f9-o/primitive/internal/core/config"
	"github.com/f9-o/primitive/internal/core/logger"
	"github.com/f9-o/primitive/internal/program"
	"github.com/f9-o/primitive/pkg/errs"
	"github.com/f9-o/primitive/pkg/pprint"
)

// Build-time variables injected via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// NewRootCmd builds the primitive command for the given arguments.
// Cobra is handed an empty argument list so no token, including its hidden
// completion requests, can route around RunE. args are only logged.
func NewRootCmd(args []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "primitive [args...]",
		Short:              "Print the value " + program.Value,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initRuntime(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := FromCommand(cmd)
			rt.Log.Debug("print",
				"value", program.Value,
				"ignored_args", len(rt.Args),
				"version", Version,
				"commit", Commit,
				"build_date", BuildDate,
			)
			return program.Print(cmd.OutOrStdout())
		},
	}
	cmd.SetArgs([]string{})
	return cmd
}

// Run executes the command in-process. A nil stdout or stderr falls back to
// the process stream current at write time.
func Run(args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCmd(args)
	if stdout != nil {
		cmd.SetOut(stdout)
	}
	if stderr != nil {
		cmd.SetErr(stderr)
	}
	return cmd.Execute()
}

// Execute runs the CLI with the process arguments. Called by main().
func Execute() {
	if code := renderError(os.Stderr, Run(os.Args[1:], nil, nil)); code != 0 {
		os.Exit(code)
	}
}

// renderError writes err to w and returns the process exit code.
func renderError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	e := errs.AsError(err)
	if e == nil {
		e = errs.New(errs.ErrUnknown, "primitive", err)
	}
	pprint.Error(w, "%s", e.UserMessage())
	return 1
}

// initRuntime loads config and the logger before the command runs.
func initRuntime(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.Init(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format, cfg.Debug)

	cmd.SetContext(NewContext(cmd.Context(), &Runtime{
		Config: cfg,
		Log:    log,
		Args:   args,
	}))
	return nil
}
