package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f9-o/primitive/internal/core/config"
	"github.com/f9-o/primitive/internal/core/logger"
)

// contextKey is the key type for values stored in a command context.
type contextKey string

const runtimeContextKey contextKey = "primitive.runtime"

// Runtime is the dependency bundle built before the command runs.
type Runtime struct {
	Config *config.Config
	Log    *logger.Logger
	Args   []string // as given on the command line; never acted on
}

// NewContext returns a new context carrying the Runtime.
func NewContext(parent context.Context, rt *Runtime) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithValue(parent, runtimeContextKey, rt)
}

// FromCommand extracts the Runtime from cmd's context. Panics if not present (programming error).
func FromCommand(cmd *cobra.Command) *Runtime {
	ctx := cmd.Context()
	if ctx != nil {
		if rt, ok := ctx.Value(runtimeContextKey).(*Runtime); ok && rt != nil {
			return rt
		}
	}
	panic(fmt.Sprintf("primitive: no runtime in context of command %q; initRuntime did not run", cmd.CommandPath()))
}
