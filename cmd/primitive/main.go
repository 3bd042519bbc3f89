// primitive — main entry point.
// Thin by design: copy build-time vars into the CLI package and execute.
package main

import "github.com/f9-o/primitive/internal/cli"

// Build-time variables injected via:
//
//	go build -ldflags "-X main.version=v1.0.0 -X main.commit=abc1234 -X main.buildDate=2025-01-01"
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildDate = buildDate

	cli.Execute()
}
