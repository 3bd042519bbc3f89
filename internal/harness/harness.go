// Package harness captures what a unit of code writes to its output and checks
// it against an expected literal.
//
// Two capture styles are provided. RedirectStdout and CaptureStdout swap the
// process-wide os.Stdout and always put it back; tests using them must not run
// in parallel. Run hands the code under test its own buffer instead and touches
// no global state.
package harness

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/f9-o/primitive/pkg/errs"
)

// Verify trims captured and compares it with expected.
// Empty output is reported before any mismatch.
func Verify(expected, captured string) error {
	result := strings.TrimSpace(captured)
	if result == "" {
		return errs.Newf(errs.ErrEmptyOutput, "harness.verify",
			"The output must not be empty.\nThe output must be:\n%s\nActual output:\n%q", expected, captured)
	}
	if result != expected {
		return errs.Newf(errs.ErrMismatch, "harness.verify",
			"The output must be:\n%s\nActual output:\n%s", expected, result)
	}
	return nil
}

// Run gives fn a fresh buffer as its output sink and verifies what it wrote.
func Run(expected string, fn func(w io.Writer)) error {
	var buf bytes.Buffer
	fn(&buf)
	return Verify(expected, buf.String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Stdout redirection
// ─────────────────────────────────────────────────────────────────────────────

// Capture is an active redirection of os.Stdout into memory.
type Capture struct {
	orig *os.File
	r, w *os.File
	buf  bytes.Buffer
	done chan struct{}

	once sync.Once
	out  string
}

// RedirectStdout replaces os.Stdout with a pipe drained into memory.
// The caller must call Restore, typically via defer.
func RedirectStdout() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, errs.Wrap(err, errs.ErrInternal, "harness.redirect")
	}

	c := &Capture{orig: os.Stdout, r: r, w: w, done: make(chan struct{})}
	go func() {
		_, _ = io.Copy(&c.buf, r)
		close(c.done)
	}()

	os.Stdout = w
	return c, nil
}

// Restore reinstates the original os.Stdout and returns everything written
// while the capture was active. Calls after the first return the same text.
func (c *Capture) Restore() string {
	c.once.Do(func() {
		os.Stdout = c.orig
		_ = c.w.Close()
		<-c.done
		_ = c.r.Close()
		c.out = c.buf.String()
	})
	return c.out
}

// CaptureStdout runs fn with os.Stdout redirected and returns what it printed.
// Restoration is registered with tb.Cleanup, so it also happens when fn panics
// or the test fails fatally.
func CaptureStdout(tb testing.TB, fn func()) string {
	tb.Helper()

	c, err := RedirectStdout()
	if err != nil {
		tb.Fatalf("redirect stdout: %v", err)
	}
	tb.Cleanup(func() { c.Restore() })

	fn()
	return c.Restore()
}
