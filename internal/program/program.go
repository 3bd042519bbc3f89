// Package program emits the fixed value printed by the primitive command.
package program

import (
	"io"

	"github.com/f9-o/primitive/pkg/errs"
)

// Value is the literal the program prints.
const Value = "1996"

// Print writes Value followed by a newline to w.
func Print(w io.Writer) error {
	if _, err := io.WriteString(w, Value+"\n"); err != nil {
		return errs.Wrap(err, errs.ErrOutputWrite, "program.print")
	}
	return nil
}
