package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/grenewode/todo-queue/internal/script"
)

// IO carries one command's output. Results go to stdout; warnings are
// held back and written to stderr before the first result line and again
// after the last, so they stay visible around long listings.
type IO struct {
	out      io.Writer
	errOut   io.Writer
	warnings []string
	started  bool
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Warn records an issue together with what the user should do about it.
// Output still goes through; any warning makes the exit code 1.
func (o *IO) Warn(issue string, action string) {
	o.warnings = append(o.warnings, issue+": "+action)
}

// Println writes a result line to stdout.
func (o *IO) Println(a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted results to stdout.
func (o *IO) Printf(format string, a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Error reports a failed command on stderr. A query syntax error is
// followed by the query text with a caret under the offending token:
//
//	error: syntax error at column 5 near "%nope": unknown status (...)
//	  a & %nope
//	      ^
func (o *IO) Error(err error) {
	o.ErrPrintln("error:", err)

	var syntaxErr *script.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return
	}

	for line := range strings.SplitSeq(syntaxErr.Snippet(), "\n") {
		o.ErrPrintln("  " + line)
	}
}

// Fail reports err, then any pending warnings, and returns exit code 1.
// The IO is reset for the next command.
func (o *IO) Fail(err error) int {
	o.Error(err)
	o.writeWarnings()
	o.reset()

	return 1
}

// Finish writes pending warnings and returns the exit code: 1 if any
// warning was recorded, 0 otherwise. The IO is reset for the next
// command, which the shell relies on.
func (o *IO) Finish() int {
	o.flushWarningsStart()
	o.writeWarnings()

	code := 0
	if len(o.warnings) > 0 {
		code = 1
	}

	o.reset()

	return code
}

func (o *IO) flushWarningsStart() {
	if o.started {
		return
	}

	o.started = true
	o.writeWarnings()
}

func (o *IO) writeWarnings() {
	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}
}

func (o *IO) reset() {
	o.warnings = nil
	o.started = false
}
