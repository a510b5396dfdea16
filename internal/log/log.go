// Package log is the thin CLI-boundary logger described by SPEC_FULL.md's
// ambient stack: the core packages (curve, key, signer, bip32, address)
// are pure functions returning values and errors, never logging; only
// cmd/hdwallet-demo writes to this logger, the same pure-core/impure-UI
// split the teacher draws between internal/hd and ui.go/main.go.
package log

import (
	"fmt"
	"io"
	"os"
)

// Logger writes leveled lines to an underlying writer. It is a value
// type: construct one with New and thread it explicitly rather than
// reaching for a package-level global.
type Logger struct {
	out io.Writer
}

// New returns a Logger writing to w.
func New(w io.Writer) Logger { return Logger{out: w} }

// Default writes to os.Stderr, the teacher's own choice for
// diagnostic/error output in main.go.
func Default() Logger { return New(os.Stderr) }

func (l Logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[info] "+format+"\n", args...)
}

func (l Logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[error] "+format+"\n", args...)
}
