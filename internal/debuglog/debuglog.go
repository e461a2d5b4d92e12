// Package debuglog is the diff engine's debug-log channel: a swappable
// printf-style hook used to report invariant violations and stage tracing
// without aborting the pipeline, matching the teacher's verbose/stderr
// convention rather than introducing a logging framework.
package debuglog

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
)

// Hook is the shape of the debug sink. Tests may install their own Hook to
// intercept emitted messages.
type Hook func(format string, args ...any)

var current Hook = defaultHook

func defaultHook(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[mdiff debug] "+format+"\n", args...)
}

// SetHook installs hook as the active debug sink. Passing nil restores the
// default stderr hook.
func SetHook(hook Hook) {
	if hook == nil {
		hook = defaultHook
	}
	current = hook
}

// Printf reports a debug message through the active hook.
func Printf(format string, args ...any) {
	current(format, args...)
}

// Dump reports a structured pretty-printed dump of v, labelled with label.
// Used to surface DiffPair/InlinePart trees for invariant-violation
// reports.
func Dump(label string, v any) {
	current("%s:\n%s", label, pretty.Sprint(v))
}
