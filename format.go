// format.go: fmt.Formatter for failures.
//
// Behavior:
//
//	%s, %v   → concise string (Error()); suppressed failures are not printed.
//	%+v      → verbose, structured multi-line format:
//	             code=<code> msg="<message>"
//	             ctx: key1=val1 key2=val2 ...
//	             cause: <recursively formatted with %+v>
//	             suppressed[0]: <recursively formatted with %+v>
//	             stack:
//	               funcA file.go:123
package xgxscope

import (
	"fmt"
	"io"
	"strings"
)

func formatConcise(w io.Writer, e error) {
	_, _ = io.WriteString(w, e.Error())
}

func formatVerbose(w io.Writer, e *failureErr) {
	if e.code != "" {
		_, _ = fmt.Fprintf(w, "code=%s ", e.code)
	}
	_, _ = fmt.Fprintf(w, "msg=%q", e.msg)

	if len(e.ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range e.ctx {
			if f.Key != "" {
				_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
			}
		}
	}

	if e.cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", e.cause)
	}

	for i, s := range e.suppressed {
		_, _ = fmt.Fprintf(w, "\nsuppressed[%d]: ", i)
		// Indent nested lines so multi-line children stay readable.
		_, _ = io.WriteString(w, strings.ReplaceAll(fmt.Sprintf("%+v", s), "\n", "\n  "))
	}

	if len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

func (e *failureErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}
