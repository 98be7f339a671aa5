// stack.go: selective stack capture.
//
// Stacks are captured only by Internal, Defect, and the WithStack* builders.
// runtime.CallersFrames resolves inlined frames correctly, so it is used
// instead of FuncForPC.
package xgxscope

import (
	"runtime"
)

// Frame is a single call site in a stack trace.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const defaultMaxDepth = 64

// captureStackDefault captures a stack skipping 'skip' frames beyond the
// internal helpers, bounded by defaultMaxDepth.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	// +3 skips runtime.Callers, captureStack and captureStackDefault.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// StackOf returns the stack recorded on the first Failure Record along err's
// chain, or nil.
func StackOf(err error) Stack {
	for err != nil {
		if fe, ok := err.(*failureErr); ok && len(fe.stk) > 0 {
			out := make(Stack, len(fe.stk))
			copy(out, fe.stk)
			return out
		}
		u, ok := err.(singleUnwrapper)
		if !ok {
			return nil
		}
		err = u.Unwrap()
	}
	return nil
}
