// stack_test.go: verification of stack capture semantics and metadata.
package xgxscope

import (
	"errors"
	"strings"
	"testing"
)

func TestCaptureStack_UsesDefaultWhenMaxDepthZero(t *testing.T) {
	t.Parallel()

	s := captureStack(0, 0)
	if len(s) == 0 {
		t.Fatalf("expected non-empty stack when maxDepth=0 (default), got 0")
	}
	if len(s) > defaultMaxDepth {
		t.Fatalf("stack length exceeds defaultMaxDepth: len=%d default=%d", len(s), defaultMaxDepth)
	}
}

func TestCaptureStack_RespectsMaxDepthLimit(t *testing.T) {
	t.Parallel()

	const limit = 3
	s := captureStack(0, limit)
	if len(s) == 0 || len(s) > limit {
		t.Fatalf("expected 1..%d frames; got %d", limit, len(s))
	}
}

func TestWithStack_RecordsCallerAndMetadata(t *testing.T) {
	t.Parallel()

	err := New("boom").WithStack()
	stk := StackOf(err)
	if len(stk) == 0 {
		t.Fatalf("no frames captured")
	}
	if fr := stk[0]; fr.File == "" || fr.Line <= 0 || fr.Function == "" {
		t.Fatalf("incomplete frame: %#v", fr)
	}
	found := false
	for _, fr := range stk {
		if strings.Contains(fr.Function, "TestWithStack_RecordsCallerAndMetadata") {
			found = true
		}
	}
	if !found {
		t.Fatalf("test function missing from captured stack: %#v", stk)
	}
}

func TestStackOf(t *testing.T) {
	t.Parallel()

	if StackOf(nil) != nil || StackOf(errors.New("plain")) != nil {
		t.Fatalf("StackOf must be nil without a captured stack")
	}
	if StackOf(New("x")) != nil {
		t.Fatalf("New must not capture a stack")
	}

	inner := Internal(errors.New("db"))
	if len(StackOf(Wrap(inner, "ignored"))) == 0 {
		t.Fatalf("StackOf must find the stack on the wrapped failure")
	}

	s := StackOf(inner)
	s[0].Function = "mutated"
	if StackOf(inner)[0].Function == "mutated" {
		t.Fatalf("StackOf must return a copy")
	}
}
